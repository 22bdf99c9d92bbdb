// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
	"github.com/mtendies/ledger/internal/storage"
)

// setupTestLedger creates a ledger over a file store in a temp directory.
func setupTestLedger(t *testing.T) *ledger.Ledger {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open file store: %v", err)
	}

	l := ledger.New(store)
	t.Cleanup(func() { l.Close() })
	return l
}

func TestNewServer(t *testing.T) {
	l := setupTestLedger(t)

	server, err := NewServer(l)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.ledger == nil {
		t.Error("Expected non-nil ledger")
	}
}

func TestHandleLogActivity(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	three := 3.0

	tests := []struct {
		name      string
		input     logActivityInput
		wantErr   bool
		errSubstr string
	}{
		{
			name: "valid run",
			input: logActivityInput{
				Type:     "workout",
				SubType:  "run",
				RawText:  "ran 3 miles",
				Distance: &three,
			},
			wantErr: false,
		},
		{
			name: "valid weight",
			input: logActivityInput{
				Type:   "weight",
				Weight: floatPtr(175.5),
			},
			wantErr: false,
		},
		{
			name: "valid with explicit source",
			input: logActivityInput{
				Type:    "general",
				Source:  "check-in",
				Summary: "weekly check-in",
			},
			wantErr: false,
		},
		{
			name: "invalid type",
			input: logActivityInput{
				Type: "banana",
			},
			wantErr:   true,
			errSubstr: "unknown activity type",
		},
		{
			name: "invalid sub-type",
			input: logActivityInput{
				Type:    "workout",
				SubType: "parkour",
			},
			wantErr:   true,
			errSubstr: "unknown sub-type",
		},
		{
			name: "invalid source",
			input: logActivityInput{
				Type:   "workout",
				Source: "carrier-pigeon",
			},
			wantErr:   true,
			errSubstr: "unknown source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleLogActivity(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				} else if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("Error %q should contain %q", err.Error(), tt.errSubstr)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if output.ID == "" {
				t.Error("Expected non-empty ID")
			}
			if output.Type != tt.input.Type {
				t.Errorf("Type = %s, want %s", output.Type, tt.input.Type)
			}
			if output.Message == "" {
				t.Error("Expected non-empty Message")
			}
		})
	}
}

func TestHandleLogActivityDefaultsSourceToChat(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, output, err := server.handleLogActivity(ctx, &mcp.CallToolRequest{}, logActivityInput{
		Type:    "workout",
		SubType: "run",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := l.Resolve(output.ID); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	recent := l.Recent(1)
	if len(recent) != 1 || recent[0].Source != models.SourceChat {
		t.Error("Expected source to default to chat")
	}
}

func TestHandleListActivities(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{Type: models.TypeWorkout, SubType: models.SubRun})
	mustLog(t, l, ledger.Draft{Type: models.TypeSleep})

	tests := []struct {
		name  string
		input listActivitiesInput
	}{
		{name: "list all", input: listActivitiesInput{}},
		{name: "default limit", input: listActivitiesInput{Limit: 0}},
		{name: "limit 1", input: listActivitiesInput{Limit: 1}},
		{name: "filter by type", input: listActivitiesInput{Type: "workout"}},
		{name: "wildcard type", input: listActivitiesInput{Type: "all"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleListActivities(ctx, &mcp.CallToolRequest{}, tt.input)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output == nil {
				t.Error("Expected non-nil output")
			}
		})
	}
}

func TestHandleListActivitiesEmpty(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, output, err := server.handleListActivities(ctx, &mcp.CallToolRequest{}, listActivitiesInput{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	// Should return a message map for empty results
	if output == nil {
		t.Error("Expected non-nil output")
	}
}

func TestHandleSearchActivities(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{Type: models.TypeWorkout, SubType: models.SubRun, RawText: "morning run along the river"})
	mustLog(t, l, ledger.Draft{Type: models.TypeNutrition, Summary: "protein shake"})

	_, output, err := server.handleSearchActivities(ctx, &mcp.CallToolRequest{}, searchActivitiesInput{
		Query: "river",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	activities, ok := output.([]*models.Activity)
	if !ok {
		t.Fatal("Expected activity slice output")
	}
	if len(activities) != 1 {
		t.Errorf("Expected 1 match, got %d", len(activities))
	}
}

func TestHandleSearchActivitiesNoMatch(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{Type: models.TypeWorkout, RawText: "gym session"})

	_, output, err := server.handleSearchActivities(ctx, &mcp.CallToolRequest{}, searchActivitiesInput{
		Query: "swimming",
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if _, ok := output.(map[string]interface{}); !ok {
		t.Error("Expected message map for empty results")
	}
}

func TestHandleUpdateActivity(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	a := mustLog(t, l, ledger.Draft{Type: models.TypeWorkout, SubType: models.SubRun})

	_, output, err := server.handleUpdateActivity(ctx, &mcp.CallToolRequest{}, updateActivityInput{
		ID:      a.ID[:8],
		Feeling: "strong",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	got := l.ForWeek(a.WeekOf)
	if len(got) != 1 || got[0].Data.Feeling == nil || *got[0].Data.Feeling != "strong" {
		t.Error("Expected feeling to be persisted")
	}
}

func TestHandleUpdateActivityNotFound(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, _, err := server.handleUpdateActivity(ctx, &mcp.CallToolRequest{}, updateActivityInput{
		ID:      "nonexistent",
		Feeling: "fine",
	})

	if err == nil {
		t.Error("Expected error for nonexistent activity")
	}
}

func TestHandleDeleteActivity(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	a := mustLog(t, l, ledger.Draft{Type: models.TypeWeight})

	_, output, err := server.handleDeleteActivity(ctx, &mcp.CallToolRequest{}, deleteActivityInput{
		ID: a.ID[:8],
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output.Message == "" {
		t.Error("Expected non-empty message")
	}

	if len(l.List()) != 0 {
		t.Error("Expected activity to be deleted")
	}
}

func TestHandleDeleteActivityNotFound(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, _, err := server.handleDeleteActivity(ctx, &mcp.CallToolRequest{}, deleteActivityInput{
		ID: "nonexistent",
	})

	if err == nil {
		t.Error("Expected error for nonexistent activity")
	}
}

func TestHandleWeeklySummary(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{
		Type:    models.TypeWorkout,
		SubType: models.SubRun,
		Data:    models.ActivityData{Distance: floatPtr(3)},
	})
	mustLog(t, l, ledger.Draft{Type: models.TypeWeight, Data: models.ActivityData{Weight: floatPtr(175)}})

	_, output, err := server.handleWeeklySummary(ctx, &mcp.CallToolRequest{}, weekInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	stats, ok := output.(ledger.WeekStats)
	if !ok {
		t.Fatal("Expected WeekStats output")
	}
	if stats.Total != 2 {
		t.Errorf("Total = %d, want 2", stats.Total)
	}
	if stats.RunMiles != 3 {
		t.Errorf("RunMiles = %f, want 3", stats.RunMiles)
	}
}

func TestHandleWeeklyNarrative(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{
		Type:    models.TypeWorkout,
		SubType: models.SubRun,
		Data:    models.ActivityData{Distance: floatPtr(3)},
	})

	_, output, err := server.handleWeeklyNarrative(ctx, &mcp.CallToolRequest{}, weekInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	sections, ok := output.(map[string]string)
	if !ok {
		t.Fatal("Expected narrative section map")
	}
	if !strings.Contains(sections["running"], "3 miles") {
		t.Errorf("running = %q, want mention of 3 miles", sections["running"])
	}
}

func TestHandleWeeklyNarrativeEmpty(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, output, err := server.handleWeeklyNarrative(ctx, &mcp.CallToolRequest{}, weekInput{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if _, ok := output.(map[string]interface{}); !ok {
		t.Error("Expected message map for empty week")
	}
}

func TestHandleFocusProgress(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{
		Type:    models.TypeWorkout,
		SubType: models.SubRun,
		Data:    models.ActivityData{Distance: floatPtr(2)},
	})

	_, output, err := server.handleFocusProgress(ctx, &mcp.CallToolRequest{}, focusProgressInput{
		FocusText: "run 3x this week",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "2 miles") {
		t.Errorf("Message = %q, want mention of 2 miles", output.Message)
	}
}

func TestHandleFocusProgressNoMatch(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, output, err := server.handleFocusProgress(ctx, &mcp.CallToolRequest{}, focusProgressInput{
		FocusText: "run 3x this week",
	})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if output.Message != "No matching progress this week." {
		t.Errorf("Message = %q, want no-progress placeholder", output.Message)
	}
}

func TestHandleCheckInDraft(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{
		Type:    models.TypeWorkout,
		SubType: models.SubRun,
		Data:    models.ActivityData{Distance: floatPtr(3)},
	})
	mustLog(t, l, ledger.Draft{Type: models.TypeWeight, Data: models.ActivityData{Weight: floatPtr(175)}})

	_, output, err := server.handleCheckInDraft(ctx, &mcp.CallToolRequest{}, weekInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	draft, ok := output.(ledger.CheckInDraft)
	if !ok {
		t.Fatal("Expected CheckInDraft output")
	}
	if len(draft.Runs) != 1 {
		t.Errorf("Runs = %d, want 1", len(draft.Runs))
	}
	if len(draft.Weights) != 1 {
		t.Errorf("Weights = %d, want 1", len(draft.Weights))
	}
}

func TestHandleClarifyQuestions(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{
		Type:    models.TypeWorkout,
		SubType: models.SubRun,
		Data:    models.ActivityData{Distance: floatPtr(3)},
	})

	_, output, err := server.handleClarifyQuestions(ctx, &mcp.CallToolRequest{}, clarifyQuestionsInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	questions, ok := output.([]ledger.ClarifyQuestion)
	if !ok {
		t.Fatal("Expected question slice output")
	}
	if len(questions) != 1 {
		t.Errorf("Questions = %d, want 1", len(questions))
	}
}

func TestHandleClarifyQuestionsNothingToAsk(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	_, output, err := server.handleClarifyQuestions(ctx, &mcp.CallToolRequest{}, clarifyQuestionsInput{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if _, ok := output.(map[string]interface{}); !ok {
		t.Error("Expected message map when nothing to clarify")
	}
}

func TestHandleRecentResource(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{Type: models.TypeWorkout, Summary: "gym session"})

	result, err := server.handleRecentResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "ledger://recent" {
		t.Errorf("URI = %s, want ledger://recent", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
	if !strings.Contains(result.Contents[0].Text, "gym session") {
		t.Error("Expected logged activity in result")
	}
}

func TestHandleTodayResource(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{Type: models.TypeSleep, Data: models.ActivityData{Hours: floatPtr(8)}})

	result, err := server.handleTodayResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if result.Contents[0].URI != "ledger://today" {
		t.Errorf("URI = %s, want ledger://today", result.Contents[0].URI)
	}
	if !strings.Contains(result.Contents[0].Text, "\"count\": 1") {
		t.Error("Expected today's count of 1")
	}
}

func TestHandleWeekResource(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	mustLog(t, l, ledger.Draft{
		Type:    models.TypeWorkout,
		SubType: models.SubRun,
		Data:    models.ActivityData{Distance: floatPtr(3)},
	})

	result, err := server.handleWeekResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if result.Contents[0].URI != "ledger://week" {
		t.Errorf("URI = %s, want ledger://week", result.Contents[0].URI)
	}

	text := result.Contents[0].Text
	if !strings.Contains(text, "week_of") {
		t.Error("Expected week_of in result")
	}
	if !strings.Contains(text, "stats") {
		t.Error("Expected stats section")
	}
	if !strings.Contains(text, "narrative") {
		t.Error("Expected narrative section")
	}
}

func TestHandleWeekResourceEmpty(t *testing.T) {
	l := setupTestLedger(t)
	server, _ := NewServer(l)
	ctx := context.Background()

	result, err := server.handleWeekResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
}

// Helpers.

func mustLog(t *testing.T, l *ledger.Ledger, d ledger.Draft) *models.Activity {
	t.Helper()
	a, err := l.Log(d)
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	return a
}

func floatPtr(f float64) *float64 { return &f }
