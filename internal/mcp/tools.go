// ABOUTME: MCP tool implementations for the activity ledger.
// ABOUTME: Provides logging, querying, and weekly narrative tools.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

func (s *Server) registerTools() {
	// log_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_activity",
		Description: "Log an activity (workout, nutrition, sleep, weight, hydration)",
	}, s.handleLogActivity)

	// list_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_activities",
		Description: "List recent activities, optionally filtered by type, source, or date range",
	}, s.handleListActivities)

	// search_activities
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "search_activities",
		Description: "Search activities by free text, with optional filters",
	}, s.handleSearchActivities)

	// update_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_activity",
		Description: "Update an activity's summary or data fields by ID or ID prefix",
	}, s.handleUpdateActivity)

	// delete_activity
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_activity",
		Description: "Delete an activity by ID or ID prefix",
	}, s.handleDeleteActivity)

	// weekly_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Get activity counts, run mileage, and latest weight for a week",
	}, s.handleWeeklySummary)

	// weekly_narrative
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_narrative",
		Description: "Get natural-language summaries of a week's progress, per category",
	}, s.handleWeeklyNarrative)

	// focus_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "focus_progress",
		Description: "Narrate this week's progress toward a focus goal described in free text",
	}, s.handleFocusProgress)

	// checkin_draft
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "checkin_draft",
		Description: "Build editable check-in draft buckets from a week's activities",
	}, s.handleCheckInDraft)

	// clarify_questions
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clarify_questions",
		Description: "Generate follow-up questions for workouts missing a feeling",
	}, s.handleClarifyQuestions)
}

// Tool input/output types

type logActivityInput struct {
	Type           string   `json:"type" jsonschema:"Activity type (workout, nutrition, sleep, weight, hydration, general)"`
	SubType        string   `json:"sub_type,omitempty" jsonschema:"Workout sub-type (run, strength, cardio, yoga, walk, other)"`
	Source         string   `json:"source,omitempty" jsonschema:"Origin channel (dashboard, playbook, chat, check-in)"`
	RawText        string   `json:"raw_text,omitempty" jsonschema:"Original free-text user input"`
	Summary        string   `json:"summary,omitempty" jsonschema:"Short human-readable label"`
	Distance       *float64 `json:"distance,omitempty" jsonschema:"Distance in miles"`
	Duration       *float64 `json:"duration,omitempty" jsonschema:"Duration in minutes"`
	Pace           string   `json:"pace,omitempty" jsonschema:"Pace per mile (e.g. 9:30)"`
	Weight         *float64 `json:"weight,omitempty" jsonschema:"Body weight in lbs"`
	Exercise       string   `json:"exercise,omitempty" jsonschema:"Exercise name"`
	Feeling        string   `json:"feeling,omitempty" jsonschema:"How it felt"`
	Quality        string   `json:"quality,omitempty" jsonschema:"Sleep quality"`
	Hours          *float64 `json:"hours,omitempty" jsonschema:"Sleep hours"`
	Notes          string   `json:"notes,omitempty" jsonschema:"Free-form notes"`
	PR             *bool    `json:"pr,omitempty" jsonschema:"Whether this was a personal record"`
	PRValue        string   `json:"pr_value,omitempty" jsonschema:"The PR value (e.g. 225 lbs)"`
	HitProteinGoal *bool    `json:"hit_protein_goal,omitempty" jsonschema:"Whether the protein goal was hit"`
	Calories       *float64 `json:"calories,omitempty" jsonschema:"Calories consumed"`
	Protein        *float64 `json:"protein,omitempty" jsonschema:"Protein grams consumed"`
}

type activityOutput struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	WeekOf  string `json:"week_of"`
	Message string `json:"message"`
}

type listActivitiesInput struct {
	Type      string `json:"type,omitempty" jsonschema:"Filter by activity type (or 'all')"`
	Source    string `json:"source,omitempty" jsonschema:"Filter by source (or 'all')"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Inclusive start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Inclusive end date (YYYY-MM-DD)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type searchActivitiesInput struct {
	Query     string `json:"query" jsonschema:"Free-text search query"`
	Type      string `json:"type,omitempty" jsonschema:"Filter by activity type (or 'all')"`
	Source    string `json:"source,omitempty" jsonschema:"Filter by source (or 'all')"`
	StartDate string `json:"start_date,omitempty" jsonschema:"Inclusive start date (YYYY-MM-DD)"`
	EndDate   string `json:"end_date,omitempty" jsonschema:"Inclusive end date (YYYY-MM-DD)"`
}

type updateActivityInput struct {
	ID             string   `json:"id" jsonschema:"Activity ID or prefix"`
	Summary        string   `json:"summary,omitempty" jsonschema:"New summary"`
	Feeling        string   `json:"feeling,omitempty" jsonschema:"How it felt"`
	Quality        string   `json:"quality,omitempty" jsonschema:"Sleep quality"`
	Weight         *float64 `json:"weight,omitempty" jsonschema:"Body weight in lbs"`
	Distance       *float64 `json:"distance,omitempty" jsonschema:"Distance in miles"`
	Duration       *float64 `json:"duration,omitempty" jsonschema:"Duration in minutes"`
	Hours          *float64 `json:"hours,omitempty" jsonschema:"Sleep hours"`
	Notes          string   `json:"notes,omitempty" jsonschema:"Free-form notes"`
	HitProteinGoal *bool    `json:"hit_protein_goal,omitempty" jsonschema:"Whether the protein goal was hit"`
}

type deleteActivityInput struct {
	ID string `json:"id" jsonschema:"Activity ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type weekInput struct {
	WeekOf string `json:"week_of,omitempty" jsonschema:"Monday week key (YYYY-MM-DD), defaults to the current week"`
}

type focusProgressInput struct {
	FocusText  string `json:"focus_text,omitempty" jsonschema:"The focus goal's free text (e.g. 'run 3x this week')"`
	FocusIndex int    `json:"focus_index,omitempty" jsonschema:"Legacy focus-item index, used only when focus_text is empty"`
	WeekOf     string `json:"week_of,omitempty" jsonschema:"Monday week key (YYYY-MM-DD), defaults to the current week"`
}

type clarifyQuestionsInput struct {
	WeekOf   string `json:"week_of,omitempty" jsonschema:"Monday week key (YYYY-MM-DD), defaults to the current week"`
	MaxCount int    `json:"max_count,omitempty" jsonschema:"Max questions (default 3)"`
}

// Tool handlers

func (s *Server) handleLogActivity(ctx context.Context, req *mcp.CallToolRequest, input logActivityInput) (*mcp.CallToolResult, activityOutput, error) {
	if !models.IsValidActivityType(input.Type) {
		return nil, activityOutput{}, fmt.Errorf("unknown activity type: %s\nValid types: workout, nutrition, sleep, weight, hydration, general", input.Type)
	}
	if input.SubType != "" && !models.IsValidSubType(input.SubType) {
		return nil, activityOutput{}, fmt.Errorf("unknown sub-type: %s", input.SubType)
	}
	if input.Source != "" && !models.IsValidSource(input.Source) {
		return nil, activityOutput{}, fmt.Errorf("unknown source: %s", input.Source)
	}

	data := models.ActivityData{
		Distance:       input.Distance,
		Duration:       input.Duration,
		Weight:         input.Weight,
		Hours:          input.Hours,
		PR:             input.PR,
		HitProteinGoal: input.HitProteinGoal,
		Calories:       input.Calories,
		Protein:        input.Protein,
	}
	if input.Pace != "" {
		data.Pace = &input.Pace
	}
	if input.Exercise != "" {
		data.Exercise = &input.Exercise
	}
	if input.Feeling != "" {
		data.Feeling = &input.Feeling
	}
	if input.Quality != "" {
		data.Quality = &input.Quality
	}
	if input.Notes != "" {
		data.Notes = &input.Notes
	}
	if input.PRValue != "" {
		data.PRValue = &input.PRValue
	}

	source := models.Source(input.Source)
	if input.Source == "" {
		source = models.SourceChat
	}

	a, err := s.ledger.Log(ledger.Draft{
		Type:    models.ActivityType(input.Type),
		SubType: models.SubType(input.SubType),
		Source:  source,
		RawText: input.RawText,
		Summary: input.Summary,
		Data:    data,
	})
	if err != nil {
		return nil, activityOutput{}, fmt.Errorf("failed to log activity: %w", err)
	}

	return nil, activityOutput{
		ID:      models.ShortID(a.ID),
		Type:    string(a.Type),
		Date:    a.Date,
		WeekOf:  a.WeekOf,
		Message: fmt.Sprintf("Logged %s on %s (ID: %s)", a.Type, a.Date, models.ShortID(a.ID)),
	}, nil
}

func (s *Server) handleListActivities(ctx context.Context, req *mcp.CallToolRequest, input listActivitiesInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	activities := s.ledger.Filter(ledger.FilterOptions{
		Type:      input.Type,
		Source:    input.Source,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})
	if len(activities) > input.Limit {
		activities = activities[:input.Limit]
	}

	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}
	return nil, activities, nil
}

func (s *Server) handleSearchActivities(ctx context.Context, req *mcp.CallToolRequest, input searchActivitiesInput) (*mcp.CallToolResult, any, error) {
	activities := s.ledger.SearchAndFilter(input.Query, ledger.FilterOptions{
		Type:      input.Type,
		Source:    input.Source,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	})

	if len(activities) == 0 {
		return nil, map[string]interface{}{"message": "No activities found."}, nil
	}
	return nil, activities, nil
}

func (s *Server) handleUpdateActivity(ctx context.Context, req *mcp.CallToolRequest, input updateActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := s.ledger.Resolve(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	patch := ledger.Patch{}
	if input.Summary != "" {
		patch.Summary = &input.Summary
	}
	data := models.ActivityData{
		Weight:         input.Weight,
		Distance:       input.Distance,
		Duration:       input.Duration,
		Hours:          input.Hours,
		HitProteinGoal: input.HitProteinGoal,
	}
	if input.Feeling != "" {
		data.Feeling = &input.Feeling
	}
	if input.Quality != "" {
		data.Quality = &input.Quality
	}
	if input.Notes != "" {
		data.Notes = &input.Notes
	}
	if !data.IsEmpty() {
		patch.Data = &data
	}

	updated, err := s.ledger.Update(id, patch)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to update activity: %w", err)
	}
	if updated == nil {
		return nil, simpleOutput{}, fmt.Errorf("not found: %s", input.ID)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Updated activity %s", models.ShortID(updated.ID)),
	}, nil
}

func (s *Server) handleDeleteActivity(ctx context.Context, req *mcp.CallToolRequest, input deleteActivityInput) (*mcp.CallToolResult, simpleOutput, error) {
	id, err := s.ledger.Resolve(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if _, err := s.ledger.Delete(id); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete activity: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted activity: %s", input.ID),
	}, nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input weekInput) (*mcp.CallToolResult, any, error) {
	week := input.WeekOf
	if week == "" {
		week = models.CurrentWeek()
	}
	return nil, ledger.WeekSummary(week, s.ledger.ForWeek(week)), nil
}

func (s *Server) handleWeeklyNarrative(ctx context.Context, req *mcp.CallToolRequest, input weekInput) (*mcp.CallToolResult, any, error) {
	week := input.WeekOf
	if week == "" {
		week = models.CurrentWeek()
	}

	sections := ledger.WeeklyNarrative(s.ledger.ForWeek(week))
	if len(sections) == 0 {
		return nil, map[string]interface{}{"message": "No progress activities this week."}, nil
	}
	return nil, sections, nil
}

func (s *Server) handleFocusProgress(ctx context.Context, req *mcp.CallToolRequest, input focusProgressInput) (*mcp.CallToolResult, simpleOutput, error) {
	week := input.WeekOf
	if week == "" {
		week = models.CurrentWeek()
	}

	narrative := ledger.FocusNarrative(s.ledger.ForWeek(week), input.FocusText, input.FocusIndex)
	if narrative == "" {
		narrative = "No matching progress this week."
	}
	return nil, simpleOutput{Message: narrative}, nil
}

func (s *Server) handleCheckInDraft(ctx context.Context, req *mcp.CallToolRequest, input weekInput) (*mcp.CallToolResult, any, error) {
	week := input.WeekOf
	if week == "" {
		week = models.CurrentWeek()
	}
	return nil, ledger.BuildCheckInDraft(s.ledger.ForWeek(week)), nil
}

func (s *Server) handleClarifyQuestions(ctx context.Context, req *mcp.CallToolRequest, input clarifyQuestionsInput) (*mcp.CallToolResult, any, error) {
	week := input.WeekOf
	if week == "" {
		week = models.CurrentWeek()
	}
	if input.MaxCount <= 0 {
		input.MaxCount = 3
	}

	questions := ledger.ClarifyQuestions(s.ledger.ForWeek(week), input.MaxCount)
	if len(questions) == 0 {
		return nil, map[string]interface{}{"message": "Nothing to clarify this week."}, nil
	}
	return nil, questions, nil
}
