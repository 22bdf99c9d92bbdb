// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Tests parseTime, truncate, padRight, dataFromFlags, and flags.
package main

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "date and time with space",
			input:   "2025-03-12 08:30",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2025-03-12T08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2025-03-12",
			wantErr: false,
		},
		{
			name:    "RFC3339",
			input:   "2025-03-12T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "12-03-2025",
			wantErr: true,
		},
		{
			name:    "invalid random string",
			input:   "not a date",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestParseTimeValues(t *testing.T) {
	result, err := parseTime("2025-06-15")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Year() != 2025 || result.Month() != time.June || result.Day() != 15 {
		t.Errorf("parseTime returned wrong date: got %v", result)
	}
}

func TestParseTimeUsesLocalZone(t *testing.T) {
	result, err := parseTime("2025-06-15 08:30")
	if err != nil {
		t.Fatalf("parseTime failed: %v", err)
	}

	if result.Location() != time.Local {
		t.Errorf("parseTime location = %v, want local", result.Location())
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{
			name:   "short string no truncation",
			input:  "hello",
			maxLen: 10,
			want:   "hello",
		},
		{
			name:   "exact length",
			input:  "hello",
			maxLen: 5,
			want:   "hello",
		},
		{
			name:   "needs truncation",
			input:  "hello world this is a long string",
			maxLen: 10,
			want:   "hello w...",
		},
		{
			name:   "empty string",
			input:  "",
			maxLen: 10,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.maxLen)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{
			name:   "needs padding",
			input:  "run",
			length: 8,
			want:   "run     ",
		},
		{
			name:   "exact length",
			input:  "workout",
			length: 7,
			want:   "workout",
		},
		{
			name:   "longer than target",
			input:  "hydration",
			length: 5,
			want:   "hydration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.input, tt.length)
			if got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestDataFromFlags(t *testing.T) {
	// Unset flags must stay nil so updates merge instead of zeroing
	if err := logCmd.Flags().Set("distance", "3.5"); err != nil {
		t.Fatalf("set distance: %v", err)
	}
	if err := logCmd.Flags().Set("pace", "9:30"); err != nil {
		t.Fatalf("set pace: %v", err)
	}

	data := dataFromFlags(logCmd)

	if data.Distance == nil || *data.Distance != 3.5 {
		t.Error("Expected distance 3.5")
	}
	if data.Pace == nil || *data.Pace != "9:30" {
		t.Error("Expected pace 9:30")
	}
	if data.Weight != nil {
		t.Error("Expected nil weight for unset flag")
	}
	if data.Hours != nil {
		t.Error("Expected nil hours for unset flag")
	}
	if data.PR != nil {
		t.Error("Expected nil pr for unset flag")
	}
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{
		"log", "list", "search", "update", "delete", "wipe",
		"week", "checkin", "export", "import", "sync", "mcp", "version",
	} {
		if !names[want] {
			t.Errorf("Command %q not registered", want)
		}
	}
}

func TestWeekSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range weekCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"summary", "narrative", "story", "focus"} {
		if !names[want] {
			t.Errorf("Week subcommand %q not registered", want)
		}
	}
}

func TestSyncSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range syncCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"link", "unlink", "status", "repair", "reset", "wipe"} {
		if !names[want] {
			t.Errorf("Sync subcommand %q not registered", want)
		}
	}
}

func TestResolveWeekDefault(t *testing.T) {
	weekOf = ""
	week := resolveWeek()
	if week == "" {
		t.Fatal("Expected non-empty week")
	}

	parsed, err := time.ParseInLocation("2006-01-02", week, time.Local)
	if err != nil {
		t.Fatalf("Week key not a date: %v", err)
	}
	if parsed.Weekday() != time.Monday {
		t.Errorf("Week key %s is a %s, want Monday", week, parsed.Weekday())
	}
}

func TestResolveWeekExplicit(t *testing.T) {
	weekOf = "2025-03-10"
	defer func() { weekOf = "" }()

	if got := resolveWeek(); got != "2025-03-10" {
		t.Errorf("resolveWeek() = %s, want 2025-03-10", got)
	}
}
