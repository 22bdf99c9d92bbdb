// ABOUTME: Tests for Monday-anchored week key derivation and ordering.
// ABOUTME: Covers weekday order mapping and edge days of the week.
package models

import (
	"testing"
	"time"
)

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local), "2025-03-10"},
		{"wednesday maps back", time.Date(2025, 3, 12, 9, 0, 0, 0, time.Local), "2025-03-10"},
		{"sunday maps back six days", time.Date(2025, 3, 16, 23, 59, 0, 0, time.Local), "2025-03-10"},
		{"month boundary", time.Date(2025, 4, 2, 12, 0, 0, 0, time.Local), "2025-03-31"},
		{"year boundary", time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local), "2025-12-29"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WeekOf(tt.day); got != tt.want {
				t.Errorf("WeekOf(%v) = %q, want %q", tt.day, got, tt.want)
			}
		})
	}
}

func TestWeekdayOrder(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2025-03-10", 0}, // Monday
		{"2025-03-11", 1},
		{"2025-03-15", 5}, // Saturday
		{"2025-03-16", 6}, // Sunday
		{"not-a-date", 7},
	}
	for _, tt := range tests {
		if got := WeekdayOrder(tt.date); got != tt.want {
			t.Errorf("WeekdayOrder(%q) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName("2025-03-12"); got != "Wednesday" {
		t.Errorf("WeekdayName = %q, want Wednesday", got)
	}
	if got := WeekdayName("garbage"); got != "garbage" {
		t.Errorf("WeekdayName on bad input = %q, want passthrough", got)
	}
}
