// ABOUTME: Calendar-week helpers for Monday-anchored week keys.
// ABOUTME: Provides WeekOf derivation, weekday ordering, and day names.
package models

import "time"

// DateLayout is the calendar-date format used for Date and WeekOf keys.
const DateLayout = "2006-01-02"

// WeekOf returns the Monday of t's local calendar week as a YYYY-MM-DD key.
func WeekOf(t time.Time) string {
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	monday := t.AddDate(0, 0, -offset)
	return monday.Format(DateLayout)
}

// CurrentWeek returns the week key for the current local week.
func CurrentWeek() string {
	return WeekOf(time.Now())
}

// WeekdayOrder maps a YYYY-MM-DD date to its Monday-first position
// (Monday=0 ... Sunday=6). Unparseable dates sort last.
func WeekdayOrder(date string) int {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 7
	}
	return (int(t.Weekday()) + 6) % 7
}

// WeekdayName returns the English weekday name for a YYYY-MM-DD date,
// or the date itself if it does not parse.
func WeekdayName(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Weekday().String()
}
