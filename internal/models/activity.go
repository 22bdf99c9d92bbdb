// ABOUTME: Activity model for the health activity ledger.
// ABOUTME: Activities carry a typed data bag plus frozen date/weekOf keys.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ActivityType classifies what kind of event an activity records.
type ActivityType string

const (
	TypeWorkout   ActivityType = "workout"
	TypeNutrition ActivityType = "nutrition"
	TypeSleep     ActivityType = "sleep"
	TypeWeight    ActivityType = "weight"
	TypeHydration ActivityType = "hydration"
	TypeGeneral   ActivityType = "general"
)

// AllActivityTypes returns all valid activity types.
var AllActivityTypes = []ActivityType{
	TypeWorkout, TypeNutrition, TypeSleep, TypeWeight, TypeHydration, TypeGeneral,
}

// IsValidActivityType checks if a string is a valid activity type.
func IsValidActivityType(s string) bool {
	for _, at := range AllActivityTypes {
		if string(at) == s {
			return true
		}
	}
	return false
}

// SubType is a finer classification, meaningful mainly for workouts.
type SubType string

const (
	SubRun      SubType = "run"
	SubStrength SubType = "strength"
	SubCardio   SubType = "cardio"
	SubYoga     SubType = "yoga"
	SubWalk     SubType = "walk"
	SubOther    SubType = "other"
)

// AllSubTypes returns all valid workout sub-types.
var AllSubTypes = []SubType{SubRun, SubStrength, SubCardio, SubYoga, SubWalk, SubOther}

// IsValidSubType checks if a string is a valid workout sub-type.
func IsValidSubType(s string) bool {
	for _, st := range AllSubTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Source identifies the channel an activity was logged from.
type Source string

const (
	SourceDashboard Source = "dashboard"
	SourcePlaybook  Source = "playbook"
	SourceChat      Source = "chat"
	SourceCheckIn   Source = "check-in"
)

// AllSources returns all valid activity sources.
var AllSources = []Source{SourceDashboard, SourcePlaybook, SourceChat, SourceCheckIn}

// IsValidSource checks if a string is a valid source.
func IsValidSource(s string) bool {
	for _, src := range AllSources {
		if string(src) == s {
			return true
		}
	}
	return false
}

// ActivityData is the open bag of optional fields an activity may carry.
// A given activity populates only the subset relevant to its type; nil
// means the user never supplied the field.
type ActivityData struct {
	Distance       *float64 `json:"distance,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	Pace           *string  `json:"pace,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Exercise       *string  `json:"exercise,omitempty"`
	Feeling        *string  `json:"feeling,omitempty"`
	Quality        *string  `json:"quality,omitempty"`
	Hours          *float64 `json:"hours,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
	PR             *bool    `json:"pr,omitempty"`
	PRValue        *string  `json:"prValue,omitempty"`
	HitProteinGoal *bool    `json:"hitProteinGoal,omitempty"`
	Calories       *float64 `json:"calories,omitempty"`
	Protein        *float64 `json:"protein,omitempty"`
}

// Merge applies non-nil fields from patch onto d, key-wise. Existing
// fields absent from patch survive.
func (d *ActivityData) Merge(patch *ActivityData) {
	if patch == nil {
		return
	}
	if patch.Distance != nil {
		d.Distance = patch.Distance
	}
	if patch.Duration != nil {
		d.Duration = patch.Duration
	}
	if patch.Pace != nil {
		d.Pace = patch.Pace
	}
	if patch.Weight != nil {
		d.Weight = patch.Weight
	}
	if patch.Exercise != nil {
		d.Exercise = patch.Exercise
	}
	if patch.Feeling != nil {
		d.Feeling = patch.Feeling
	}
	if patch.Quality != nil {
		d.Quality = patch.Quality
	}
	if patch.Hours != nil {
		d.Hours = patch.Hours
	}
	if patch.Notes != nil {
		d.Notes = patch.Notes
	}
	if patch.PR != nil {
		d.PR = patch.PR
	}
	if patch.PRValue != nil {
		d.PRValue = patch.PRValue
	}
	if patch.HitProteinGoal != nil {
		d.HitProteinGoal = patch.HitProteinGoal
	}
	if patch.Calories != nil {
		d.Calories = patch.Calories
	}
	if patch.Protein != nil {
		d.Protein = patch.Protein
	}
}

// IsEmpty reports whether no data field is set.
func (d *ActivityData) IsEmpty() bool {
	return d == nil || *d == (ActivityData{})
}

// Activity represents one logged user event.
//
// Date and WeekOf are derived from Timestamp once, at creation, and are
// never recomputed on read. Downstream weekly aggregation depends on the
// frozen values even if the local timezone later changes.
type Activity struct {
	ID              string       `json:"id"`
	Timestamp       time.Time    `json:"timestamp"`
	Date            string       `json:"date"`
	WeekOf          string       `json:"weekOf"`
	Type            ActivityType `json:"type"`
	SubType         SubType      `json:"subType,omitempty"`
	Source          Source       `json:"source"`
	RawText         string       `json:"rawText,omitempty"`
	Summary         string       `json:"summary,omitempty"`
	Data            ActivityData `json:"data"`
	GoalConnections []int        `json:"goalConnections,omitempty"`
}

// NewActivity creates an Activity with generated ID and the current
// timestamp. Date and WeekOf are frozen from the timestamp.
func NewActivity(activityType ActivityType) *Activity {
	a := &Activity{
		ID:     uuid.New().String(),
		Type:   activityType,
		Source: SourceDashboard,
	}
	a.stamp(time.Now())
	return a
}

// WithTimestamp sets a custom creation instant and re-derives Date and
// WeekOf from it. Only meaningful before the activity is logged.
func (a *Activity) WithTimestamp(t time.Time) *Activity {
	a.stamp(t)
	return a
}

// WithSubType sets the workout sub-type.
func (a *Activity) WithSubType(st SubType) *Activity {
	a.SubType = st
	return a
}

// WithSource sets the origin channel.
func (a *Activity) WithSource(src Source) *Activity {
	a.Source = src
	return a
}

// WithRawText sets the original free-text input.
func (a *Activity) WithRawText(text string) *Activity {
	a.RawText = text
	return a
}

// WithSummary sets the short human-readable label.
func (a *Activity) WithSummary(summary string) *Activity {
	a.Summary = summary
	return a
}

// WithData merges the given fields into the activity's data bag.
func (a *Activity) WithData(data ActivityData) *Activity {
	a.Data.Merge(&data)
	return a
}

// WithGoalConnections links the activity to weekly focus items by index.
func (a *Activity) WithGoalConnections(indices []int) *Activity {
	a.GoalConnections = indices
	return a
}

func (a *Activity) stamp(t time.Time) {
	a.Timestamp = t
	a.Date = t.Format(DateLayout)
	a.WeekOf = WeekOf(t)
}

// SearchText synthesizes the blob substring search runs against:
// rawText, summary, data notes and exercise, space-joined, empty fields
// skipped.
func (a *Activity) SearchText() string {
	parts := make([]string, 0, 4)
	if a.RawText != "" {
		parts = append(parts, a.RawText)
	}
	if a.Summary != "" {
		parts = append(parts, a.Summary)
	}
	if a.Data.Notes != nil && *a.Data.Notes != "" {
		parts = append(parts, *a.Data.Notes)
	}
	if a.Data.Exercise != nil && *a.Data.Exercise != "" {
		parts = append(parts, *a.Data.Exercise)
	}
	return strings.Join(parts, " ")
}

// ShortID returns the 8-character display prefix of an activity id.
// Ids shorter than the prefix, which can appear in imported backups,
// are returned whole.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Float64 returns a pointer to v, for populating ActivityData fields.
func Float64(v float64) *float64 { return &v }

// String returns a pointer to v, for populating ActivityData fields.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for populating ActivityData fields.
func Bool(v bool) *bool { return &v }
