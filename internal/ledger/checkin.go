// ABOUTME: Weekly check-in helpers: clarification questions and prefill.
// ABOUTME: Prefill buckets feed the check-in UI as editable draft content.
package ledger

import (
	"fmt"

	"github.com/mtendies/ledger/internal/models"
)

// ClarifyQuestion pairs a templated question with the activity that
// prompted it.
type ClarifyQuestion struct {
	ActivityID string `json:"activityId"`
	Question   string `json:"question"`
}

// ClarifyQuestions selects up to maxCount of the week's progress workouts
// that lack an explicit feeling but carry some other workout payload
// (exercise, distance, duration, or PR) or a summary, sorted
// chronologically, and templates one question for each. Template
// priority: exercise name, then run/distance, then sub-type, then a
// generic fallback on summary or raw text.
func ClarifyQuestions(weekActivities []*models.Activity, maxCount int) []ClarifyQuestion {
	var candidates []*models.Activity
	for _, a := range ProgressActivities(weekActivities) {
		if a.Type != models.TypeWorkout {
			continue
		}
		if a.Data.Feeling != nil && *a.Data.Feeling != "" {
			continue
		}
		hasPayload := a.Data.Exercise != nil || a.Data.Distance != nil ||
			a.Data.Duration != nil || a.Data.PR != nil
		if !hasPayload && a.Summary == "" {
			continue
		}
		candidates = append(candidates, a)
	}

	candidates = Chronological(candidates)
	if maxCount >= 0 && len(candidates) > maxCount {
		candidates = candidates[:maxCount]
	}

	var out []ClarifyQuestion
	for _, a := range candidates {
		out = append(out, ClarifyQuestion{ActivityID: a.ID, Question: clarifyQuestion(a)})
	}
	return out
}

func clarifyQuestion(a *models.Activity) string {
	day := models.WeekdayName(a.Date)
	switch {
	case a.Data.Exercise != nil && *a.Data.Exercise != "":
		return fmt.Sprintf("You did %s on %s — how did that feel?", *a.Data.Exercise, day)
	case a.Data.Distance != nil:
		return fmt.Sprintf("You ran %s %s on %s — how did it feel?",
			fmtNum(*a.Data.Distance), mileWord(*a.Data.Distance), day)
	case a.SubType != "" && a.SubType != models.SubOther:
		return fmt.Sprintf("How did your %s workout on %s feel?", a.SubType, day)
	case a.Summary != "":
		return fmt.Sprintf("You logged %q on %s — how did that feel?", a.Summary, day)
	default:
		return fmt.Sprintf("You logged %q on %s — how did that feel?", a.RawText, day)
	}
}

// WorkoutDraft is the prefill projection of one workout entry.
type WorkoutDraft struct {
	Date     string  `json:"date"`
	SubType  string  `json:"subType,omitempty"`
	Exercise string  `json:"exercise,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Summary  string  `json:"summary,omitempty"`
}

// RunDraft is the prefill projection of one run entry.
type RunDraft struct {
	Date     string  `json:"date"`
	Distance float64 `json:"distance,omitempty"`
	Pace     string  `json:"pace,omitempty"`
	Feeling  string  `json:"feeling,omitempty"`
}

// WeightDraft is the prefill projection of one weigh-in.
type WeightDraft struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight,omitempty"`
}

// CheckInDraft partitions a week's activities into editable buckets for
// the check-in flow. The projection is not authoritative once the user
// edits it.
type CheckInDraft struct {
	Workouts       []WorkoutDraft `json:"workouts"`
	Runs           []RunDraft     `json:"runs"`
	Weights        []WeightDraft  `json:"weights"`
	SleepNotes     []string       `json:"sleepNotes"`
	NutritionNotes []string       `json:"nutritionNotes"`
}

// BuildCheckInDraft projects the week's activities into the fixed
// check-in buckets.
func BuildCheckInDraft(weekActivities []*models.Activity) CheckInDraft {
	draft := CheckInDraft{}
	for _, a := range Chronological(weekActivities) {
		switch a.Type {
		case models.TypeWorkout:
			if a.SubType == models.SubRun {
				r := RunDraft{Date: a.Date}
				if a.Data.Distance != nil {
					r.Distance = *a.Data.Distance
				}
				if a.Data.Pace != nil {
					r.Pace = *a.Data.Pace
				}
				if a.Data.Feeling != nil {
					r.Feeling = *a.Data.Feeling
				}
				draft.Runs = append(draft.Runs, r)
				continue
			}
			w := WorkoutDraft{Date: a.Date, SubType: string(a.SubType), Summary: a.Summary}
			if a.Data.Exercise != nil {
				w.Exercise = *a.Data.Exercise
			}
			if a.Data.Duration != nil {
				w.Duration = *a.Data.Duration
			}
			draft.Workouts = append(draft.Workouts, w)
		case models.TypeWeight:
			w := WeightDraft{Date: a.Date}
			if a.Data.Weight != nil {
				w.Weight = *a.Data.Weight
			}
			draft.Weights = append(draft.Weights, w)
		case models.TypeSleep:
			if note := draftNote(a); note != "" {
				draft.SleepNotes = append(draft.SleepNotes, note)
			}
		case models.TypeNutrition:
			if note := draftNote(a); note != "" {
				draft.NutritionNotes = append(draft.NutritionNotes, note)
			}
		}
	}
	return draft
}

func draftNote(a *models.Activity) string {
	switch {
	case a.Summary != "":
		return a.Summary
	case a.Data.Notes != nil && *a.Data.Notes != "":
		return *a.Data.Notes
	default:
		return a.RawText
	}
}
