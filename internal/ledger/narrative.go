// ABOUTME: Narrative builders rendering a week's activities as prose.
// ABOUTME: One clause per entry, Monday-first order, only supplied fields.
package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mtendies/ledger/internal/models"
)

// Chronological orders entries Monday through Sunday by frozen date, with
// timestamp as tie-break within the same calendar day.
func Chronological(activities []*models.Activity) []*models.Activity {
	out := append([]*models.Activity(nil), activities...)
	sort.SliceStable(out, func(i, j int) bool {
		oi, oj := models.WeekdayOrder(out[i].Date), models.WeekdayOrder(out[j].Date)
		if oi != oj {
			return oi < oj
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// fmtNum renders a float without trailing zeros (3, 7.5, 9.25).
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func mileWord(v float64) string {
	if v == 1 {
		return "mile"
	}
	return "miles"
}

func hourWord(v float64) string {
	if v == 1 {
		return "hour"
	}
	return "hours"
}

// sentence joins clauses with ". " and closes the paragraph.
func sentence(clauses []string) string {
	if len(clauses) == 0 {
		return ""
	}
	return strings.Join(clauses, ". ") + "."
}

// runDetail renders the body of a running clause from supplied fields only.
func runDetail(a *models.Activity) string {
	var parts []string
	if a.Data.Distance != nil {
		parts = append(parts, fmt.Sprintf("%s %s", fmtNum(*a.Data.Distance), mileWord(*a.Data.Distance)))
	}
	if a.Data.Pace != nil {
		parts = append(parts, fmt.Sprintf("%s/mile pace", *a.Data.Pace))
	}
	if a.Data.Duration != nil && a.Data.Distance == nil {
		parts = append(parts, fmt.Sprintf("%s min run", fmtNum(*a.Data.Duration)))
	}
	if len(parts) == 0 {
		if a.Summary != "" {
			parts = append(parts, a.Summary)
		} else {
			parts = append(parts, "logged a run")
		}
	}
	parts = appendPR(parts, a)
	parts = appendFeeling(parts, a)
	return strings.Join(parts, ", ")
}

func appendFeeling(parts []string, a *models.Activity) []string {
	if a.Data.Feeling != nil && *a.Data.Feeling != "" {
		parts = append(parts, fmt.Sprintf("felt %s", *a.Data.Feeling))
	}
	return parts
}

func appendPR(parts []string, a *models.Activity) []string {
	if a.Data.PRValue != nil && *a.Data.PRValue != "" {
		parts = append(parts, fmt.Sprintf("new PR: %s", *a.Data.PRValue))
	} else if a.Data.PR != nil && *a.Data.PR {
		parts = append(parts, "hit a new PR")
	}
	return parts
}

func dayClause(a *models.Activity, detail string) string {
	return fmt.Sprintf("%s: %s", models.WeekdayName(a.Date), detail)
}

// RunningNarrative renders the week's runs chronologically, with total
// mileage appended only when more than one run contributed distance.
func RunningNarrative(activities []*models.Activity) string {
	runs := Chronological(activities)
	if len(runs) == 0 {
		return ""
	}

	var clauses []string
	total := 0.0
	contributed := 0
	for _, a := range runs {
		clauses = append(clauses, dayClause(a, runDetail(a)))
		if a.Data.Distance != nil {
			total += *a.Data.Distance
			contributed++
		}
	}

	out := sentence(clauses)
	if contributed > 1 && total > 0 {
		out += fmt.Sprintf(" Total: %s %s for the week.", fmtNum(total), mileWord(total))
	}
	return out
}

// StrengthNarrative renders the week's strength sessions.
func StrengthNarrative(activities []*models.Activity) string {
	sessions := Chronological(activities)
	if len(sessions) == 0 {
		return ""
	}

	var clauses []string
	for _, a := range sessions {
		var parts []string
		switch {
		case a.Data.Exercise != nil && *a.Data.Exercise != "":
			parts = append(parts, *a.Data.Exercise)
		case a.Summary != "":
			parts = append(parts, a.Summary)
		default:
			parts = append(parts, "strength session")
		}
		if a.Data.Duration != nil {
			parts = append(parts, fmt.Sprintf("%s min", fmtNum(*a.Data.Duration)))
		}
		parts = appendPR(parts, a)
		parts = appendFeeling(parts, a)
		clauses = append(clauses, dayClause(a, strings.Join(parts, ", ")))
	}

	out := sentence(clauses)
	if len(sessions) > 1 {
		out += fmt.Sprintf(" %d strength sessions this week.", len(sessions))
	}
	return out
}

// OtherWorkoutsNarrative renders workouts that are neither runs nor
// strength sessions (cardio, yoga, walks, other).
func OtherWorkoutsNarrative(activities []*models.Activity) string {
	workouts := Chronological(activities)
	if len(workouts) == 0 {
		return ""
	}

	var clauses []string
	for _, a := range workouts {
		var parts []string
		switch {
		case a.Data.Exercise != nil && *a.Data.Exercise != "":
			parts = append(parts, *a.Data.Exercise)
		case a.SubType != "" && a.SubType != models.SubOther:
			parts = append(parts, string(a.SubType))
		case a.Summary != "":
			parts = append(parts, a.Summary)
		default:
			parts = append(parts, "workout")
		}
		if a.Data.Duration != nil {
			parts = append(parts, fmt.Sprintf("%s min", fmtNum(*a.Data.Duration)))
		}
		parts = appendFeeling(parts, a)
		clauses = append(clauses, dayClause(a, strings.Join(parts, ", ")))
	}
	return sentence(clauses)
}

// SleepNarrative renders the week's sleep entries, with an average
// appended only when more than one entry supplied hours.
func SleepNarrative(activities []*models.Activity) string {
	nights := Chronological(activities)
	if len(nights) == 0 {
		return ""
	}

	var clauses []string
	total := 0.0
	contributed := 0
	for _, a := range nights {
		var parts []string
		if a.Data.Hours != nil {
			parts = append(parts, fmt.Sprintf("%s %s", fmtNum(*a.Data.Hours), hourWord(*a.Data.Hours)))
			total += *a.Data.Hours
			contributed++
		}
		if a.Data.Quality != nil && *a.Data.Quality != "" {
			parts = append(parts, fmt.Sprintf("%s quality", *a.Data.Quality))
		}
		if len(parts) == 0 {
			if a.Summary != "" {
				parts = append(parts, a.Summary)
			} else {
				parts = append(parts, "logged sleep")
			}
		}
		clauses = append(clauses, dayClause(a, strings.Join(parts, ", ")))
	}

	out := sentence(clauses)
	if contributed > 1 {
		out += fmt.Sprintf(" Averaged %.1f hours.", total/float64(contributed))
	}
	return out
}

// NutritionNarrative renders the week's nutrition entries.
func NutritionNarrative(activities []*models.Activity) string {
	meals := Chronological(activities)
	if len(meals) == 0 {
		return ""
	}

	var clauses []string
	for _, a := range meals {
		var parts []string
		switch {
		case a.Summary != "":
			parts = append(parts, a.Summary)
		case a.Data.Notes != nil && *a.Data.Notes != "":
			parts = append(parts, *a.Data.Notes)
		case a.RawText != "":
			parts = append(parts, a.RawText)
		default:
			parts = append(parts, "logged nutrition")
		}
		if a.Data.HitProteinGoal != nil {
			if *a.Data.HitProteinGoal {
				parts = append(parts, "hit protein goal")
			} else {
				parts = append(parts, "missed protein goal")
			}
		}
		if a.Data.Calories != nil {
			parts = append(parts, fmt.Sprintf("%s cal", fmtNum(*a.Data.Calories)))
		}
		if a.Data.Protein != nil {
			parts = append(parts, fmt.Sprintf("%sg protein", fmtNum(*a.Data.Protein)))
		}
		clauses = append(clauses, dayClause(a, strings.Join(parts, ", ")))
	}
	return sentence(clauses)
}

// WeightNarrative renders the week's weigh-ins. The week-over-week delta
// is appended only when more than one entry supplied a value; the sign is
// a literal numeric comparison of the first and last entries.
func WeightNarrative(activities []*models.Activity) string {
	weighIns := Chronological(activities)
	if len(weighIns) == 0 {
		return ""
	}

	var clauses []string
	var values []float64
	for _, a := range weighIns {
		if a.Data.Weight != nil {
			clauses = append(clauses, dayClause(a, fmt.Sprintf("%s lbs", fmtNum(*a.Data.Weight))))
			values = append(values, *a.Data.Weight)
		} else if a.Summary != "" {
			clauses = append(clauses, dayClause(a, a.Summary))
		}
	}
	if len(clauses) == 0 {
		return ""
	}

	out := sentence(clauses)
	if len(values) > 1 {
		delta := values[len(values)-1] - values[0]
		switch {
		case delta < 0:
			out += fmt.Sprintf(" Overall down %.1f lbs for the week.", -delta)
		case delta > 0:
			out += fmt.Sprintf(" Overall up %.1f lbs for the week.", delta)
		default:
			out += " Overall no change for the week."
		}
	}
	return out
}

// workoutDetail dispatches a workout entry to its sub-type renderer.
func workoutDetail(a *models.Activity) string {
	switch a.SubType {
	case models.SubRun:
		return runDetail(a)
	default:
		var parts []string
		switch {
		case a.Data.Exercise != nil && *a.Data.Exercise != "":
			parts = append(parts, *a.Data.Exercise)
		case a.SubType != "" && a.SubType != models.SubOther:
			parts = append(parts, string(a.SubType))
		case a.Summary != "":
			parts = append(parts, a.Summary)
		default:
			parts = append(parts, "workout")
		}
		if a.Data.Duration != nil {
			parts = append(parts, fmt.Sprintf("%s min", fmtNum(*a.Data.Duration)))
		}
		parts = appendPR(parts, a)
		parts = appendFeeling(parts, a)
		return strings.Join(parts, ", ")
	}
}

// WorkoutsNarrative renders all of the week's workouts in one passage,
// regardless of sub-type.
func WorkoutsNarrative(activities []*models.Activity) string {
	workouts := Chronological(activities)
	if len(workouts) == 0 {
		return ""
	}
	var clauses []string
	for _, a := range workouts {
		clauses = append(clauses, dayClause(a, workoutDetail(a)))
	}
	return sentence(clauses)
}

// connector picks the flowing-paragraph opener for position i of n.
func connector(i, n int) string {
	switch {
	case i == 0:
		return "On"
	case i == n-1:
		return "Finally on"
	case i%2 == 1:
		return "Then on"
	default:
		return "Later on"
	}
}

// cohesiveDetail phrases one entry as an action for the flowing variant.
func cohesiveDetail(a *models.Activity) string {
	switch a.Type {
	case models.TypeWorkout:
		if a.SubType == models.SubRun && a.Data.Distance != nil {
			return fmt.Sprintf("you ran %s %s", fmtNum(*a.Data.Distance), mileWord(*a.Data.Distance))
		}
		if a.Data.Exercise != nil && *a.Data.Exercise != "" {
			return fmt.Sprintf("you did %s", *a.Data.Exercise)
		}
		if a.SubType != "" && a.SubType != models.SubOther {
			return fmt.Sprintf("you did a %s workout", a.SubType)
		}
		return "you worked out"
	case models.TypeSleep:
		if a.Data.Hours != nil {
			return fmt.Sprintf("you slept %s %s", fmtNum(*a.Data.Hours), hourWord(*a.Data.Hours))
		}
		return "you logged sleep"
	case models.TypeWeight:
		if a.Data.Weight != nil {
			return fmt.Sprintf("you weighed in at %s lbs", fmtNum(*a.Data.Weight))
		}
		return "you weighed in"
	case models.TypeNutrition:
		if a.Summary != "" {
			return fmt.Sprintf("you logged %s", a.Summary)
		}
		return "you logged a meal"
	case models.TypeHydration:
		return "you tracked hydration"
	default:
		if a.Summary != "" {
			return fmt.Sprintf("you logged %s", a.Summary)
		}
		return "you logged an entry"
	}
}

// CohesiveNarrative renders the entries as one flowing paragraph using
// positional connectors instead of one clause per sentence.
func CohesiveNarrative(activities []*models.Activity) string {
	entries := Chronological(activities)
	if len(entries) == 0 {
		return ""
	}

	var sentences []string
	for i, a := range entries {
		sentences = append(sentences, fmt.Sprintf("%s %s %s.",
			connector(i, len(entries)), models.WeekdayName(a.Date), cohesiveDetail(a)))
	}
	return strings.Join(sentences, " ")
}

// FocusNarrative renders the week's progress toward one focus item. The
// focus text drives category inference; the stored goal-connection
// indices are a legacy fallback used only when no text is supplied.
func FocusNarrative(weekActivities []*models.Activity, focusText string, focusIndex int) string {
	progress := ProgressActivities(weekActivities)

	var matched []*models.Activity
	if focusText != "" {
		cat, ok := InferFocusCategory(focusText)
		if !ok {
			return ""
		}
		keywords := FocusContentKeywords(focusText)
		for _, a := range progress {
			if MatchesFocus(a, cat, keywords) {
				matched = append(matched, a)
			}
		}
		if len(matched) == 0 {
			return ""
		}
		switch {
		case cat.Type == models.TypeWorkout && cat.SubType == models.SubRun:
			return RunningNarrative(matched)
		case cat.Type == models.TypeWorkout && cat.SubType == models.SubStrength:
			return StrengthNarrative(matched)
		case cat.Type == models.TypeWorkout:
			return WorkoutsNarrative(matched)
		case cat.Type == models.TypeSleep:
			return SleepNarrative(matched)
		case cat.Type == models.TypeNutrition:
			return NutritionNarrative(matched)
		case cat.Type == models.TypeWeight:
			return WeightNarrative(matched)
		default:
			return CohesiveNarrative(matched)
		}
	}

	for _, a := range progress {
		for _, idx := range a.GoalConnections {
			if idx == focusIndex {
				matched = append(matched, a)
				break
			}
		}
	}
	return CohesiveNarrative(matched)
}

// WeeklyNarrative assembles the per-category passages for a week's
// progress activities. Empty categories are omitted.
func WeeklyNarrative(weekActivities []*models.Activity) map[string]string {
	progress := ProgressActivities(weekActivities)

	byCategory := map[string][]*models.Activity{}
	for _, a := range progress {
		switch {
		case a.Type == models.TypeWorkout && a.SubType == models.SubRun:
			byCategory["running"] = append(byCategory["running"], a)
		case a.Type == models.TypeWorkout && a.SubType == models.SubStrength:
			byCategory["strength"] = append(byCategory["strength"], a)
		case a.Type == models.TypeWorkout:
			byCategory["other_workouts"] = append(byCategory["other_workouts"], a)
		case a.Type == models.TypeSleep:
			byCategory["sleep"] = append(byCategory["sleep"], a)
		case a.Type == models.TypeNutrition:
			byCategory["nutrition"] = append(byCategory["nutrition"], a)
		case a.Type == models.TypeWeight:
			byCategory["weight"] = append(byCategory["weight"], a)
		}
	}

	out := map[string]string{}
	if s := RunningNarrative(byCategory["running"]); s != "" {
		out["running"] = s
	}
	if s := StrengthNarrative(byCategory["strength"]); s != "" {
		out["strength"] = s
	}
	if s := OtherWorkoutsNarrative(byCategory["other_workouts"]); s != "" {
		out["other_workouts"] = s
	}
	if s := SleepNarrative(byCategory["sleep"]); s != "" {
		out["sleep"] = s
	}
	if s := NutritionNarrative(byCategory["nutrition"]); s != "" {
		out["nutrition"] = s
	}
	if s := WeightNarrative(byCategory["weight"]); s != "" {
		out["weight"] = s
	}
	return out
}
