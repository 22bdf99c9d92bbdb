// ABOUTME: Tests for clarification-question selection and check-in prefill.
// ABOUTME: Covers template priority, maxCount, and bucket projections.
package ledger

import (
	"strings"
	"testing"

	"github.com/mtendies/ledger/internal/models"
)

func TestClarifyQuestionsSelection(t *testing.T) {
	withFeeling := onDay(10, models.TypeWorkout, models.SubRun, models.ActivityData{
		Distance: models.Float64(3),
		Feeling:  models.String("good"),
	})
	noPayload := onDay(11, models.TypeWorkout, models.SubOther, models.ActivityData{})
	run := onDay(12, models.TypeWorkout, models.SubRun, models.ActivityData{
		Distance: models.Float64(5),
	})
	lift := onDay(13, models.TypeWorkout, models.SubStrength, models.ActivityData{
		Exercise: models.String("deadlifts"),
	})
	sleep := onDay(14, models.TypeSleep, "", models.ActivityData{Hours: models.Float64(8)})

	got := ClarifyQuestions([]*models.Activity{lift, sleep, run, noPayload, withFeeling}, 5)
	if len(got) != 2 {
		t.Fatalf("questions = %d, want 2 (run and lift only)", len(got))
	}
	// Chronological: run on Wednesday before lift on Thursday.
	if got[0].ActivityID != run.ID || got[1].ActivityID != lift.ID {
		t.Error("questions must be sorted chronologically")
	}
}

func TestClarifyQuestionTemplates(t *testing.T) {
	tests := []struct {
		name string
		a    *models.Activity
		want string
	}{
		{
			"exercise template wins",
			onDay(13, models.TypeWorkout, models.SubStrength, models.ActivityData{
				Exercise: models.String("deadlifts"),
				Duration: models.Float64(45),
			}),
			"You did deadlifts on Thursday — how did that feel?",
		},
		{
			"distance template",
			onDay(12, models.TypeWorkout, models.SubRun, models.ActivityData{
				Distance: models.Float64(5),
			}),
			"You ran 5 miles on Wednesday — how did it feel?",
		},
		{
			"subtype template",
			onDay(11, models.TypeWorkout, models.SubYoga, models.ActivityData{
				Duration: models.Float64(30),
			}),
			"How did your yoga workout on Tuesday feel?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClarifyQuestions([]*models.Activity{tt.a}, 1)
			if len(got) != 1 {
				t.Fatalf("questions = %d, want 1", len(got))
			}
			if got[0].Question != tt.want {
				t.Errorf("question = %q, want %q", got[0].Question, tt.want)
			}
		})
	}
}

func TestClarifyQuestionsGenericFallback(t *testing.T) {
	a := onDay(10, models.TypeWorkout, models.SubOther, models.ActivityData{})
	a.Summary = "field hockey scrimmage"

	got := ClarifyQuestions([]*models.Activity{a}, 3)
	if len(got) != 1 {
		t.Fatalf("questions = %d, want 1", len(got))
	}
	if !strings.Contains(got[0].Question, "field hockey scrimmage") {
		t.Errorf("fallback should quote the summary: %q", got[0].Question)
	}
}

func TestClarifyQuestionsMaxCount(t *testing.T) {
	var week []*models.Activity
	for day := 10; day < 15; day++ {
		week = append(week, onDay(day, models.TypeWorkout, models.SubRun, models.ActivityData{
			Distance: models.Float64(2),
		}))
	}

	got := ClarifyQuestions(week, 2)
	if len(got) != 2 {
		t.Errorf("questions = %d, want capped at 2", len(got))
	}
}

func TestBuildCheckInDraft(t *testing.T) {
	run := onDay(10, models.TypeWorkout, models.SubRun, models.ActivityData{
		Distance: models.Float64(3),
		Pace:     models.String("9:30"),
		Feeling:  models.String("good"),
	})
	lift := onDay(11, models.TypeWorkout, models.SubStrength, models.ActivityData{
		Exercise: models.String("bench press"),
		Duration: models.Float64(45),
	})
	weighIn := onDay(12, models.TypeWeight, "", models.ActivityData{Weight: models.Float64(180)})
	sleep := onDay(13, models.TypeSleep, "", models.ActivityData{
		Notes: models.String("slept through the night"),
	})
	meal := onDay(14, models.TypeNutrition, "", models.ActivityData{})
	meal.Summary = "high protein day"

	draft := BuildCheckInDraft([]*models.Activity{meal, sleep, weighIn, lift, run})

	if len(draft.Runs) != 1 || draft.Runs[0].Distance != 3 || draft.Runs[0].Pace != "9:30" {
		t.Errorf("runs bucket = %+v", draft.Runs)
	}
	if len(draft.Workouts) != 1 || draft.Workouts[0].Exercise != "bench press" {
		t.Errorf("workouts bucket = %+v", draft.Workouts)
	}
	if len(draft.Weights) != 1 || draft.Weights[0].Weight != 180 {
		t.Errorf("weights bucket = %+v", draft.Weights)
	}
	if len(draft.SleepNotes) != 1 || draft.SleepNotes[0] != "slept through the night" {
		t.Errorf("sleep notes = %v", draft.SleepNotes)
	}
	if len(draft.NutritionNotes) != 1 || draft.NutritionNotes[0] != "high protein day" {
		t.Errorf("nutrition notes = %v", draft.NutritionNotes)
	}
}
