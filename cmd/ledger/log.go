// ABOUTME: CLI command for logging activities.
// ABOUTME: Handles type validation, data flags, and calendar stamping.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

var (
	logSubType     string
	logSource      string
	logRawText     string
	logAt          string
	logDistance    float64
	logDuration    float64
	logPace        string
	logWeight      float64
	logExercise    string
	logFeeling     string
	logQuality     string
	logHours       float64
	logNotes       string
	logPR          bool
	logPRValue     string
	logCalories    float64
	logProtein     float64
	logProteinGoal bool
	logGoals       []int
)

var logCmd = &cobra.Command{
	Use:     "log <type> [summary...]",
	Aliases: []string{"add", "a"},
	Short:   "Log an activity",
	Long: `Log an activity. The type is required; everything else is optional.

Examples:
  ledger log workout --sub run --distance 3 --pace 9:30
  ledger log workout --sub strength --exercise "bench press" --pr --pr-value "225 lbs"
  ledger log sleep --hours 7.5 --quality good
  ledger log weight --weight 175.5
  ledger log nutrition hit my protein goal --protein-goal
  ledger log general "switching to morning runs" --source chat`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		activityType := args[0]
		if !models.IsValidActivityType(activityType) {
			return fmt.Errorf("unknown activity type: %s\nValid types: workout, nutrition, sleep, weight, hydration, general", activityType)
		}
		if logSubType != "" && !models.IsValidSubType(logSubType) {
			return fmt.Errorf("unknown sub-type: %s\nValid sub-types: run, strength, cardio, yoga, walk, other", logSubType)
		}
		if logSource != "" && !models.IsValidSource(logSource) {
			return fmt.Errorf("unknown source: %s\nValid sources: dashboard, playbook, chat, check-in", logSource)
		}

		summary := strings.Join(args[1:], " ")

		draft := ledger.Draft{
			Type:            models.ActivityType(activityType),
			SubType:         models.SubType(logSubType),
			Source:          models.Source(logSource),
			RawText:         logRawText,
			Summary:         summary,
			Data:            dataFromFlags(cmd),
			GoalConnections: logGoals,
		}

		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			draft.Timestamp = t
		}

		a, err := appLedger.Log(draft)
		if err != nil {
			return fmt.Errorf("failed to log activity: %w", err)
		}

		color.Green("✓ Logged %s", a.Type)
		label := a.Summary
		if label == "" {
			label = a.Date
		}
		fmt.Printf("  %s %s (week of %s)\n",
			color.New(color.Faint).Sprint(models.ShortID(a.ID)),
			label, a.WeekOf)

		return nil
	},
}

// dataFromFlags builds ActivityData from the flags the user actually set.
func dataFromFlags(cmd *cobra.Command) models.ActivityData {
	data := models.ActivityData{}
	if cmd.Flags().Changed("distance") {
		data.Distance = &logDistance
	}
	if cmd.Flags().Changed("duration") {
		data.Duration = &logDuration
	}
	if logPace != "" {
		data.Pace = &logPace
	}
	if cmd.Flags().Changed("weight") {
		data.Weight = &logWeight
	}
	if logExercise != "" {
		data.Exercise = &logExercise
	}
	if logFeeling != "" {
		data.Feeling = &logFeeling
	}
	if logQuality != "" {
		data.Quality = &logQuality
	}
	if cmd.Flags().Changed("hours") {
		data.Hours = &logHours
	}
	if logNotes != "" {
		data.Notes = &logNotes
	}
	if cmd.Flags().Changed("pr") {
		data.PR = &logPR
	}
	if logPRValue != "" {
		data.PRValue = &logPRValue
	}
	if cmd.Flags().Changed("calories") {
		data.Calories = &logCalories
	}
	if cmd.Flags().Changed("protein") {
		data.Protein = &logProtein
	}
	if cmd.Flags().Changed("protein-goal") {
		data.HitProteinGoal = &logProteinGoal
	}
	return data
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.ParseInLocation(f, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringVar(&logSubType, "sub", "", "workout sub-type (run, strength, cardio, yoga, walk, other)")
	logCmd.Flags().StringVar(&logSource, "source", "", "origin channel (dashboard, playbook, chat, check-in)")
	logCmd.Flags().StringVar(&logRawText, "raw", "", "original free-text input")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	logCmd.Flags().Float64Var(&logDistance, "distance", 0, "distance in miles")
	logCmd.Flags().Float64Var(&logDuration, "duration", 0, "duration in minutes")
	logCmd.Flags().StringVar(&logPace, "pace", "", "pace per mile (e.g. 9:30)")
	logCmd.Flags().Float64Var(&logWeight, "weight", 0, "body weight in lbs")
	logCmd.Flags().StringVar(&logExercise, "exercise", "", "exercise name")
	logCmd.Flags().StringVar(&logFeeling, "feeling", "", "how it felt")
	logCmd.Flags().StringVar(&logQuality, "quality", "", "sleep quality")
	logCmd.Flags().Float64Var(&logHours, "hours", 0, "sleep hours")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-form notes")
	logCmd.Flags().BoolVar(&logPR, "pr", false, "personal record")
	logCmd.Flags().StringVar(&logPRValue, "pr-value", "", "the PR value (e.g. 225 lbs)")
	logCmd.Flags().Float64Var(&logCalories, "calories", 0, "calories consumed")
	logCmd.Flags().Float64Var(&logProtein, "protein", 0, "protein grams consumed")
	logCmd.Flags().BoolVar(&logProteinGoal, "protein-goal", false, "hit the protein goal")
	logCmd.Flags().IntSliceVar(&logGoals, "goal", nil, "focus-item indices this entry connects to")
	rootCmd.AddCommand(logCmd)
}
