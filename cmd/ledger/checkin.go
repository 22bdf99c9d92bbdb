// ABOUTME: CLI commands for weekly check-ins.
// ABOUTME: Builds prefilled drafts and clarification questions.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

var checkinMax int

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Weekly check-in helpers",
	Long: `Prepare a weekly check-in from the week's logged activities.

COMMANDS:

  draft       Prefilled check-in buckets (workouts, runs, weights, notes)
  questions   Follow-up questions for workouts missing a feeling

Both default to the current week; pass --week for an earlier one.`,
}

var checkinDraftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Build a prefilled check-in draft",
	RunE: func(cmd *cobra.Command, args []string) error {
		week := resolveWeek()
		draft := ledger.BuildCheckInDraft(appLedger.ForWeek(week))

		fmt.Printf("Check-in draft for week of %s\n\n", week)

		if len(draft.Runs) > 0 {
			color.New(color.Bold).Println("Runs")
			for _, r := range draft.Runs {
				line := fmt.Sprintf("  %s", r.Date)
				if r.Distance > 0 {
					line += fmt.Sprintf(": %.1f miles", r.Distance)
				}
				if r.Pace != "" {
					line += fmt.Sprintf(", %s/mile", r.Pace)
				}
				if r.Feeling != "" {
					line += fmt.Sprintf(", felt %s", r.Feeling)
				}
				fmt.Println(line)
			}
		}
		if len(draft.Workouts) > 0 {
			color.New(color.Bold).Println("Workouts")
			for _, w := range draft.Workouts {
				detail := w.Exercise
				if detail == "" {
					detail = w.Summary
				}
				if detail == "" {
					detail = w.SubType
				}
				line := fmt.Sprintf("  %s: %s", w.Date, detail)
				if w.Duration > 0 {
					line += fmt.Sprintf(" (%.0f min)", w.Duration)
				}
				fmt.Println(line)
			}
		}
		if len(draft.Weights) > 0 {
			color.New(color.Bold).Println("Weights")
			for _, w := range draft.Weights {
				fmt.Printf("  %s: %.1f lbs\n", w.Date, w.Weight)
			}
		}
		if len(draft.SleepNotes) > 0 {
			color.New(color.Bold).Println("Sleep")
			for _, n := range draft.SleepNotes {
				fmt.Printf("  %s\n", n)
			}
		}
		if len(draft.NutritionNotes) > 0 {
			color.New(color.Bold).Println("Nutrition")
			for _, n := range draft.NutritionNotes {
				fmt.Printf("  %s\n", n)
			}
		}

		if len(draft.Runs) == 0 && len(draft.Workouts) == 0 && len(draft.Weights) == 0 &&
			len(draft.SleepNotes) == 0 && len(draft.NutritionNotes) == 0 {
			fmt.Println("Nothing logged this week.")
		}

		return nil
	},
}

var checkinQuestionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Show clarification questions",
	RunE: func(cmd *cobra.Command, args []string) error {
		week := resolveWeek()
		questions := ledger.ClarifyQuestions(appLedger.ForWeek(week), checkinMax)
		if len(questions) == 0 {
			fmt.Println("Nothing to clarify this week.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, q := range questions {
			fmt.Printf("%s %s\n", faint.Sprint(models.ShortID(q.ActivityID)), q.Question)
		}

		return nil
	},
}

func init() {
	checkinCmd.PersistentFlags().StringVar(&weekOf, "week", "", "Monday week key (YYYY-MM-DD)")
	checkinQuestionsCmd.Flags().IntVarP(&checkinMax, "max", "n", 3, "max number of questions")

	checkinCmd.AddCommand(checkinDraftCmd)
	checkinCmd.AddCommand(checkinQuestionsCmd)
	rootCmd.AddCommand(checkinCmd)
}
