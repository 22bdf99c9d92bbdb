// ABOUTME: CLI commands for weekly summaries and narratives.
// ABOUTME: Supports stats, per-category passages, stories, and focus progress.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

var weekOf string

var weekCmd = &cobra.Command{
	Use:     "week",
	Aliases: []string{"w"},
	Short:   "Weekly summaries and narratives",
	Long: `Summarize and narrate a week of activities.

Weeks start on Monday. All subcommands default to the current week;
pass --week with a Monday date (YYYY-MM-DD) for an earlier one.

COMMANDS:

  summary     Counts by type, run mileage, latest weight
  narrative   Per-category progress passages
  story       One flowing story of the week
  focus       Progress toward a focus goal described in free text`,
}

var weekSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show weekly stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		week := resolveWeek()
		stats := ledger.WeekSummary(week, appLedger.ForWeek(week))

		fmt.Printf("Week of %s\n\n", stats.WeekOf)
		if stats.Total == 0 {
			fmt.Println("No activities this week.")
			return nil
		}

		fmt.Printf("Activities: %d\n", stats.Total)
		for _, t := range models.AllActivityTypes {
			if n := stats.ByType[string(t)]; n > 0 {
				fmt.Printf("  %s %d\n", padRight(string(t), 12), n)
			}
		}
		if stats.RunMiles > 0 {
			fmt.Printf("Run mileage: %.1f miles\n", stats.RunMiles)
		}
		if stats.LatestWeight != nil {
			fmt.Printf("Latest weight: %.1f lbs\n", *stats.LatestWeight)
		}

		return nil
	},
}

var weekNarrativeCmd = &cobra.Command{
	Use:   "narrative",
	Short: "Show per-category progress passages",
	RunE: func(cmd *cobra.Command, args []string) error {
		week := resolveWeek()
		sections := ledger.WeeklyNarrative(appLedger.ForWeek(week))
		if len(sections) == 0 {
			fmt.Println("No progress activities this week.")
			return nil
		}

		order := []struct{ key, title string }{
			{"running", "Running"},
			{"strength", "Strength"},
			{"other_workouts", "Other Workouts"},
			{"sleep", "Sleep"},
			{"nutrition", "Nutrition"},
			{"weight", "Weight"},
		}
		for _, s := range order {
			if text, ok := sections[s.key]; ok {
				color.New(color.Bold).Println(s.title)
				fmt.Printf("  %s\n", text)
			}
		}

		return nil
	},
}

var weekStoryCmd = &cobra.Command{
	Use:   "story",
	Short: "Tell the week as one flowing story",
	RunE: func(cmd *cobra.Command, args []string) error {
		week := resolveWeek()
		progress := ledger.ProgressActivities(appLedger.ForWeek(week))
		story := ledger.CohesiveNarrative(progress)
		if story == "" {
			fmt.Println("No progress activities this week.")
			return nil
		}

		fmt.Println(story)
		return nil
	},
}

var weekFocusCmd = &cobra.Command{
	Use:   "focus <text...>",
	Short: "Narrate progress toward a focus goal",
	Long: `Narrate this week's progress toward a focus goal.

The goal is described in free text; category keywords in the text decide
which activities count toward it.

EXAMPLES:

  ledger week focus "run 3x this week"
  ledger week focus "sleep 8 hours a night"
  ledger week focus "daily creatine"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		week := resolveWeek()
		text := strings.Join(args, " ")

		narrative := ledger.FocusNarrative(appLedger.ForWeek(week), text, 0)
		if narrative == "" {
			fmt.Println("No matching progress this week.")
			return nil
		}

		fmt.Println(narrative)
		return nil
	},
}

func resolveWeek() string {
	if weekOf != "" {
		return weekOf
	}
	return models.CurrentWeek()
}

func init() {
	weekCmd.PersistentFlags().StringVar(&weekOf, "week", "", "Monday week key (YYYY-MM-DD)")

	weekCmd.AddCommand(weekSummaryCmd)
	weekCmd.AddCommand(weekNarrativeCmd)
	weekCmd.AddCommand(weekStoryCmd)
	weekCmd.AddCommand(weekFocusCmd)
	rootCmd.AddCommand(weekCmd)
}
