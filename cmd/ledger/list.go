// ABOUTME: CLI commands for listing and searching activities.
// ABOUTME: Supports type, source, and date-range filters.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

var (
	listType   string
	listSource string
	listSince  string
	listUntil  string
	listLimit  int
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List activities",
	Long: `List recent activities, most recent first.

OUTPUT FORMAT:

  Each line shows: ID  DATE  TYPE  SUMMARY  (NOTES)

  The ID is an 8-character prefix you can use with update and delete.

FILTERING:

  --type     workout, nutrition, sleep, weight, hydration, general (or "all")
  --source   dashboard, playbook, chat, check-in (or "all")
  --since    inclusive start date (YYYY-MM-DD)
  --until    inclusive end date (YYYY-MM-DD)

EXAMPLES:

  ledger list                      # Show last 20 activities
  ledger list --type workout       # Show only workouts
  ledger list --since 2025-03-01   # Activities from March onward
  ledger list -t sleep -n 50       # Last 50 sleep entries`,
	RunE: func(cmd *cobra.Command, args []string) error {
		activities := appLedger.Filter(ledger.FilterOptions{
			Type:      listType,
			Source:    listSource,
			StartDate: listSince,
			EndDate:   listUntil,
		})
		if listLimit > 0 && len(activities) > listLimit {
			activities = activities[:listLimit]
		}

		printActivities(activities)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search activities",
	Long: `Search activities by free text.

The query matches case-insensitively against the raw text, summary, notes,
and exercise name of each activity. Filters combine with the query.

EXAMPLES:

  ledger search protein shake
  ledger search river --type workout
  ledger search "bench press" --since 2025-03-01`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		activities := appLedger.SearchAndFilter(query, ledger.FilterOptions{
			Type:      listType,
			Source:    listSource,
			StartDate: listSince,
			EndDate:   listUntil,
		})

		printActivities(activities)
		return nil
	},
}

func printActivities(activities []*models.Activity) {
	if len(activities) == 0 {
		fmt.Println("No activities found.")
		return
	}

	faint := color.New(color.Faint)
	for _, a := range activities {
		label := a.Summary
		if label == "" {
			label = a.RawText
		}
		notes := ""
		if a.Data.Notes != nil && *a.Data.Notes != "" {
			notes = faint.Sprintf(" (%s)", truncate(*a.Data.Notes, 30))
		}
		sub := ""
		if a.SubType != "" {
			sub = "/" + string(a.SubType)
		}
		fmt.Printf("%s %s %s %s%s\n",
			faint.Sprint(models.ShortID(a.ID)),
			faint.Sprint(a.Date),
			padRight(string(a.Type)+sub, 16),
			truncate(label, 50),
			notes)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	for _, cmd := range []*cobra.Command{listCmd, searchCmd} {
		cmd.Flags().StringVarP(&listType, "type", "t", "", "filter by activity type")
		cmd.Flags().StringVarP(&listSource, "source", "s", "", "filter by source")
		cmd.Flags().StringVar(&listSince, "since", "", "inclusive start date (YYYY-MM-DD)")
		cmd.Flags().StringVar(&listUntil, "until", "", "inclusive end date (YYYY-MM-DD)")
	}
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 20, "max number of results")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
}
