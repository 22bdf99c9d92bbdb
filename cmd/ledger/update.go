// ABOUTME: CLI command for updating activities.
// ABOUTME: Top-level fields are replaced; data fields are merged key-wise.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/models"
)

var (
	updateSummary string
	updateSub     string
	updateFeeling string
	updateQuality string
	updateNotes   string
	updateWeight  float64
	updateHours   float64
)

var updateCmd = &cobra.Command{
	Use:     "update <id>",
	Aliases: []string{"edit"},
	Short:   "Update an activity",
	Long: `Update an activity by its ID or ID prefix.

Top-level fields like the summary are replaced. Data fields merge into the
existing data, so setting --feeling keeps a previously logged distance.
The original raw text and timestamp never change.

EXAMPLES:

  ledger update abc12345 --feeling "strong"
  ledger update abc1 --summary "tempo run" --notes "negative splits"
  ledger update abc1 --weight 174.5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := appLedger.Resolve(args[0])
		if err != nil {
			return err
		}

		patch := ledger.Patch{}
		if cmd.Flags().Changed("summary") {
			patch.Summary = &updateSummary
		}
		if cmd.Flags().Changed("sub") {
			if updateSub != "" && !models.IsValidSubType(updateSub) {
				return fmt.Errorf("unknown sub-type: %s", updateSub)
			}
			sub := models.SubType(updateSub)
			patch.SubType = &sub
		}

		data := models.ActivityData{}
		if updateFeeling != "" {
			data.Feeling = &updateFeeling
		}
		if updateQuality != "" {
			data.Quality = &updateQuality
		}
		if updateNotes != "" {
			data.Notes = &updateNotes
		}
		if cmd.Flags().Changed("weight") {
			data.Weight = &updateWeight
		}
		if cmd.Flags().Changed("hours") {
			data.Hours = &updateHours
		}
		if !data.IsEmpty() {
			patch.Data = &data
		}

		updated, err := appLedger.Update(id, patch)
		if err != nil {
			return fmt.Errorf("failed to update activity: %w", err)
		}
		if updated == nil {
			return fmt.Errorf("not found: %s", args[0])
		}

		color.Green("✓ Updated %s", updated.Type)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(models.ShortID(updated.ID)),
			updated.Summary)

		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateSummary, "summary", "", "replace the summary")
	updateCmd.Flags().StringVar(&updateSub, "sub", "", "replace the workout sub-type")
	updateCmd.Flags().StringVar(&updateFeeling, "feeling", "", "how it felt")
	updateCmd.Flags().StringVar(&updateQuality, "quality", "", "sleep quality")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
	updateCmd.Flags().Float64Var(&updateWeight, "weight", 0, "body weight in lbs")
	updateCmd.Flags().Float64Var(&updateHours, "hours", 0, "sleep hours")
	rootCmd.AddCommand(updateCmd)
}
