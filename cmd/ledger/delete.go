// ABOUTME: CLI commands for deleting activities.
// ABOUTME: Supports deletion by ID prefix and wiping the whole ledger.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/models"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an activity",
	Long: `Delete an activity by its ID or ID prefix.

You can use either the full UUID or just the first few characters (prefix).
The ID prefix is shown in the first column of 'ledger list' output.

EXAMPLES:

  ledger delete abc12345                    # Delete by 8-char prefix
  ledger delete abc12345-1234-1234-...      # Delete by full UUID
  ledger rm abc1                            # Short prefix (if unique)

CAUTION:

  This permanently deletes the activity. There is no undo.
  If the prefix matches multiple activities, an error is returned.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := appLedger.Resolve(args[0])
		if err != nil {
			return err
		}

		remaining, err := appLedger.Delete(id)
		if err != nil {
			return fmt.Errorf("failed to delete activity: %w", err)
		}

		color.Yellow("✗ Deleted %s", color.New(color.Faint).Sprint(models.ShortID(id)))
		fmt.Printf("  %d activities remain\n", len(remaining))

		return nil
	},
}

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all activities",
	Long: `Delete every activity in the ledger.

This is a DESTRUCTIVE operation. The entire activity history is
permanently deleted. You will be asked to confirm.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("This will PERMANENTLY DELETE your entire activity history.")
		fmt.Print("Type 'wipe' to confirm: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "wipe" {
			fmt.Println("Canceled.")
			return nil
		}

		if err := appLedger.Wipe(); err != nil {
			return fmt.Errorf("wipe failed: %w", err)
		}

		color.Green("✓ Ledger wiped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(wipeCmd)
}
