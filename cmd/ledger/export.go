// ABOUTME: CLI commands for exporting and importing activity data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/models"
)

var (
	exportOutput string
	exportType   string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export activity data",
	Long: `Export activity data in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable, grouped by type)
  markdown   Markdown tables by week (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --type, -t     Filter by activity type (markdown only)
  --since        Only include data since this date (YYYY-MM-DD)

EXAMPLES:

  ledger export json                        # Export all data as JSON
  ledger export json -o backup.json         # Save to file
  ledger export yaml                        # Export as YAML
  ledger export markdown --type workout     # Export workouts as Markdown
  ledger export markdown --since 2025-01-01 # Export data from 2025 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = appLedger.ExportJSON()
		case "yaml":
			data, err = appLedger.ExportYAML()
		case "markdown":
			if exportType != "" && exportType != "all" && !models.IsValidActivityType(exportType) {
				return fmt.Errorf("unknown activity type: %s", exportType)
			}
			var since *time.Time
			if exportSince != "" {
				t, err := time.ParseInLocation(models.DateLayout, exportSince, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			var md string
			md, err = appLedger.ExportMarkdown(exportType, since)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import activity data from JSON",
	Long: `Import activity data from a JSON backup file.

Imported entries merge into the existing ledger, sorted most recent
first. Duplicate entries (same ID) cause an error.

EXAMPLES:

  ledger import backup.json               # Import from file`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := appLedger.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportType, "type", "t", "", "filter by activity type (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
