// ABOUTME: Root Cobra command for ledger CLI.
// ABOUTME: Handles store and ledger lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/config"
	"github.com/mtendies/ledger/internal/ledger"
	"github.com/mtendies/ledger/internal/storage"
)

var (
	cfg       *config.Config
	docStore  storage.DocumentStore
	appLedger *ledger.Ledger
)

var rootCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Personal activity ledger and weekly narrative engine",
	Long: `Ledger is a CLI tool for tracking activities and narrating weekly progress.

WHAT IT TRACKS:

  Workouts    runs, strength sessions, cardio, yoga, walks
  Nutrition   meals, protein goals, calories
  Sleep       hours slept, sleep quality
  Weight      body weight over time
  Hydration   water intake

QUICK START:

  $ ledger log workout --sub run --distance 3 --pace 9:30   # Log a run
  $ ledger log weight --weight 175.5                        # Log your weight
  $ ledger log sleep --hours 7.5 --quality good             # Log sleep
  $ ledger list                                             # See recent activities
  $ ledger list --type workout                              # Filter by type

WEEKLY NARRATIVES:

  $ ledger week summary                  # Counts, mileage, latest weight
  $ ledger week narrative                # Per-category progress passages
  $ ledger week story                    # One flowing weekly story
  $ ledger week focus "run 3x this week" # Progress toward a focus goal

CHECK-INS:

  $ ledger checkin draft       # Prefilled check-in from the week's entries
  $ ledger checkin questions   # Follow-up questions for unrated workouts

STORAGE BACKENDS:

  Activities live in a single JSON document. Choose a backend with
  LEDGER_BACKEND or the config file (~/.config/ledger/config.json):

    file     Plain JSON file (default)
    sqlite   SQLite database
    charm    Charm KV with E2E-encrypted cloud sync

MCP INTEGRATION:

  Run 'ledger mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "ledger": { "command": "ledger", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		docStore, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}

		appLedger = ledger.New(docStore)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if appLedger != nil {
			return appLedger.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
