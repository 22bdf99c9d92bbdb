// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mtendies/ledger/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your activity ledger
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "ledger": {
        "command": "ledger",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_activity        Log an activity
  list_activities     List recent activities with filters
  search_activities   Free-text search with filters
  update_activity     Update an activity by ID
  delete_activity     Delete an activity by ID
  weekly_summary      Counts, mileage, latest weight for a week
  weekly_narrative    Per-category progress passages
  focus_progress      Progress toward a free-text focus goal
  checkin_draft       Prefilled check-in buckets
  clarify_questions   Follow-up questions for unrated workouts

AVAILABLE RESOURCES:

  ledger://recent     Last 10 activities
  ledger://today      Today's activities
  ledger://week       Current week with stats and narrative`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(appLedger)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
