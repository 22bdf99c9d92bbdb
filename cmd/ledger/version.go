// ABOUTME: CLI command printing the ledger version.
// ABOUTME: Runs without opening the activity store.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ledger version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ledger version %s\n", appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
