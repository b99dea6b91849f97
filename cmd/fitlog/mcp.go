// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/philturner/fitlog/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your logs through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fitlog": {
        "command": "fitlog",
        "args": ["mcp"]
      }
    }
  }

  On macOS, the config is at:
    ~/Library/Application Support/Claude/claude_desktop_config.json

AVAILABLE TOOLS:

  log_workout         Log a workout (reports conflicts)
  overwrite_workout   Replace an entry's payload by id
  list_workouts       List workouts in a date range
  last_workout        Most recent entry for an exercise
  delete_workout      Delete a workout by id
  workout_stats       Streaks and totals
  log_meal            Log a meal from the plan
  list_meals          List meals in a date range
  delete_meal         Delete a meal by id
  daily_totals        Macro totals for a day vs goals
  nutrition_series    Per-date totals for a week or month

AVAILABLE RESOURCES:

  fitlog://schedule    Weekly workout schedules
  fitlog://meal-plan   Meal plans and nutrient goals
  fitlog://today       Today's plan, logs, and totals`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, catalog)
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
