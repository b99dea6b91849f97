// ABOUTME: Root Cobra command for fitlog CLI.
// ABOUTME: Handles config, storage, and plan catalog lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/philturner/fitlog/internal/config"
	"github.com/philturner/fitlog/internal/plan"
	"github.com/philturner/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	repo    storage.Repository
	catalog *plan.Catalog

	userFlag string
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Personal workout and nutrition log",
	Long: `Fitlog is a CLI tool for logging workouts and meals against fixed plans.

USERS:

  Plans are built in for a fixed set of users. Pick one with --user or
  set FITLOG_USER; the default is phil.

WORKOUTS:

  $ fitlog workout log "Bench Press" --sets 3 --reps 8-10 --weight 60
  $ fitlog workout log Treadmill --cardio --time 30 --calories 300
  $ fitlog workout last "Bench Press"     # What did I lift last time?
  $ fitlog workout list                   # This week's calendar
  $ fitlog workout progress "Bench Press" # Weight over time

MEALS:

  $ fitlog meal log Breakfast "Protein Oatmeal"
  $ fitlog meal log Snack "Protein Shake" --qty 2
  $ fitlog meal totals                    # Today vs goals
  $ fitlog meal chart --nutrient protein  # Daily protein this month

PLANS AND STATS:

  $ fitlog plan                 # Full weekly schedule
  $ fitlog plan today           # Today's planned workout
  $ fitlog stats                # Streaks and activity heatmap

SYNC:

  Mirror logs to Charm Cloud, E2E encrypted with your SSH key.

  $ fitlog sync push      # Push local logs to the cloud mirror
  $ fitlog sync status    # Check sync status

MCP INTEGRATION:

  Run 'fitlog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants. Add to your Claude
  config:

  {
    "mcpServers": {
      "fitlog": { "command": "fitlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Logs are stored in SQLite at ~/.local/share/fitlog/fitlog.db.
  Override the location with FITLOG_DATA_DIR or the config file.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip storage init for commands that don't need it
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		catalog, err = plan.Load()
		if err != nil {
			return fmt.Errorf("failed to load plan catalog: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// currentUser resolves the --user flag against the plan catalog, falling
// back to the configured default.
func currentUser() (string, error) {
	user := userFlag
	if user == "" {
		user = cfg.GetDefaultUser()
	}
	if !catalog.HasUser(user) {
		return "", fmt.Errorf("unknown user %q (known: %v)", user, catalog.Users())
	}
	return user, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "", "user to log as (default from config or phil)")
}
