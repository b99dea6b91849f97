// ABOUTME: CLI commands for mirroring logs to Charm Cloud.
// ABOUTME: Supports push and status subcommands plus write-through mirroring.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/philturner/fitlog/internal/charm"
	"github.com/philturner/fitlog/internal/models"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Mirror logs to Charm Cloud",
	Long: `Mirror workout and nutrition logs to Charm Cloud.

Data is E2E encrypted with your SSH key via Charm KV. With
sync_on_write enabled in the config (or FITLOG_SYNC_ON_WRITE=true),
every successful log is mirrored as it happens; 'sync push' mirrors
the full local database in one pass.

COMMANDS:

  push     Mirror every local log to the cloud
  status   Show the linked account and mirror counts`,
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Mirror all local logs to the cloud",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer func() { _ = client.Close() }()

		if client.IsReadOnly() {
			return fmt.Errorf("cannot push: database is locked by another process")
		}

		data, err := repo.GetAllData()
		if err != nil {
			return fmt.Errorf("failed to read local data: %w", err)
		}

		// Batch the push; one sync at the end.
		client.SetAutoSync(false)
		for _, w := range data.Workouts {
			if err := client.MirrorWorkout(w); err != nil {
				return fmt.Errorf("failed to mirror workout: %w", err)
			}
		}
		for _, n := range data.Nutrition {
			if err := client.MirrorNutrition(n); err != nil {
				return fmt.Errorf("failed to mirror nutrition log: %w", err)
			}
		}
		if err := client.Sync(); err != nil {
			return fmt.Errorf("failed to sync: %w", err)
		}

		color.Green("✓ Pushed %d workouts and %d meals", len(data.Workouts), len(data.Nutrition))
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := charm.InitClient()
		if err != nil {
			return fmt.Errorf("failed to initialize charm client: %w", err)
		}
		defer func() { _ = client.Close() }()

		id, err := client.ID()
		if err != nil {
			return fmt.Errorf("failed to get charm ID: %w", err)
		}
		fmt.Printf("Account: %s\n", id)
		if client.IsReadOnly() {
			color.Yellow("⚠ Read-only: database is locked by another process")
		}

		workouts, err := client.ListWorkouts()
		if err != nil {
			return fmt.Errorf("failed to list mirrored workouts: %w", err)
		}
		meals, err := client.ListNutrition()
		if err != nil {
			return fmt.Errorf("failed to list mirrored meals: %w", err)
		}
		fmt.Printf("Mirrored: %d workouts, %d meals\n", len(workouts), len(meals))
		return nil
	},
}

// mirrorWorkout mirrors a logged workout to the cloud if sync_on_write
// is enabled. Mirror failures warn but never fail the local write.
func mirrorWorkout(e *models.WorkoutEntry) {
	if !cfg.SyncOnWrite {
		return
	}
	client, err := charm.InitClient()
	if err != nil {
		color.Yellow("⚠ Sync skipped: %v", err)
		return
	}
	if err := client.MirrorWorkout(e); err != nil {
		color.Yellow("⚠ Sync failed: %v", err)
	}
}

// unmirrorWorkout removes a deleted workout from the cloud mirror.
func unmirrorWorkout(e *models.WorkoutEntry) {
	if !cfg.SyncOnWrite {
		return
	}
	client, err := charm.InitClient()
	if err != nil {
		color.Yellow("⚠ Sync skipped: %v", err)
		return
	}
	if err := client.RemoveWorkout(e); err != nil {
		color.Yellow("⚠ Sync failed: %v", err)
	}
}

// mirrorNutrition mirrors a logged meal to the cloud if sync_on_write
// is enabled.
func mirrorNutrition(e *models.NutritionEntry) {
	if !cfg.SyncOnWrite {
		return
	}
	client, err := charm.InitClient()
	if err != nil {
		color.Yellow("⚠ Sync skipped: %v", err)
		return
	}
	if err := client.MirrorNutrition(e); err != nil {
		color.Yellow("⚠ Sync failed: %v", err)
	}
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
}
