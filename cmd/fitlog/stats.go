// ABOUTME: CLI command for streaks, totals, and the activity heatmap.
// ABOUTME: Renders a 52-week grid, one column per week, Sunday at the top.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/philturner/fitlog/internal/dateutil"
	"github.com/philturner/fitlog/internal/models"
	"github.com/philturner/fitlog/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show workout streaks and the activity heatmap",
	Long: `Show summary statistics over the full workout history: totals,
daily and weekly streaks, and a rolling 52-week activity heatmap.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		stamps, err := repo.AllWorkouts(user)
		if err != nil {
			return fmt.Errorf("failed to fetch workouts: %w", err)
		}
		if len(stamps) == 0 {
			fmt.Println("No workouts logged yet.")
			return nil
		}

		stats := report.Summarize(stamps)
		fmt.Printf("%s\n", color.CyanString(user))
		fmt.Printf("  Workouts:       %d over %d days\n", stats.TotalWorkouts, stats.TotalDays)
		fmt.Printf("  Avg days/week:  %.1f\n", stats.AvgDaysPerWeek)
		fmt.Printf("  Daily streak:   %d (best %d)\n", stats.CurrentStreak, stats.BestStreak)
		fmt.Printf("  Weekly streak:  %d (best %d)\n", stats.WeeklyStreak, stats.BestWeeklyStreak)
		fmt.Println()

		renderHeatmap(stamps)
		return nil
	},
}

// renderHeatmap prints the rolling 52-week grid ending in the current
// week. Rows are weekdays Sunday first; columns advance a week at a time.
func renderHeatmap(stamps []models.WorkoutStamp) {
	counts := report.HeatmapCounts(stamps)

	// Anchor so the last column is the week containing today.
	weekStart, _ := dateutil.WeekOf(time.Now())
	anchor := weekStart.AddDate(0, 0, -7*(report.WeeksToShow-1))
	window := report.HeatmapWindow(anchor)

	shades := []func(format string, a ...interface{}) string{
		color.New(color.Faint).Sprintf,
		color.GreenString,
		color.HiGreenString,
		color.YellowString,
		color.HiYellowString,
	}

	today := models.Midnight(time.Now())
	for row := 0; row < report.DaysInWeek; row++ {
		for col := 0; col < report.WeeksToShow; col++ {
			day := window[col*report.DaysInWeek+row]
			if day.After(today) {
				fmt.Print(" ")
				continue
			}
			level := report.HeatLevel(counts[day])
			if level == 0 {
				fmt.Print(shades[0]("·"))
			} else {
				fmt.Print(shades[level]("■"))
			}
		}
		fmt.Println()
	}
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
