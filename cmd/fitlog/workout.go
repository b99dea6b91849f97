// ABOUTME: CLI commands for managing the workout log.
// ABOUTME: Supports log, last, list, progress, and delete subcommands.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/philturner/fitlog/internal/dateutil"
	"github.com/philturner/fitlog/internal/models"
	"github.com/philturner/fitlog/internal/report"
	"github.com/philturner/fitlog/internal/storage"
	"github.com/spf13/cobra"
)

var (
	workoutDate      string
	workoutSets      int
	workoutReps      string
	workoutWeight    float64
	workoutCardio    bool
	workoutTime      int
	workoutCalories  int
	workoutOverwrite bool
	workoutListDate  string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Manage the workout log",
	Long: `Log workouts against the weekly schedule.

One entry exists per user, date, and exercise. Logging the same exercise
twice on a day is a conflict; pass --overwrite to replace the earlier
entry in place.

STRENGTH VS CARDIO:

  Strength entries carry sets, reps, and weight. Cardio entries carry
  minutes and calories, and take the --cardio flag.

EXAMPLES:

  fitlog workout log "Bench Press" --sets 3 --reps 8-10 --weight 60
  fitlog workout log Treadmill --cardio --time 30 --calories 300
  fitlog workout log Deadlift --sets 3 --reps 5 --weight 100 --date 2026-08-25
  fitlog workout last "Bench Press"
  fitlog workout list
  fitlog workout progress "Bench Press"
  fitlog workout delete 42`,
}

var workoutLogCmd = &cobra.Command{
	Use:   "log <exercise>",
	Short: "Log a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(workoutDate)
		if err != nil {
			return err
		}

		var e *models.WorkoutEntry
		if workoutCardio {
			e = models.NewCardioEntry(user, date, args[0], workoutTime, workoutCalories)
		} else {
			e = models.NewStrengthEntry(user, date, args[0], workoutSets, workoutReps, workoutWeight)
		}

		id, err := repo.LogWorkout(e)
		if err != nil {
			ce, ok := storage.AsConflict(err)
			if !ok {
				return fmt.Errorf("failed to log workout: %w", err)
			}
			if !workoutOverwrite {
				color.Yellow("⚠ %s already logged for %s (%s)",
					ce.Existing.Exercise, date.Format(time.DateOnly), ce.Existing.Summary())
				fmt.Println("  Re-run with --overwrite to replace it.")
				return nil
			}
			if _, err := repo.OverwriteWorkout(ce.Existing.ID, e.Payload); err != nil {
				return fmt.Errorf("failed to overwrite workout: %w", err)
			}
			e.ID = ce.Existing.ID
			mirrorWorkout(e)
			color.Green("✓ Overwrote %s for %s", e.Exercise, date.Format(time.DateOnly))
			fmt.Printf("  %s\n", e.Summary())
			return nil
		}

		e.ID = id
		mirrorWorkout(e)
		color.Green("✓ Logged %s for %s", e.Exercise, date.Format(time.DateOnly))
		fmt.Printf("  %s\n", e.Summary())
		return nil
	},
}

var workoutLastCmd = &cobra.Command{
	Use:   "last <exercise>",
	Short: "Show the most recent entry for an exercise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		e, err := repo.LastWorkout(user, args[0])
		if err == storage.ErrNotFound {
			fmt.Println("No previous workout found for this exercise.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to fetch last workout: %w", err)
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s %s\n  %s\n",
			faint.Sprint(e.Date.Format(time.DateOnly)),
			e.Exercise,
			e.Summary())
		return nil
	},
}

var workoutListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show this week's workout calendar",
	Long: `Show the Sunday-to-Saturday week containing the given date
(default today) as a calendar, one line per day.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		ref, err := parseDateFlag(workoutListDate)
		if err != nil {
			return err
		}

		start, end := dateutil.WeekOf(ref)
		workouts, err := repo.ListWorkouts(user, start, end)
		if err != nil {
			return fmt.Errorf("failed to list workouts: %w", err)
		}

		byDay := make(map[time.Time][]*models.WorkoutEntry)
		for _, w := range workouts {
			byDay[w.Date] = append(byDay[w.Date], w)
		}

		faint := color.New(color.Faint)
		today := models.Midnight(time.Now())
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			label := fmt.Sprintf("%s %s", d.Format("Mon"), d.Format(time.DateOnly))
			if d.Equal(today) {
				label = color.CyanString(label)
			} else {
				label = faint.Sprint(label)
			}
			entries := byDay[d]
			if len(entries) == 0 {
				fmt.Printf("%s  -\n", label)
				continue
			}
			parts := make([]string, 0, len(entries))
			for _, e := range entries {
				parts = append(parts, fmt.Sprintf("%s (%s)", e.Exercise, e.Summary()))
			}
			fmt.Printf("%s  %s\n", label, strings.Join(parts, ", "))
		}
		return nil
	},
}

var workoutProgressCmd = &cobra.Command{
	Use:   "progress <exercise>",
	Short: "Chart an exercise over time",
	Long: `Chart the logged value of an exercise across its full history.
Strength entries chart weight; cardio entries chart minutes, falling
back to calories.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		history, err := repo.ExerciseHistory(user, args[0])
		if err != nil {
			return fmt.Errorf("failed to fetch exercise history: %w", err)
		}
		if len(history) == 0 {
			fmt.Println("No data available for this exercise.")
			return nil
		}

		points := report.ExerciseSeries(history)
		values := make([]float64, len(points))
		for i, p := range points {
			values[i] = p.Value
		}
		lo, hi := report.Domain(values)

		faint := color.New(color.Faint)
		for _, p := range points {
			fmt.Printf("%s %7.4g %s\n",
				faint.Sprint(p.Date.Format(time.DateOnly)),
				p.Value,
				bar(p.Value, lo, hi, 40))
		}
		return nil
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		// Fetch before deleting so the cloud mirror key can be derived.
		e, err := repo.GetWorkout(id)
		if err != nil && err != storage.ErrNotFound {
			return fmt.Errorf("failed to fetch workout: %w", err)
		}

		if err := repo.DeleteWorkout(id); err != nil {
			return fmt.Errorf("failed to delete workout: %w", err)
		}
		if e != nil {
			unmirrorWorkout(e)
		}

		color.Green("✓ Deleted workout %d", id)
		return nil
	},
}

func init() {
	workoutLogCmd.Flags().StringVarP(&workoutDate, "date", "d", "", "date to log for (YYYY-MM-DD, default today)")
	workoutLogCmd.Flags().IntVar(&workoutSets, "sets", 0, "set count (strength)")
	workoutLogCmd.Flags().StringVar(&workoutReps, "reps", "", "rep scheme, e.g. 8-10 (strength)")
	workoutLogCmd.Flags().Float64Var(&workoutWeight, "weight", 0, "weight in kg (strength)")
	workoutLogCmd.Flags().BoolVar(&workoutCardio, "cardio", false, "log a cardio entry")
	workoutLogCmd.Flags().IntVar(&workoutTime, "time", 0, "minutes (cardio)")
	workoutLogCmd.Flags().IntVar(&workoutCalories, "calories", 0, "calories burned (cardio)")
	workoutLogCmd.Flags().BoolVar(&workoutOverwrite, "overwrite", false, "replace an existing entry for the same day")

	workoutListCmd.Flags().StringVarP(&workoutListDate, "date", "d", "", "any date inside the week to show (default today)")

	workoutCmd.AddCommand(workoutLogCmd)
	workoutCmd.AddCommand(workoutLastCmd)
	workoutCmd.AddCommand(workoutListCmd)
	workoutCmd.AddCommand(workoutProgressCmd)
	workoutCmd.AddCommand(workoutDeleteCmd)
	rootCmd.AddCommand(workoutCmd)
}

// parseDateFlag parses a YYYY-MM-DD flag value, defaulting to today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return models.Midnight(time.Now()), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

// bar renders a value as a horizontal bar scaled into [lo, hi].
func bar(v, lo, hi float64, width int) string {
	if hi <= lo {
		return ""
	}
	n := int((v - lo) / (hi - lo) * float64(width))
	if n < 0 {
		n = 0
	}
	if n > width {
		n = width
	}
	return strings.Repeat("█", n)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
