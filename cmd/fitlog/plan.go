// ABOUTME: CLI commands for viewing the built-in workout schedule.
// ABOUTME: Shows the full week or today's planned day for a user.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/philturner/fitlog/internal/plan"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the weekly workout schedule",
	Long: `Show the user's fixed 7-day workout split.

Without a subcommand the full week is printed; 'plan today' shows only
the current day's planned workout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		sched, err := catalog.ScheduleFor(user)
		if err != nil {
			return err
		}

		todayIdx := int(time.Now().Weekday())
		for i, day := range sched {
			label := fmt.Sprintf("%s  %s", padRight(day.Day, 10), day.Type)
			if i == todayIdx {
				fmt.Printf("%s\n", color.CyanString(label))
			} else {
				fmt.Printf("%s\n", label)
			}
			printPlanDay(day, "  ")
		}
		return nil
	},
}

var planTodayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's planned workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}

		day, err := catalog.DayAt(user, int(time.Now().Weekday()))
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", color.CyanString(day.Day), day.Type)
		printPlanDay(day, "  ")
		return nil
	},
}

// printPlanDay lists a day's exercises and cardio, or notes a rest day.
func printPlanDay(day plan.ScheduleDay, indent string) {
	if len(day.Exercises) == 0 && len(day.Cardio) == 0 {
		fmt.Printf("%sRest\n", indent)
		return
	}
	for _, e := range day.Exercises {
		fmt.Printf("%s%s\n", indent, e)
	}
	if len(day.Cardio) > 0 {
		faint := color.New(color.Faint)
		fmt.Printf("%s%s\n", indent, faint.Sprintf("Cardio: %s", strings.Join(day.Cardio, ", ")))
	}
}

func init() {
	planCmd.AddCommand(planTodayCmd)
	rootCmd.AddCommand(planCmd)
}
