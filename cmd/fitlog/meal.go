// ABOUTME: CLI commands for managing the nutrition log.
// ABOUTME: Supports log, list, delete, totals, and chart subcommands.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/philturner/fitlog/internal/dateutil"
	"github.com/philturner/fitlog/internal/models"
	"github.com/philturner/fitlog/internal/report"
	"github.com/spf13/cobra"
)

var (
	mealDate      string
	mealQty       int
	mealListDate  string
	totalsDate    string
	chartDate     string
	chartMode     string
	chartNutrient string
)

var mealCmd = &cobra.Command{
	Use:     "meal",
	Aliases: []string{"m"},
	Short:   "Manage the nutrition log",
	Long: `Log meals from your plan and track macros against daily goals.

Meals come from the built-in plan: pick a section and a meal name, and
the plan's per-unit macros are recorded with your quantity. The same
meal can be logged any number of times in a day.

SECTIONS:

  Breakfast, Snack, Lunch, Dinner, Treat

EXAMPLES:

  fitlog meal log Breakfast "Protein Oatmeal"
  fitlog meal log Snack "Protein Shake" --qty 2
  fitlog meal list
  fitlog meal totals
  fitlog meal chart --nutrient protein --mode week
  fitlog meal delete 17`,
}

var mealLogCmd = &cobra.Command{
	Use:   "log <section> <meal>",
	Short: "Log a meal from the plan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(mealDate)
		if err != nil {
			return err
		}
		if !models.IsValidMealSection(args[0]) {
			return fmt.Errorf("unknown meal section %q (want one of %v)", args[0], models.MealSections())
		}
		section := models.MealSection(args[0])

		meal, err := catalog.FindMeal(user, section, args[1])
		if err != nil {
			return err
		}

		e := models.NewNutritionEntry(user, date, section, meal.Name,
			meal.Calories, meal.Protein, meal.Carbs, meal.Fat, mealQty)
		id, err := repo.LogNutrition(e)
		if err != nil {
			return fmt.Errorf("failed to log meal: %w", err)
		}
		e.ID = id
		mirrorNutrition(e)

		t := e.Totals()
		color.Green("✓ Logged %s x%d under %s", meal.Name, mealQty, section)
		fmt.Printf("  %.0f cal, %.1fg protein, %.1fg carbs, %.1fg fat\n",
			t.Calories, t.Protein, t.Carbs, t.Fat)
		return nil
	},
}

var mealListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List meals logged on a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(mealListDate)
		if err != nil {
			return err
		}

		logs, err := repo.ListNutrition(user, date, date)
		if err != nil {
			return fmt.Errorf("failed to list meals: %w", err)
		}
		if len(logs) == 0 {
			fmt.Println("No meals logged.")
			return nil
		}

		bySection := make(map[models.MealSection][]*models.NutritionEntry)
		for _, e := range logs {
			bySection[e.Section] = append(bySection[e.Section], e)
		}

		faint := color.New(color.Faint)
		for _, section := range models.MealSections() {
			entries := bySection[section]
			if len(entries) == 0 {
				continue
			}
			fmt.Printf("%s\n", color.CyanString(string(section)))
			for _, e := range entries {
				t := e.Totals()
				qty := ""
				if e.Quantity > 1 {
					qty = fmt.Sprintf(" x%d", e.Quantity)
				}
				fmt.Printf("  %s %s%s  %.0f cal, %.1fp/%.1fc/%.1ff\n",
					faint.Sprintf("%d", e.ID),
					padRight(truncate(e.MealName, 30), 30), qty,
					t.Calories, t.Protein, t.Carbs, t.Fat)
			}
		}
		return nil
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a nutrition log entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		if err := repo.DeleteNutrition(user, id); err != nil {
			return fmt.Errorf("failed to delete meal: %w", err)
		}
		color.Green("✓ Deleted meal %d", id)
		return nil
	},
}

var mealTotalsCmd = &cobra.Command{
	Use:   "totals",
	Short: "Show daily macro totals against goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(totalsDate)
		if err != nil {
			return err
		}

		totals, err := repo.DailyTotals(user, date)
		if err != nil {
			return fmt.Errorf("failed to fetch daily totals: %w", err)
		}
		goals, err := catalog.GoalsFor(user)
		if err != nil {
			return err
		}

		fmt.Printf("%s %s\n", color.CyanString(user), date.Format(time.DateOnly))
		printGoalLine("calories", totals.Calories, goals.Calories, "")
		printGoalLine("protein", totals.Protein, goals.Protein, "g")
		printGoalLine("carbs", totals.Carbs, goals.Carbs, "g")
		printGoalLine("fat", totals.Fat, goals.Fat, "g")
		return nil
	},
}

var mealChartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart a nutrient across a week or month",
	Long: `Chart daily totals of one nutrient against its goal across the
week or month containing the given date. Days with no logs are omitted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := currentUser()
		if err != nil {
			return err
		}
		date, err := parseDateFlag(chartDate)
		if err != nil {
			return err
		}
		mode, err := dateutil.ParseViewMode(chartMode)
		if err != nil {
			return err
		}

		goals, err := catalog.GoalsFor(user)
		if err != nil {
			return err
		}
		goal, err := goals.For(chartNutrient)
		if err != nil {
			return err
		}

		series, err := repo.NutritionSeries(user, date, mode)
		if err != nil {
			return fmt.Errorf("failed to fetch nutrition series: %w", err)
		}
		if len(series) == 0 {
			fmt.Println("No data available for this period.")
			return nil
		}

		values := make([]float64, len(series))
		for i, d := range series {
			values[i] = nutrientValue(d.MacroTotals, chartNutrient)
		}
		lo, hi := report.DomainWithGoal(values, goal)

		faint := color.New(color.Faint)
		for i, d := range series {
			mark := " "
			if values[i] >= goal {
				mark = color.GreenString("✓")
			}
			fmt.Printf("%s %7.4g %s %s\n",
				faint.Sprint(d.Date.Format(time.DateOnly)),
				values[i],
				bar(values[i], lo, hi, 40),
				mark)
		}
		fmt.Printf("goal: %.4g %s\n", goal, chartNutrient)
		return nil
	},
}

// printGoalLine renders one macro against its goal with a check when met.
func printGoalLine(name string, value, goal float64, unit string) {
	mark := " "
	if value >= goal {
		mark = color.GreenString("✓")
	}
	fmt.Printf("  %s %7.1f%s / %.0f%s %s\n", padRight(name, 9), value, unit, goal, unit, mark)
}

// nutrientValue selects one macro from a totals row.
func nutrientValue(t models.MacroTotals, nutrient string) float64 {
	switch nutrient {
	case "protein":
		return t.Protein
	case "carbs":
		return t.Carbs
	case "fat":
		return t.Fat
	}
	return t.Calories
}

func init() {
	mealLogCmd.Flags().StringVarP(&mealDate, "date", "d", "", "date to log for (YYYY-MM-DD, default today)")
	mealLogCmd.Flags().IntVarP(&mealQty, "qty", "q", 1, "quantity multiplier")

	mealListCmd.Flags().StringVarP(&mealListDate, "date", "d", "", "date to list (YYYY-MM-DD, default today)")

	mealTotalsCmd.Flags().StringVarP(&totalsDate, "date", "d", "", "date to total (YYYY-MM-DD, default today)")

	mealChartCmd.Flags().StringVarP(&chartDate, "date", "d", "", "any date inside the period (default today)")
	mealChartCmd.Flags().StringVarP(&chartMode, "mode", "m", "month", "period: week or month")
	mealChartCmd.Flags().StringVarP(&chartNutrient, "nutrient", "n", "calories", "nutrient: calories, protein, carbs, or fat")

	mealCmd.AddCommand(mealLogCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)
	mealCmd.AddCommand(mealTotalsCmd)
	mealCmd.AddCommand(mealChartCmd)
	rootCmd.AddCommand(mealCmd)
}
