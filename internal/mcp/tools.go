// ABOUTME: MCP tool implementations for workout and nutrition logging.
// ABOUTME: Tools mirror the store operations, including the explicit conflict flow.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/philturner/fitlog/internal/dateutil"
	"github.com/philturner/fitlog/internal/models"
	"github.com/philturner/fitlog/internal/report"
	"github.com/philturner/fitlog/internal/storage"
)

func (s *Server) registerTools() {
	// log_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_workout",
		Description: "Log a workout for a user on a date; reports a conflict when one is already logged",
	}, s.handleLogWorkout)

	// overwrite_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "overwrite_workout",
		Description: "Replace the payload of an existing workout entry by id",
	}, s.handleOverwriteWorkout)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List workouts for a user in a date range",
	}, s.handleListWorkouts)

	// last_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "last_workout",
		Description: "Get the most recent entry for a user and exercise",
	}, s.handleLastWorkout)

	// delete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_workout",
		Description: "Delete a workout entry by id",
	}, s.handleDeleteWorkout)

	// workout_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_stats",
		Description: "Streaks, totals, and average days per week for a user",
	}, s.handleWorkoutStats)

	// log_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_meal",
		Description: "Log a meal from the user's plan with a quantity multiplier",
	}, s.handleLogMeal)

	// list_meals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_meals",
		Description: "List nutrition logs for a user in a date range",
	}, s.handleListMeals)

	// delete_meal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_meal",
		Description: "Delete a nutrition log by id (scoped to the user)",
	}, s.handleDeleteMeal)

	// daily_totals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "daily_totals",
		Description: "Macro totals for a user on a single date, compared against goals",
	}, s.handleDailyTotals)

	// nutrition_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "nutrition_series",
		Description: "Per-date macro totals for the week or month containing a reference date",
	}, s.handleNutritionSeries)
}

// Tool input/output types

type logWorkoutInput struct {
	User      string  `json:"user" jsonschema:"User identifier (phil or eliza)"`
	Date      string  `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
	Exercise  string  `json:"exercise" jsonschema:"Exercise name from the user's schedule"`
	IsCardio  bool    `json:"is_cardio,omitempty" jsonschema:"True for a cardio entry"`
	Sets      int     `json:"sets,omitempty" jsonschema:"Set count (strength)"`
	Reps      string  `json:"reps,omitempty" jsonschema:"Rep scheme label (strength)"`
	Weight    float64 `json:"weight,omitempty" jsonschema:"Weight in kg (strength)"`
	Time      int     `json:"time,omitempty" jsonschema:"Minutes (cardio)"`
	Calories  int     `json:"calories,omitempty" jsonschema:"Calories burned (cardio)"`
	Overwrite bool    `json:"overwrite,omitempty" jsonschema:"Replace the existing entry on conflict"`
}

type logWorkoutOutput struct {
	ID       int64                `json:"id,omitempty"`
	Conflict bool                 `json:"conflict,omitempty"`
	Existing *models.WorkoutEntry `json:"existing_workout,omitempty"`
	Message  string               `json:"message"`
}

type overwriteWorkoutInput struct {
	ID       int64   `json:"id" jsonschema:"Workout entry id"`
	Sets     int     `json:"sets,omitempty" jsonschema:"Set count (strength)"`
	Reps     string  `json:"reps,omitempty" jsonschema:"Rep scheme label (strength)"`
	Weight   float64 `json:"weight,omitempty" jsonschema:"Weight in kg (strength)"`
	Time     int     `json:"time,omitempty" jsonschema:"Minutes (cardio)"`
	Calories int     `json:"calories,omitempty" jsonschema:"Calories burned (cardio)"`
	IsCardio bool    `json:"is_cardio,omitempty" jsonschema:"True when the replacement payload is cardio"`
}

type rangeInput struct {
	User string `json:"user" jsonschema:"User identifier"`
	From string `json:"from" jsonschema:"Range start (YYYY-MM-DD) inclusive"`
	To   string `json:"to" jsonschema:"Range end (YYYY-MM-DD) inclusive"`
}

type lastWorkoutInput struct {
	User     string `json:"user" jsonschema:"User identifier"`
	Exercise string `json:"exercise" jsonschema:"Exercise name"`
}

type idInput struct {
	ID int64 `json:"id" jsonschema:"Entry id"`
}

type userInput struct {
	User string `json:"user" jsonschema:"User identifier"`
}

type logMealInput struct {
	User     string `json:"user" jsonschema:"User identifier"`
	Date     string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
	Section  string `json:"section" jsonschema:"Meal section (Breakfast, Snack, Lunch, Dinner, Treat)"`
	Meal     string `json:"meal" jsonschema:"Meal name from the user's plan"`
	Quantity int    `json:"quantity,omitempty" jsonschema:"Quantity multiplier (default 1)"`
}

type deleteMealInput struct {
	User string `json:"user" jsonschema:"User identifier"`
	ID   int64  `json:"id" jsonschema:"Nutrition log id"`
}

type dailyTotalsInput struct {
	User string `json:"user" jsonschema:"User identifier"`
	Date string `json:"date,omitempty" jsonschema:"Calendar date (YYYY-MM-DD), defaults to today"`
}

type nutritionSeriesInput struct {
	User string `json:"user" jsonschema:"User identifier"`
	Date string `json:"date,omitempty" jsonschema:"Reference date (YYYY-MM-DD), defaults to today"`
	Mode string `json:"mode,omitempty" jsonschema:"View mode: week or month (default month)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogWorkout(ctx context.Context, req *mcp.CallToolRequest, input logWorkoutInput) (*mcp.CallToolResult, logWorkoutOutput, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, logWorkoutOutput{}, err
	}

	var e *models.WorkoutEntry
	if input.IsCardio {
		e = models.NewCardioEntry(input.User, date, input.Exercise, input.Time, input.Calories)
	} else {
		e = models.NewStrengthEntry(input.User, date, input.Exercise, input.Sets, input.Reps, input.Weight)
	}

	id, err := s.repo.LogWorkout(e)
	if err != nil {
		if ce, ok := storage.AsConflict(err); ok {
			if !input.Overwrite {
				return nil, logWorkoutOutput{
					Conflict: true,
					Existing: ce.Existing,
					Message:  "Workout already logged for this day; pass overwrite=true to replace it",
				}, nil
			}
			if _, err := s.repo.OverwriteWorkout(ce.Existing.ID, e.Payload); err != nil {
				return nil, logWorkoutOutput{}, fmt.Errorf("failed to overwrite workout: %w", err)
			}
			return nil, logWorkoutOutput{
				ID:      ce.Existing.ID,
				Message: fmt.Sprintf("Overwrote %s for %s", input.Exercise, date.Format(time.DateOnly)),
			}, nil
		}
		return nil, logWorkoutOutput{}, fmt.Errorf("failed to log workout: %w", err)
	}

	return nil, logWorkoutOutput{
		ID:      id,
		Message: fmt.Sprintf("Logged %s for %s (id %d)", input.Exercise, date.Format(time.DateOnly), id),
	}, nil
}

func (s *Server) handleOverwriteWorkout(ctx context.Context, req *mcp.CallToolRequest, input overwriteWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	p := models.Payload{}
	if input.IsCardio {
		p.Time = &input.Time
		p.Calories = &input.Calories
	} else {
		p.Sets = &input.Sets
		p.Reps = &input.Reps
		p.Weight = &input.Weight
	}

	affected, err := s.repo.OverwriteWorkout(input.ID, p)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to overwrite workout: %w", err)
	}
	if affected == 0 {
		return nil, simpleOutput{Message: fmt.Sprintf("No workout with id %d", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Updated workout %d", input.ID)}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseRange(input.From, input.To)
	if err != nil {
		return nil, nil, err
	}

	workouts, err := s.repo.ListWorkouts(input.User, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		return nil, map[string]any{"message": "No workouts found."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleLastWorkout(ctx context.Context, req *mcp.CallToolRequest, input lastWorkoutInput) (*mcp.CallToolResult, any, error) {
	e, err := s.repo.LastWorkout(input.User, input.Exercise)
	if err == storage.ErrNotFound {
		return nil, map[string]any{"message": "No previous workout found for this exercise"}, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch last workout: %w", err)
	}
	return nil, e, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted workout %d", input.ID)}, nil
}

func (s *Server) handleWorkoutStats(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, report.Stats, error) {
	stamps, err := s.repo.AllWorkouts(input.User)
	if err != nil {
		return nil, report.Stats{}, fmt.Errorf("failed to fetch workouts: %w", err)
	}
	return nil, report.Summarize(stamps), nil
}

func (s *Server) handleLogMeal(ctx context.Context, req *mcp.CallToolRequest, input logMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if !models.IsValidMealSection(input.Section) {
		return nil, simpleOutput{}, fmt.Errorf("unknown meal section: %s", input.Section)
	}
	section := models.MealSection(input.Section)

	meal, err := s.catalog.FindMeal(input.User, section, input.Meal)
	if err != nil {
		return nil, simpleOutput{}, err
	}

	quantity := input.Quantity
	if quantity == 0 {
		quantity = 1
	}

	e := models.NewNutritionEntry(input.User, date, section, meal.Name,
		meal.Calories, meal.Protein, meal.Carbs, meal.Fat, quantity)
	id, err := s.repo.LogNutrition(e)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log meal: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged %s x%d under %s (id %d)", meal.Name, quantity, section, id),
	}, nil
}

func (s *Server) handleListMeals(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, any, error) {
	start, end, err := parseRange(input.From, input.To)
	if err != nil {
		return nil, nil, err
	}

	logs, err := s.repo.ListNutrition(input.User, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list nutrition logs: %w", err)
	}

	if len(logs) == 0 {
		return nil, map[string]any{"message": "No meals logged."}, nil
	}
	return nil, logs, nil
}

func (s *Server) handleDeleteMeal(ctx context.Context, req *mcp.CallToolRequest, input deleteMealInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteNutrition(input.User, input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete nutrition log: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted nutrition log %d", input.ID)}, nil
}

func (s *Server) handleDailyTotals(ctx context.Context, req *mcp.CallToolRequest, input dailyTotalsInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}

	totals, err := s.repo.DailyTotals(input.User, date)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch daily totals: %w", err)
	}

	result := map[string]any{
		"date":   date.Format(time.DateOnly),
		"totals": totals,
	}
	if goals, err := s.catalog.GoalsFor(input.User); err == nil {
		result["goals"] = goals
	}
	return nil, result, nil
}

func (s *Server) handleNutritionSeries(ctx context.Context, req *mcp.CallToolRequest, input nutritionSeriesInput) (*mcp.CallToolResult, any, error) {
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, nil, err
	}
	mode := dateutil.ViewMonth
	if input.Mode != "" {
		mode, err = dateutil.ParseViewMode(input.Mode)
		if err != nil {
			return nil, nil, err
		}
	}

	series, err := s.repo.NutritionSeries(input.User, date, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch nutrition series: %w", err)
	}

	if len(series) == 0 {
		return nil, map[string]any{"message": "No data available for this period."}, nil
	}
	return nil, series, nil
}

// parseDate parses a YYYY-MM-DD date, defaulting to today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return models.Midnight(time.Now()), nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func parseRange(from, to string) (time.Time, time.Time, error) {
	start, err := parseDate(from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %s precedes start %s", to, from)
	}
	return start, end, nil
}
