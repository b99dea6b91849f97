// ABOUTME: MCP resource implementations for plans and daily status.
// ABOUTME: Provides fitlog://schedule, fitlog://meal-plan, and fitlog://today resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/philturner/fitlog/internal/models"
)

func (s *Server) registerResources() {
	// fitlog://schedule - Weekly workout schedule for every user
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://schedule",
		Name:        "Workout Schedules",
		Description: "Seven-day workout schedule for each user",
		MIMEType:    "application/json",
	}, s.handleScheduleResource)

	// fitlog://meal-plan - Meal plans and nutrient goals for every user
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://meal-plan",
		Name:        "Meal Plans",
		Description: "Meal plan per section plus daily nutrient goals for each user",
		MIMEType:    "application/json",
	}, s.handleMealPlanResource)

	// fitlog://today - Today's planned day plus what has been logged so far
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fitlog://today",
		Name:        "Today's Log",
		Description: "Planned workout day, logged workouts, and macro totals for today per user",
		MIMEType:    "application/json",
	}, s.handleTodayResource)
}

// Resource handlers

func (s *Server) handleScheduleResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	schedules := make(map[string]any)
	for _, user := range s.catalog.Users() {
		schedule, err := s.catalog.ScheduleFor(user)
		if err != nil {
			return nil, fmt.Errorf("failed to load schedule for %s: %w", user, err)
		}
		schedules[user] = schedule
	}
	return jsonResource("fitlog://schedule", schedules)
}

func (s *Server) handleMealPlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plans := make(map[string]any)
	for _, user := range s.catalog.Users() {
		sections := make(map[string]any)
		for _, section := range models.MealSections() {
			meals, err := s.catalog.MealsFor(user, section)
			if err != nil {
				return nil, fmt.Errorf("failed to load meals for %s: %w", user, err)
			}
			sections[string(section)] = meals
		}
		goals, err := s.catalog.GoalsFor(user)
		if err != nil {
			return nil, fmt.Errorf("failed to load goals for %s: %w", user, err)
		}
		plans[user] = map[string]any{
			"meals": sections,
			"goals": goals,
		}
	}
	return jsonResource("fitlog://meal-plan", plans)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := models.Midnight(time.Now())

	result := make(map[string]any)
	for _, user := range s.catalog.Users() {
		day, err := s.catalog.DayAt(user, int(today.Weekday()))
		if err != nil {
			return nil, fmt.Errorf("failed to load plan day for %s: %w", user, err)
		}

		workouts, err := s.repo.ListWorkouts(user, today, today)
		if err != nil {
			return nil, fmt.Errorf("failed to list workouts for %s: %w", user, err)
		}

		totals, err := s.repo.DailyTotals(user, today)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch daily totals for %s: %w", user, err)
		}

		result[user] = map[string]any{
			"planned":  day,
			"workouts": workouts,
			"totals":   totals,
		}
	}
	result["date"] = today.Format(time.DateOnly)

	return jsonResource("fitlog://today", result)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
