// ABOUTME: Static per-user workout schedules, meal plans, and nutrient goals.
// ABOUTME: Loaded once from an embedded declarative dataset; read-only lookups.
package plan

import (
	"encoding/json"
	"fmt"
	"sort"

	_ "embed"

	"github.com/philturner/fitlog/internal/models"
)

//go:embed plans.json
var plansJSON []byte

// ScheduleDay is one entry in a user's 7-day split, indexed Sunday=0.
type ScheduleDay struct {
	Day       string   `json:"day"`
	Type      string   `json:"type"`
	Exercises []string `json:"exercises"`
	Cardio    []string `json:"cardio"`
}

// Meal is a per-unit meal option from a user's plan.
type Meal struct {
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// NutrientGoals holds a user's daily macro targets.
type NutrientGoals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// For selects the goal for a nutrient name (calories, protein, carbs, fat).
func (g NutrientGoals) For(nutrient string) (float64, error) {
	switch nutrient {
	case "calories":
		return g.Calories, nil
	case "protein":
		return g.Protein, nil
	case "carbs":
		return g.Carbs, nil
	case "fat":
		return g.Fat, nil
	}
	return 0, fmt.Errorf("unknown nutrient: %q", nutrient)
}

type userPlan struct {
	Goals    NutrientGoals     `json:"goals"`
	Schedule []ScheduleDay     `json:"schedule"`
	Meals    map[string][]Meal `json:"meals"`
}

type dataset struct {
	Users map[string]userPlan `json:"users"`
}

// Catalog provides read-only access to the fixed per-user plans. The
// catalog is immutable after Load.
type Catalog struct {
	users map[string]userPlan
}

// Load parses the embedded dataset. Called once at startup.
func Load() (*Catalog, error) {
	var ds dataset
	if err := json.Unmarshal(plansJSON, &ds); err != nil {
		return nil, fmt.Errorf("parse plans dataset: %w", err)
	}
	for user, p := range ds.Users {
		if len(p.Schedule) != 7 {
			return nil, fmt.Errorf("schedule for %s has %d days, want 7", user, len(p.Schedule))
		}
		for section := range p.Meals {
			if !models.IsValidMealSection(section) {
				return nil, fmt.Errorf("meal plan for %s has unknown section %q", user, section)
			}
		}
	}
	return &Catalog{users: ds.Users}, nil
}

// MustLoad is Load for program initialization paths where the embedded
// dataset is known good.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Users lists the known user identifiers, sorted.
func (c *Catalog) Users() []string {
	names := make([]string, 0, len(c.users))
	for u := range c.users {
		names = append(names, u)
	}
	sort.Strings(names)
	return names
}

// HasUser reports whether the catalog carries plans for the user.
func (c *Catalog) HasUser(user string) bool {
	_, ok := c.users[user]
	return ok
}

// ScheduleFor returns the user's ordered 7-day schedule.
func (c *Catalog) ScheduleFor(user string) ([]ScheduleDay, error) {
	p, ok := c.users[user]
	if !ok {
		return nil, fmt.Errorf("no schedule for user %q", user)
	}
	return p.Schedule, nil
}

// DayAt returns the schedule entry at weekday index 0-6 (Sunday=0).
func (c *Catalog) DayAt(user string, index int) (ScheduleDay, error) {
	sched, err := c.ScheduleFor(user)
	if err != nil {
		return ScheduleDay{}, err
	}
	if index < 0 || index > 6 {
		return ScheduleDay{}, fmt.Errorf("weekday index %d out of range 0-6", index)
	}
	return sched[index], nil
}

// DayByLabel returns the schedule entry whose label matches exactly.
// Used when logging against a different day's plan than the calendar
// date implies.
func (c *Catalog) DayByLabel(user, label string) (ScheduleDay, error) {
	sched, err := c.ScheduleFor(user)
	if err != nil {
		return ScheduleDay{}, err
	}
	for _, d := range sched {
		if d.Day == label {
			return d, nil
		}
	}
	return ScheduleDay{}, fmt.Errorf("no schedule day labeled %q for user %q", label, user)
}

// MealsFor returns the user's meal options for a section, in plan order.
func (c *Catalog) MealsFor(user string, section models.MealSection) ([]Meal, error) {
	p, ok := c.users[user]
	if !ok {
		return nil, fmt.Errorf("no meal plan for user %q", user)
	}
	return p.Meals[string(section)], nil
}

// FindMeal looks a meal up by name within a section.
func (c *Catalog) FindMeal(user string, section models.MealSection, name string) (Meal, error) {
	meals, err := c.MealsFor(user, section)
	if err != nil {
		return Meal{}, err
	}
	for _, m := range meals {
		if m.Name == name {
			return m, nil
		}
	}
	return Meal{}, fmt.Errorf("no meal %q under %s for user %q", name, section, user)
}

// GoalsFor returns the user's daily nutrient goals.
func (c *Catalog) GoalsFor(user string) (NutrientGoals, error) {
	p, ok := c.users[user]
	if !ok {
		return NutrientGoals{}, fmt.Errorf("no goals for user %q", user)
	}
	return p.Goals, nil
}
