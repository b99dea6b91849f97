// ABOUTME: NutritionEntry model and the fixed meal-section enumeration.
// ABOUTME: Macro totals scale per-unit values by the quantity multiplier.
package models

import (
	"fmt"
	"time"
)

// MealSection identifies the slot a meal is logged under.
type MealSection string

const (
	SectionBreakfast MealSection = "Breakfast"
	SectionSnack     MealSection = "Snack"
	SectionLunch     MealSection = "Lunch"
	SectionDinner    MealSection = "Dinner"
	SectionTreat     MealSection = "Treat"
)

// MealSections lists the sections in display order.
func MealSections() []MealSection {
	return []MealSection{SectionBreakfast, SectionSnack, SectionLunch, SectionDinner, SectionTreat}
}

// IsValidMealSection reports whether s names a known section.
func IsValidMealSection(s string) bool {
	switch MealSection(s) {
	case SectionBreakfast, SectionSnack, SectionLunch, SectionDinner, SectionTreat:
		return true
	}
	return false
}

// NutritionEntry represents one logged meal. Multiple entries per
// (user, date, section) are allowed; rows are never updated in place.
type NutritionEntry struct {
	ID       int64       `json:"id"`
	UserID   string      `json:"user_id"`
	Date     time.Time   `json:"date"`
	Section  MealSection `json:"meal_section"`
	MealName string      `json:"meal_name"`
	Calories int         `json:"calories"`
	Protein  float64     `json:"protein"`
	Carbs    float64     `json:"carbs"`
	Fat      float64     `json:"fat"`
	Quantity int         `json:"quantity"`
}

// NewNutritionEntry creates a nutrition log entry with per-unit macros.
func NewNutritionEntry(userID string, date time.Time, section MealSection, name string, calories int, protein, carbs, fat float64, quantity int) *NutritionEntry {
	return &NutritionEntry{
		UserID:   userID,
		Date:     Midnight(date),
		Section:  section,
		MealName: name,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
		Quantity: quantity,
	}
}

// Validate checks required fields and the quantity invariant.
func (e *NutritionEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("user is required")
	}
	if e.MealName == "" {
		return fmt.Errorf("meal name is required")
	}
	if !IsValidMealSection(string(e.Section)) {
		return fmt.Errorf("unknown meal section: %s", e.Section)
	}
	if e.Quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}
	return nil
}

// Totals returns the entry's macros scaled by quantity.
func (e *NutritionEntry) Totals() MacroTotals {
	q := float64(e.Quantity)
	return MacroTotals{
		Calories: float64(e.Calories) * q,
		Protein:  e.Protein * q,
		Carbs:    e.Carbs * q,
		Fat:      e.Fat * q,
	}
}

// MacroTotals holds summed macro values; sums default to zero, never null.
type MacroTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DayTotals pairs a calendar date with its macro sums. Period series are
// sparse: dates with no logs are absent.
type DayTotals struct {
	Date time.Time `json:"date"`
	MacroTotals
}
