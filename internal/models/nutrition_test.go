// ABOUTME: Tests for NutritionEntry validation and macro scaling.
// ABOUTME: Covers the quantity invariant and section enumeration.
package models

import (
	"testing"
	"time"
)

func TestNutritionEntryValidate(t *testing.T) {
	date := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entry   *NutritionEntry
		wantErr bool
	}{
		{
			name:  "valid",
			entry: NewNutritionEntry("phil", date, SectionLunch, "Tuna Salad", 400, 35, 20, 20, 1),
		},
		{
			name:    "missing user",
			entry:   NewNutritionEntry("", date, SectionLunch, "Tuna Salad", 400, 35, 20, 20, 1),
			wantErr: true,
		},
		{
			name:    "missing meal name",
			entry:   NewNutritionEntry("phil", date, SectionLunch, "", 400, 35, 20, 20, 1),
			wantErr: true,
		},
		{
			name:    "unknown section",
			entry:   NewNutritionEntry("phil", date, MealSection("Brunch"), "Tuna Salad", 400, 35, 20, 20, 1),
			wantErr: true,
		},
		{
			name:    "zero quantity",
			entry:   NewNutritionEntry("phil", date, SectionLunch, "Tuna Salad", 400, 35, 20, 20, 0),
			wantErr: true,
		},
		{
			name:    "negative quantity",
			entry:   NewNutritionEntry("phil", date, SectionLunch, "Tuna Salad", 400, 35, 20, 20, -2),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entry.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNutritionEntryTotals(t *testing.T) {
	date := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	e := NewNutritionEntry("phil", date, SectionSnack, "Protein Shake", 200, 30, 5, 3, 3)

	got := e.Totals()
	want := MacroTotals{Calories: 600, Protein: 90, Carbs: 15, Fat: 9}
	if got != want {
		t.Errorf("Totals() = %+v, want %+v", got, want)
	}
}

func TestMealSections(t *testing.T) {
	sections := MealSections()
	want := []MealSection{SectionBreakfast, SectionSnack, SectionLunch, SectionDinner, SectionTreat}
	if len(sections) != len(want) {
		t.Fatalf("got %d sections, want %d", len(sections), len(want))
	}
	for i := range want {
		if sections[i] != want[i] {
			t.Errorf("sections[%d] = %s, want %s", i, sections[i], want[i])
		}
	}
}

func TestIsValidMealSection(t *testing.T) {
	for _, s := range MealSections() {
		if !IsValidMealSection(string(s)) {
			t.Errorf("IsValidMealSection(%s) = false", s)
		}
	}
	for _, s := range []string{"", "Brunch", "breakfast", "SNACK"} {
		if IsValidMealSection(s) {
			t.Errorf("IsValidMealSection(%q) = true", s)
		}
	}
}
