// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides setupTestDB plus entry builders for fixture rows.
package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/philturner/fitlog/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func mustDate(s string) time.Time {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return d
}

func strengthEntry(user, date, exercise string) *models.WorkoutEntry {
	return models.NewStrengthEntry(user, mustDate(date), exercise, 3, "8-10", 60)
}

func cardioEntry(user, date, exercise string) *models.WorkoutEntry {
	return models.NewCardioEntry(user, mustDate(date), exercise, 30, 300)
}

func mealEntry(user, date string, section models.MealSection, name string, qty int) *models.NutritionEntry {
	return models.NewNutritionEntry(user, mustDate(date), section, name, 400, 30, 45, 12, qty)
}
