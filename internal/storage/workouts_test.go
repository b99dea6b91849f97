// ABOUTME: Tests for workout log store CRUD operations.
// ABOUTME: Covers the uniqueness policy, overwrite semantics, and ordering.
package storage

import (
	"errors"
	"testing"

	"github.com/philturner/fitlog/internal/models"
)

func TestLogWorkoutRoundtrip(t *testing.T) {
	db := setupTestDB(t)

	e := strengthEntry("phil", "2026-08-24", "Bench Press")
	id, err := db.LogWorkout(e)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if id == 0 {
		t.Error("LogWorkout returned zero id")
	}
	if e.ID != id {
		t.Errorf("entry id = %d, want %d", e.ID, id)
	}

	got, err := db.GetWorkout(id)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if got.UserID != "phil" || got.Exercise != "Bench Press" {
		t.Errorf("got %s/%s, want phil/Bench Press", got.UserID, got.Exercise)
	}
	if got.IsCardio {
		t.Error("strength entry scanned as cardio")
	}
	if got.Sets == nil || *got.Sets != 3 {
		t.Errorf("sets = %v, want 3", got.Sets)
	}
	if got.Reps == nil || *got.Reps != "8-10" {
		t.Errorf("reps = %v, want 8-10", got.Reps)
	}
	if got.Weight == nil || *got.Weight != 60 {
		t.Errorf("weight = %v, want 60", got.Weight)
	}
	if got.Time != nil || got.Calories != nil {
		t.Error("strength entry carries cardio fields")
	}
	if got.Date != mustDate("2026-08-24") {
		t.Errorf("date = %v, want 2026-08-24", got.Date)
	}
}

func TestLogWorkoutCardio(t *testing.T) {
	db := setupTestDB(t)

	id, err := db.LogWorkout(cardioEntry("phil", "2026-08-24", "Treadmill"))
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	got, err := db.GetWorkout(id)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	if !got.IsCardio {
		t.Error("cardio entry scanned as strength")
	}
	if got.Time == nil || *got.Time != 30 {
		t.Errorf("time = %v, want 30", got.Time)
	}
	if got.Calories == nil || *got.Calories != 300 {
		t.Errorf("calories = %v, want 300", got.Calories)
	}
	if got.Sets != nil || got.Reps != nil || got.Weight != nil {
		t.Error("cardio entry carries strength fields")
	}
}

func TestLogWorkoutConflict(t *testing.T) {
	db := setupTestDB(t)

	first := strengthEntry("phil", "2026-08-24", "Bench Press")
	firstID, err := db.LogWorkout(first)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	_, err = db.LogWorkout(strengthEntry("phil", "2026-08-24", "Bench Press"))
	if err == nil {
		t.Fatal("expected conflict, got nil error")
	}
	ce, ok := AsConflict(err)
	if !ok {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if !errors.Is(err, ErrConflict) {
		t.Error("conflict does not unwrap to ErrConflict")
	}
	if ce.Existing == nil || ce.Existing.ID != firstID {
		t.Errorf("conflict carries id %v, want %d", ce.Existing, firstID)
	}
}

func TestLogWorkoutNoConflictAcrossTriple(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.LogWorkout(strengthEntry("phil", "2026-08-24", "Bench Press")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	// Different date, different exercise, different user: all fine.
	others := []struct {
		user, date, exercise string
	}{
		{"phil", "2026-08-25", "Bench Press"},
		{"phil", "2026-08-24", "Deadlift"},
		{"eliza", "2026-08-24", "Bench Press"},
	}
	for _, o := range others {
		if _, err := db.LogWorkout(strengthEntry(o.user, o.date, o.exercise)); err != nil {
			t.Errorf("LogWorkout(%s, %s, %s) failed: %v", o.user, o.date, o.exercise, err)
		}
	}
}

func TestOverwriteWorkout(t *testing.T) {
	db := setupTestDB(t)

	e := strengthEntry("phil", "2026-08-24", "Bench Press")
	id, err := db.LogWorkout(e)
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	sets, reps, weight := 5, "5", 70.0
	affected, err := db.OverwriteWorkout(id, models.Payload{Sets: &sets, Reps: &reps, Weight: &weight})
	if err != nil {
		t.Fatalf("OverwriteWorkout failed: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	got, err := db.GetWorkout(id)
	if err != nil {
		t.Fatalf("GetWorkout failed: %v", err)
	}
	// Identity fields survive; payload is replaced.
	if got.UserID != "phil" || got.Exercise != "Bench Press" || got.Date != mustDate("2026-08-24") {
		t.Error("overwrite changed identity fields")
	}
	if *got.Sets != 5 || *got.Reps != "5" || *got.Weight != 70 {
		t.Errorf("payload = %d/%s/%.0f, want 5/5/70", *got.Sets, *got.Reps, *got.Weight)
	}
}

func TestOverwriteWorkoutMissingID(t *testing.T) {
	db := setupTestDB(t)

	sets := 3
	affected, err := db.OverwriteWorkout(999, models.Payload{Sets: &sets})
	if err != nil {
		t.Fatalf("OverwriteWorkout failed: %v", err)
	}
	if affected != 0 {
		t.Errorf("affected = %d, want 0", affected)
	}
}

func TestListWorkoutsOrdering(t *testing.T) {
	db := setupTestDB(t)

	// Insert out of order.
	for _, f := range []struct{ date, exercise string }{
		{"2026-08-26", "Squat"},
		{"2026-08-24", "Deadlift"},
		{"2026-08-24", "Bench Press"},
		{"2026-08-25", "Overhead Press"},
	} {
		if _, err := db.LogWorkout(strengthEntry("phil", f.date, f.exercise)); err != nil {
			t.Fatalf("LogWorkout failed: %v", err)
		}
	}
	// Outside the range and another user.
	if _, err := db.LogWorkout(strengthEntry("phil", "2026-08-30", "Squat")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, err := db.LogWorkout(strengthEntry("eliza", "2026-08-24", "Squat")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	workouts, err := db.ListWorkouts("phil", mustDate("2026-08-24"), mustDate("2026-08-26"))
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}

	want := []string{"Bench Press", "Deadlift", "Overhead Press", "Squat"}
	if len(workouts) != len(want) {
		t.Fatalf("got %d workouts, want %d", len(workouts), len(want))
	}
	for i, w := range workouts {
		if w.Exercise != want[i] {
			t.Errorf("workouts[%d] = %s, want %s", i, w.Exercise, want[i])
		}
	}
}

func TestLastWorkout(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.LogWorkout(strengthEntry("phil", "2026-08-20", "Bench Press")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	latest := models.NewStrengthEntry("phil", mustDate("2026-08-24"), "Bench Press", 4, "6-8", 65)
	if _, err := db.LogWorkout(latest); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	got, err := db.LastWorkout("phil", "Bench Press")
	if err != nil {
		t.Fatalf("LastWorkout failed: %v", err)
	}
	if got.Date != mustDate("2026-08-24") {
		t.Errorf("last workout date = %v, want 2026-08-24", got.Date)
	}
	if *got.Weight != 65 {
		t.Errorf("last workout weight = %v, want 65", *got.Weight)
	}
}

func TestLastWorkoutNotFound(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.LastWorkout("phil", "Bench Press")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LastWorkout error = %v, want ErrNotFound", err)
	}
}

func TestExerciseHistoryAscending(t *testing.T) {
	db := setupTestDB(t)

	for _, date := range []string{"2026-08-24", "2026-08-10", "2026-08-17"} {
		if _, err := db.LogWorkout(strengthEntry("phil", date, "Squat")); err != nil {
			t.Fatalf("LogWorkout failed: %v", err)
		}
	}
	if _, err := db.LogWorkout(strengthEntry("phil", "2026-08-24", "Deadlift")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	history, err := db.ExerciseHistory("phil", "Squat")
	if err != nil {
		t.Fatalf("ExerciseHistory failed: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("got %d entries, want 3", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Date.Before(history[i-1].Date) {
			t.Error("history is not ascending by date")
		}
	}
}

func TestAllWorkouts(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.LogWorkout(strengthEntry("phil", "2026-08-24", "Bench Press")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, err := db.LogWorkout(strengthEntry("phil", "2026-08-24", "Deadlift")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}
	if _, err := db.LogWorkout(strengthEntry("eliza", "2026-08-24", "Squat")); err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	stamps, err := db.AllWorkouts("phil")
	if err != nil {
		t.Fatalf("AllWorkouts failed: %v", err)
	}
	if len(stamps) != 2 {
		t.Fatalf("got %d stamps, want 2", len(stamps))
	}
	for _, s := range stamps {
		if s.Date != mustDate("2026-08-24") {
			t.Errorf("stamp date = %v, want 2026-08-24", s.Date)
		}
	}
}

func TestDeleteWorkout(t *testing.T) {
	db := setupTestDB(t)

	id, err := db.LogWorkout(strengthEntry("phil", "2026-08-24", "Bench Press"))
	if err != nil {
		t.Fatalf("LogWorkout failed: %v", err)
	}

	if err := db.DeleteWorkout(id); err != nil {
		t.Fatalf("DeleteWorkout failed: %v", err)
	}
	if _, err := db.GetWorkout(id); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetWorkout after delete = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := db.DeleteWorkout(id); err != nil {
		t.Errorf("second DeleteWorkout failed: %v", err)
	}
}

func TestLogWorkoutValidates(t *testing.T) {
	db := setupTestDB(t)

	bad := strengthEntry("", "2026-08-24", "Bench Press")
	if _, err := db.LogWorkout(bad); err == nil {
		t.Error("expected validation error for missing user")
	}
}
