// ABOUTME: WorkoutEntry model for logged exercise sessions.
// ABOUTME: An entry carries either a strength payload or a cardio payload, never both.
package models

import (
	"fmt"
	"time"
)

// WorkoutEntry represents one logged exercise for a user on a calendar date.
// At most one entry exists per (user, date, exercise).
type WorkoutEntry struct {
	ID       int64     `json:"id"`
	UserID   string    `json:"user_id"`
	Date     time.Time `json:"date"`
	Exercise string    `json:"exercise"`
	IsCardio bool      `json:"is_cardio"`
	Payload
}

// Payload holds the mutable measurement fields of a workout entry.
// Strength entries populate Sets/Reps/Weight; cardio entries populate
// Time/Calories. The unused side stays nil.
type Payload struct {
	Sets     *int     `json:"sets,omitempty"`
	Reps     *string  `json:"reps,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
	Time     *int     `json:"time,omitempty"`
	Calories *int     `json:"calories,omitempty"`
}

// NewStrengthEntry creates a strength workout entry.
func NewStrengthEntry(userID string, date time.Time, exercise string, sets int, reps string, weight float64) *WorkoutEntry {
	return &WorkoutEntry{
		UserID:   userID,
		Date:     Midnight(date),
		Exercise: exercise,
		Payload: Payload{
			Sets:   &sets,
			Reps:   &reps,
			Weight: &weight,
		},
	}
}

// NewCardioEntry creates a cardio workout entry.
func NewCardioEntry(userID string, date time.Time, exercise string, minutes, calories int) *WorkoutEntry {
	return &WorkoutEntry{
		UserID:   userID,
		Date:     Midnight(date),
		Exercise: exercise,
		IsCardio: true,
		Payload: Payload{
			Time:     &minutes,
			Calories: &calories,
		},
	}
}

// Validate checks that exactly one payload side is populated, consistent
// with the IsCardio flag.
func (e *WorkoutEntry) Validate() error {
	if e.UserID == "" {
		return fmt.Errorf("user is required")
	}
	if e.Exercise == "" {
		return fmt.Errorf("exercise is required")
	}
	if e.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	hasStrength := e.Sets != nil || e.Reps != nil || e.Weight != nil
	hasCardio := e.Time != nil || e.Calories != nil
	switch {
	case e.IsCardio && hasStrength:
		return fmt.Errorf("cardio entry cannot carry sets/reps/weight")
	case e.IsCardio && !hasCardio:
		return fmt.Errorf("cardio entry requires time and calories")
	case !e.IsCardio && hasCardio:
		return fmt.Errorf("strength entry cannot carry time/calories")
	case !e.IsCardio && !hasStrength:
		return fmt.Errorf("strength entry requires sets, reps, and weight")
	}
	return nil
}

// Summary renders the payload the way the weekly list shows it.
func (e *WorkoutEntry) Summary() string {
	if e.IsCardio {
		return fmt.Sprintf("%d min, %d cal", intOrZero(e.Time), intOrZero(e.Calories))
	}
	reps := ""
	if e.Reps != nil {
		reps = *e.Reps
	}
	weight := 0.0
	if e.Weight != nil {
		weight = *e.Weight
	}
	return fmt.Sprintf("%d sets of %s @ %.4gkg", intOrZero(e.Sets), reps, weight)
}

// WorkoutStamp is the minimal (date, exercise) projection used by the
// heatmap and streak views.
type WorkoutStamp struct {
	Date     time.Time `json:"date"`
	Exercise string    `json:"exercise"`
}

// Midnight truncates a timestamp to its calendar date in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
