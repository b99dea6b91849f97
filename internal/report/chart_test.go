// ABOUTME: Tests for chart series and vertical-domain computation.
// ABOUTME: Pins the padding and goal-line axis math.
package report

import (
	"math"
	"testing"
	"time"

	"github.com/philturner/fitlog/internal/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDomain(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		lo, hi float64
	}{
		{"empty", nil, 0, 1},
		{"flat", []float64{50}, 45, 55},
		{"flat repeated", []float64{20, 20, 20}, 18, 22},
		{"padded range", []float64{10, 20, 30}, 8, 32},
		{"lower bound clamps at zero", []float64{1, 100}, 0, 109.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Domain(tt.values)
			if !almostEqual(lo, tt.lo) || !almostEqual(hi, tt.hi) {
				t.Errorf("Domain(%v) = [%v, %v], want [%v, %v]", tt.values, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestDomainWithGoal(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		goal   float64
		lo, hi float64
	}{
		{"empty", nil, 100, 0, 1},
		{"goal inside range", []float64{10, 20, 30}, 25, 0, 32},
		{"goal above range", []float64{10, 20, 30}, 50, 0, 55},
		{"flat below goal", []float64{50}, 100, 45, 110},
		{"flat above goal", []float64{150}, 100, 90, 165},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := DomainWithGoal(tt.values, tt.goal)
			if !almostEqual(lo, tt.lo) || !almostEqual(hi, tt.hi) {
				t.Errorf("DomainWithGoal(%v, %v) = [%v, %v], want [%v, %v]",
					tt.values, tt.goal, lo, hi, tt.lo, tt.hi)
			}
		})
	}
}

func TestPointValue(t *testing.T) {
	weight := 60.0
	minutes := 30
	calories := 300

	tests := []struct {
		name string
		e    *models.WorkoutEntry
		want float64
	}{
		{"weight wins", &models.WorkoutEntry{Payload: models.Payload{Weight: &weight, Time: &minutes}}, 60},
		{"time over calories", &models.WorkoutEntry{Payload: models.Payload{Time: &minutes, Calories: &calories}}, 30},
		{"calories fallback", &models.WorkoutEntry{Payload: models.Payload{Calories: &calories}}, 300},
		{"all nil", &models.WorkoutEntry{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointValue(tt.e); got != tt.want {
				t.Errorf("PointValue = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExerciseSeries(t *testing.T) {
	d1, _ := time.Parse(time.DateOnly, "2026-08-10")
	d2, _ := time.Parse(time.DateOnly, "2026-08-17")
	w1, w2 := 60.0, 65.0

	entries := []*models.WorkoutEntry{
		{Date: d1, Payload: models.Payload{Weight: &w1}},
		{Date: d2, Payload: models.Payload{Weight: &w2}},
	}

	points := ExerciseSeries(entries)
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].Date != d1 || points[0].Value != 60 {
		t.Errorf("points[0] = %+v", points[0])
	}
	if points[1].Date != d2 || points[1].Value != 65 {
		t.Errorf("points[1] = %+v", points[1])
	}
}
