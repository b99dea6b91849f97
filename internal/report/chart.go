// ABOUTME: Chart series and vertical-domain computation for progress views.
// ABOUTME: Mirrors the axis math of the rendered area charts.
package report

import (
	"time"

	"github.com/philturner/fitlog/internal/models"
)

// Point is one chart sample: a date and the value selected from the
// entry's payload.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PointValue selects the charted value from a workout payload:
// weight, else time, else calories, else 0.
func PointValue(e *models.WorkoutEntry) float64 {
	switch {
	case e.Weight != nil:
		return *e.Weight
	case e.Time != nil:
		return float64(*e.Time)
	case e.Calories != nil:
		return float64(*e.Calories)
	}
	return 0
}

// ExerciseSeries converts an exercise history into chart points,
// preserving the store's ascending date order.
func ExerciseSeries(entries []*models.WorkoutEntry) []Point {
	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, Point{Date: e.Date, Value: PointValue(e)})
	}
	return points
}

// Domain computes the vertical axis range for a goalless series:
// [max(0, min-padding), max+padding] with padding = (max-min)*0.1.
// A flat series collapses to [v*0.9, v*1.1]; an empty series to [0, 1].
func Domain(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	minV, maxV := minMax(values)
	if minV == maxV {
		return minV * 0.9, minV * 1.1
	}
	padding := (maxV - minV) * 0.1
	lo = minV - padding
	if lo < 0 {
		lo = 0
	}
	return lo, maxV + padding
}

// DomainWithGoal computes the vertical axis range for a series charted
// against a goal line:
// [min(0, min-padding, goal*0.9), max(max+padding, goal*1.1)].
// A flat series collapses to [min(v, goal)*0.9, max(v, goal)*1.1].
func DomainWithGoal(values []float64, goal float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 1
	}
	minV, maxV := minMax(values)
	if minV == maxV {
		return min(minV, goal) * 0.9, max(minV, goal) * 1.1
	}
	padding := (maxV - minV) * 0.1
	return min(0, minV-padding, goal*0.9), max(maxV+padding, goal*1.1)
}

func minMax(values []float64) (minV, maxV float64) {
	minV, maxV = values[0], values[0]
	for _, v := range values[1:] {
		minV = min(minV, v)
		maxV = max(maxV, v)
	}
	return minV, maxV
}
