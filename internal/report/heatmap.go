// ABOUTME: Heatmap bucketing for the rolling 52-week activity view.
// ABOUTME: Counts entries per date and maps counts to 5 intensity levels.
package report

import (
	"time"

	"github.com/philturner/fitlog/internal/models"
)

const (
	// WeeksToShow is the width of the heatmap window.
	WeeksToShow = 52
	// DaysInWeek is the height of the heatmap grid.
	DaysInWeek = 7
)

// HeatmapCounts counts logged entries per calendar date. Every entry
// counts, not just distinct exercises.
func HeatmapCounts(stamps []models.WorkoutStamp) map[time.Time]int {
	counts := make(map[time.Time]int)
	for _, s := range stamps {
		counts[models.Midnight(s.Date)]++
	}
	return counts
}

// HeatLevel maps an entry count to one of five intensity levels
// (0, 1, 2, 3, >=4).
func HeatLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count >= 4:
		return 4
	default:
		return count
	}
}

// HeatmapWindow returns the dates of the 52-week window starting at the
// anchor date, in column-major order (7 days per week column), matching
// the rendered grid.
func HeatmapWindow(anchor time.Time) []time.Time {
	dates := make([]time.Time, 0, WeeksToShow*DaysInWeek)
	day := models.Midnight(anchor)
	for week := 0; week < WeeksToShow; week++ {
		for d := 0; d < DaysInWeek; d++ {
			dates = append(dates, day)
			day = day.AddDate(0, 0, 1)
		}
	}
	return dates
}
