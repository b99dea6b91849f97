// ABOUTME: Streak and summary statistics derived from workout stamps.
// ABOUTME: Pure functions over already-fetched data; no database access.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/philturner/fitlog/internal/models"
)

// Stats summarizes a user's full workout history for the heatmap view.
type Stats struct {
	TotalWorkouts    int     `json:"total_workouts"`
	TotalDays        int     `json:"total_days"`
	AvgDaysPerWeek   float64 `json:"avg_days_per_week"`
	CurrentStreak    int     `json:"current_streak"`
	BestStreak       int     `json:"best_streak"`
	WeeklyStreak     int     `json:"weekly_streak"`
	BestWeeklyStreak int     `json:"best_weekly_streak"`
}

// Summarize computes the full stat block from chronologically ordered
// workout stamps.
func Summarize(stamps []models.WorkoutStamp) Stats {
	days := distinctDays(stamps)
	current, best := DayStreaks(stamps)
	weekly, bestWeekly := WeekStreaks(stamps)
	return Stats{
		TotalWorkouts:    len(stamps),
		TotalDays:        len(days),
		AvgDaysPerWeek:   AvgDaysPerWeek(len(stamps), len(days)),
		CurrentStreak:    current,
		BestStreak:       best,
		WeeklyStreak:     weekly,
		BestWeeklyStreak: bestWeekly,
	}
}

// DayStreaks computes the current and best run of consecutive workout
// days. Each calendar date counts at most once no matter how many
// exercises were logged that day; any gap larger than one day resets the
// running streak to 1.
func DayStreaks(stamps []models.WorkoutStamp) (current, best int) {
	days := distinctDays(stamps)
	var last time.Time
	for i, day := range days {
		if i == 0 {
			current = 1
		} else if day.Sub(last) == 24*time.Hour {
			current++
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
		last = day
	}
	if len(days) == 0 {
		return 0, 0
	}
	return current, best
}

// WeekStreaks buckets workout days into ISO weeks (Thursday-anchored)
// and computes the current and best run of consecutive weeks. Buckets
// are ordered numerically by (year, week), so runs spanning a year
// boundary and single- vs double-digit week numbers order correctly.
func WeekStreaks(stamps []models.WorkoutStamp) (current, best int) {
	type weekKey struct {
		year, week int
	}
	seen := make(map[weekKey]bool)
	var weeks []weekKey
	for _, s := range stamps {
		y, w := s.Date.ISOWeek()
		k := weekKey{y, w}
		if !seen[k] {
			seen[k] = true
			weeks = append(weeks, k)
		}
	}
	sort.Slice(weeks, func(i, j int) bool {
		if weeks[i].year != weeks[j].year {
			return weeks[i].year < weeks[j].year
		}
		return weeks[i].week < weeks[j].week
	})

	for i, wk := range weeks {
		if i > 0 && consecutiveWeeks(weeks[i-1].year, weeks[i-1].week, wk.year, wk.week) {
			current++
		} else {
			current = 1
		}
		if current > best {
			best = current
		}
	}
	if len(weeks) == 0 {
		return 0, 0
	}
	return current, best
}

// consecutiveWeeks reports whether (y2, w2) directly follows (y1, w1),
// including the wrap from the last ISO week of a year into week 1.
func consecutiveWeeks(y1, w1, y2, w2 int) bool {
	if y1 == y2 {
		return w2 == w1+1
	}
	if y2 == y1+1 && w2 == 1 {
		return w1 == isoWeeksInYear(y1)
	}
	return false
}

// isoWeeksInYear returns 52 or 53 for the given ISO year.
func isoWeeksInYear(year int) int {
	// Dec 28 always falls in the last ISO week of its year.
	_, w := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return w
}

// AvgDaysPerWeek divides distinct workout days by ceil(entries/7).
// This is the source system's approximation, not a calendar-week count;
// it is preserved for compatibility.
func AvgDaysPerWeek(entryCount, dayCount int) float64 {
	totalWeeks := 1.0
	if entryCount > 0 {
		totalWeeks = math.Ceil(float64(entryCount) / 7)
	}
	return float64(dayCount) / totalWeeks
}

// distinctDays returns the unique calendar dates in stamps, ascending.
func distinctDays(stamps []models.WorkoutStamp) []time.Time {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, s := range stamps {
		day := models.Midnight(s.Date)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
