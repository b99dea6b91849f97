// ABOUTME: Date-range helpers shared by the stores and aggregation views.
// ABOUTME: Weeks are Sunday-anchored to match the calendar presentation.
package dateutil

import (
	"fmt"
	"time"
)

// ViewMode selects the aggregation granularity for nutrition charting.
type ViewMode string

const (
	ViewWeek  ViewMode = "week"
	ViewMonth ViewMode = "month"
)

// ParseViewMode validates a mode string.
func ParseViewMode(s string) (ViewMode, error) {
	switch ViewMode(s) {
	case ViewWeek, ViewMonth:
		return ViewMode(s), nil
	}
	return "", fmt.Errorf("unknown view mode: %q (want week or month)", s)
}

// Day truncates a timestamp to its calendar date in UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekOf returns the Sunday-to-Saturday week containing ref, both ends
// inclusive.
func WeekOf(ref time.Time) (start, end time.Time) {
	d := Day(ref)
	start = d.AddDate(0, 0, -int(d.Weekday()))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// MonthOf returns the first and last day of the calendar month containing
// ref, both ends inclusive.
func MonthOf(ref time.Time) (start, end time.Time) {
	start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// PeriodOf resolves a view mode into its date range around ref.
func PeriodOf(ref time.Time, mode ViewMode) (start, end time.Time) {
	if mode == ViewWeek {
		return WeekOf(ref)
	}
	return MonthOf(ref)
}
