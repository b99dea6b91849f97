// ABOUTME: Tests for date-range helpers.
// ABOUTME: Pins the Sunday anchor and calendar month boundaries.
package dateutil

import (
	"testing"
	"time"
)

func d(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestParseViewMode(t *testing.T) {
	for _, s := range []string{"week", "month"} {
		mode, err := ParseViewMode(s)
		if err != nil {
			t.Errorf("ParseViewMode(%s) failed: %v", s, err)
		}
		if string(mode) != s {
			t.Errorf("ParseViewMode(%s) = %s", s, mode)
		}
	}
	for _, s := range []string{"", "year", "Week"} {
		if _, err := ParseViewMode(s); err == nil {
			t.Errorf("ParseViewMode(%q) accepted", s)
		}
	}
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		ref, start, end string
	}{
		// Monday inside the week.
		{"2026-08-24", "2026-08-23", "2026-08-29"},
		// Sunday is its own week start.
		{"2026-08-23", "2026-08-23", "2026-08-29"},
		// Saturday is the week end.
		{"2026-08-29", "2026-08-23", "2026-08-29"},
		// Week spanning a month boundary.
		{"2026-09-01", "2026-08-30", "2026-09-05"},
	}

	for _, tt := range tests {
		start, end := WeekOf(d(tt.ref))
		if !start.Equal(d(tt.start)) || !end.Equal(d(tt.end)) {
			t.Errorf("WeekOf(%s) = [%s, %s], want [%s, %s]",
				tt.ref, start.Format(time.DateOnly), end.Format(time.DateOnly), tt.start, tt.end)
		}
	}
}

func TestMonthOf(t *testing.T) {
	tests := []struct {
		ref, start, end string
	}{
		{"2026-08-15", "2026-08-01", "2026-08-31"},
		{"2026-02-10", "2026-02-01", "2026-02-28"},
		// Leap February.
		{"2028-02-10", "2028-02-01", "2028-02-29"},
	}

	for _, tt := range tests {
		start, end := MonthOf(d(tt.ref))
		if !start.Equal(d(tt.start)) || !end.Equal(d(tt.end)) {
			t.Errorf("MonthOf(%s) = [%s, %s], want [%s, %s]",
				tt.ref, start.Format(time.DateOnly), end.Format(time.DateOnly), tt.start, tt.end)
		}
	}
}

func TestPeriodOf(t *testing.T) {
	ref := d("2026-08-24")

	start, end := PeriodOf(ref, ViewWeek)
	if !start.Equal(d("2026-08-23")) || !end.Equal(d("2026-08-29")) {
		t.Errorf("PeriodOf week = [%v, %v]", start, end)
	}

	start, end = PeriodOf(ref, ViewMonth)
	if !start.Equal(d("2026-08-01")) || !end.Equal(d("2026-08-31")) {
		t.Errorf("PeriodOf month = [%v, %v]", start, end)
	}
}

func TestDayDropsTime(t *testing.T) {
	in := time.Date(2026, time.August, 24, 23, 59, 59, 0, time.UTC)
	got := Day(in)
	if !got.Equal(d("2026-08-24")) {
		t.Errorf("Day = %v", got)
	}
}
