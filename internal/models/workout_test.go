// ABOUTME: Tests for WorkoutEntry validation and formatting.
// ABOUTME: Covers payload exclusivity and the summary rendering.
package models

import (
	"testing"
	"time"
)

func TestWorkoutEntryValidate(t *testing.T) {
	date := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		entry   *WorkoutEntry
		wantErr bool
	}{
		{
			name:  "valid strength",
			entry: NewStrengthEntry("phil", date, "Bench Press", 3, "8-10", 60),
		},
		{
			name:  "valid cardio",
			entry: NewCardioEntry("phil", date, "Treadmill", 30, 300),
		},
		{
			name:    "missing user",
			entry:   NewStrengthEntry("", date, "Bench Press", 3, "8-10", 60),
			wantErr: true,
		},
		{
			name:    "missing exercise",
			entry:   NewStrengthEntry("phil", date, "", 3, "8-10", 60),
			wantErr: true,
		},
		{
			name:    "missing date",
			entry:   NewStrengthEntry("phil", time.Time{}, "Bench Press", 3, "8-10", 60),
			wantErr: true,
		},
		{
			name: "strength entry with cardio payload",
			entry: func() *WorkoutEntry {
				e := NewCardioEntry("phil", date, "Treadmill", 30, 300)
				e.IsCardio = false
				return e
			}(),
			wantErr: true,
		},
		{
			name: "cardio entry with strength payload",
			entry: func() *WorkoutEntry {
				e := NewStrengthEntry("phil", date, "Bench Press", 3, "8-10", 60)
				e.IsCardio = true
				return e
			}(),
			wantErr: true,
		},
		{
			name:    "empty payload",
			entry:   &WorkoutEntry{UserID: "phil", Date: date, Exercise: "Bench Press"},
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

func TestWorkoutEntrySummary(t *testing.T) {
	date := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)

	strength := NewStrengthEntry("phil", date, "Bench Press", 3, "8-10", 62.5)
	if got := strength.Summary(); got != "3 sets of 8-10 @ 62.5kg" {
		t.Errorf("strength summary = %q", got)
	}

	cardio := NewCardioEntry("phil", date, "Treadmill", 30, 300)
	if got := cardio.Summary(); got != "30 min, 300 cal" {
		t.Errorf("cardio summary = %q", got)
	}
}

func TestMidnight(t *testing.T) {
	in := time.Date(2026, time.August, 24, 18, 45, 12, 999, time.FixedZone("X", 3600))
	got := Midnight(in)
	want := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Midnight = %v, want %v", got, want)
	}
}

func TestNewEntriesTruncateDates(t *testing.T) {
	noon := time.Date(2026, time.August, 24, 12, 0, 0, 0, time.UTC)
	e := NewStrengthEntry("phil", noon, "Bench Press", 3, "8-10", 60)
	if e.Date.Hour() != 0 || e.Date.Minute() != 0 {
		t.Errorf("date not truncated: %v", e.Date)
	}
}
