// ABOUTME: Tests for CLI helper functions and command wiring.
// ABOUTME: Covers parseDateFlag, bar, truncate, padRight, and flag registration.
package main

import (
	"strings"
	"testing"
	"time"

	"github.com/philturner/fitlog/internal/models"
)

func TestParseDateFlag(t *testing.T) {
	got, err := parseDateFlag("2026-08-24")
	if err != nil {
		t.Fatalf("parseDateFlag failed: %v", err)
	}
	want := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parseDateFlag = %v, want %v", got, want)
	}

	today, err := parseDateFlag("")
	if err != nil {
		t.Fatalf("parseDateFlag(\"\") failed: %v", err)
	}
	if !today.Equal(models.Midnight(time.Now())) {
		t.Errorf("empty flag = %v, want today at midnight", today)
	}

	for _, bad := range []string{"08/24/2026", "2026-8-24", "tomorrow"} {
		if _, err := parseDateFlag(bad); err == nil {
			t.Errorf("parseDateFlag(%q) accepted", bad)
		}
	}
}

func TestBar(t *testing.T) {
	tests := []struct {
		name       string
		v, lo, hi  float64
		width, len int
	}{
		{"bottom of range", 0, 0, 10, 10, 0},
		{"top of range", 10, 0, 10, 10, 10},
		{"midpoint", 5, 0, 10, 10, 5},
		{"below range clamps", -5, 0, 10, 10, 0},
		{"above range clamps", 20, 0, 10, 10, 10},
		{"degenerate range", 5, 10, 10, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bar(tt.v, tt.lo, tt.hi, tt.width)
			if n := strings.Count(got, "█"); n != tt.len {
				t.Errorf("bar(%v, %v, %v, %d) has %d cells, want %d",
					tt.v, tt.lo, tt.hi, tt.width, n, tt.len)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly ten chars ok", 20, "exactly ten chars ok"},
		{"this is a long string", 10, "this is..."},
	}

	for _, tt := range tests {
		got := truncate(tt.input, tt.maxLen)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"abc", 5, "abc  "},
		{"abcde", 5, "abcde"},
		{"abcdef", 5, "abcdef"},
	}

	for _, tt := range tests {
		got := padRight(tt.input, tt.length)
		if got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestNutrientValue(t *testing.T) {
	totals := models.MacroTotals{Calories: 2000, Protein: 150, Carbs: 250, Fat: 70}

	tests := []struct {
		nutrient string
		want     float64
	}{
		{"calories", 2000},
		{"protein", 150},
		{"carbs", 250},
		{"fat", 70},
		{"unknown", 2000},
	}
	for _, tt := range tests {
		if got := nutrientValue(totals, tt.nutrient); got != tt.want {
			t.Errorf("nutrientValue(%s) = %v, want %v", tt.nutrient, got, tt.want)
		}
	}
}

func TestCommandTree(t *testing.T) {
	want := map[string][]string{
		"workout": {"log", "last", "list", "progress", "delete"},
		"meal":    {"log", "list", "delete", "totals", "chart"},
		"plan":    {"today"},
		"sync":    {"push", "status"},
		"stats":   nil,
		"export":  nil,
		"import":  nil,
		"mcp":     nil,
	}

	for name, subs := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("command %s not registered", name)
			continue
		}
		for _, sub := range subs {
			if c, _, err := rootCmd.Find([]string{name, sub}); err != nil || c.Name() != sub {
				t.Errorf("subcommand %s %s not registered", name, sub)
			}
		}
	}
}

func TestWorkoutLogFlags(t *testing.T) {
	for _, flag := range []string{"date", "sets", "reps", "weight", "cardio", "time", "calories", "overwrite"} {
		if workoutLogCmd.Flags().Lookup(flag) == nil {
			t.Errorf("workout log missing --%s", flag)
		}
	}
	if rootCmd.PersistentFlags().Lookup("user") == nil {
		t.Error("root missing persistent --user")
	}
}
