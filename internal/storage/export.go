// ABOUTME: Export and import functionality for logged data.
// ABOUTME: Snapshots carry every user's workout and nutrition rows as JSON or YAML.
package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/philturner/fitlog/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full snapshot format.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	SnapshotID string                   `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Workouts   []*models.WorkoutEntry   `json:"workouts" yaml:"workouts"`
	Nutrition  []*models.NutritionEntry `json:"nutrition_logs" yaml:"nutrition_logs"`
}

// GetAllData retrieves every row for export, across all users.
func (d *DB) GetAllData() (*ExportData, error) {
	rows, err := d.db.Query(`SELECT ` + workoutColumns + ` FROM workouts ORDER BY date ASC, exercise ASC`)
	if err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}
	workouts, err := scanWorkouts(rows)
	rows.Close()
	if err != nil {
		return nil, fmt.Errorf("export workouts: %w", err)
	}

	nrows, err := d.db.Query(`SELECT ` + nutritionColumns + ` FROM nutrition_logs ORDER BY date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("export nutrition logs: %w", err)
	}
	defer nrows.Close()

	var nutrition []*models.NutritionEntry
	for nrows.Next() {
		e, err := scanNutrition(nrows)
		if err != nil {
			return nil, fmt.Errorf("export nutrition logs: %w", err)
		}
		nutrition = append(nutrition, e)
	}
	if err := nrows.Err(); err != nil {
		return nil, fmt.Errorf("export nutrition logs: %w", err)
	}

	return &ExportData{
		Version:    "1.0",
		SnapshotID: uuid.New().String(),
		ExportedAt: time.Now(),
		Tool:       "fitlog",
		Workouts:   workouts,
		Nutrition:  nutrition,
	}, nil
}

// ImportData imports rows from a snapshot. Workout rows that collide with
// an existing (user, date, exercise) triple are skipped rather than
// duplicated; nutrition rows always insert.
func (d *DB) ImportData(data *ExportData) error {
	for _, w := range data.Workouts {
		if _, err := d.LogWorkout(w); err != nil {
			if _, ok := AsConflict(err); ok {
				continue
			}
			return fmt.Errorf("import workout: %w", err)
		}
	}

	for _, n := range data.Nutrition {
		if _, err := d.LogNutrition(n); err != nil {
			return fmt.Errorf("import nutrition log: %w", err)
		}
	}

	return nil
}

// ExportJSON exports all data as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports all data as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.GetAllData()
	if err != nil {
		return nil, err
	}

	yamlData := struct {
		Version    string          `yaml:"version"`
		SnapshotID string          `yaml:"snapshot_id"`
		ExportedAt string          `yaml:"exported_at"`
		Tool       string          `yaml:"tool"`
		Workouts   []yamlWorkout   `yaml:"workouts"`
		Nutrition  []yamlNutrition `yaml:"nutrition_logs"`
	}{
		Version:    data.Version,
		SnapshotID: data.SnapshotID,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Workouts:   make([]yamlWorkout, 0, len(data.Workouts)),
		Nutrition:  make([]yamlNutrition, 0, len(data.Nutrition)),
	}

	for _, w := range data.Workouts {
		yw := yamlWorkout{
			ID:       w.ID,
			User:     w.UserID,
			Date:     w.Date.Format(time.DateOnly),
			Exercise: w.Exercise,
			IsCardio: w.IsCardio,
		}
		if w.Sets != nil {
			yw.Sets = *w.Sets
		}
		if w.Reps != nil {
			yw.Reps = *w.Reps
		}
		if w.Weight != nil {
			yw.Weight = *w.Weight
		}
		if w.Time != nil {
			yw.Time = *w.Time
		}
		if w.Calories != nil {
			yw.Calories = *w.Calories
		}
		yamlData.Workouts = append(yamlData.Workouts, yw)
	}

	for _, n := range data.Nutrition {
		yamlData.Nutrition = append(yamlData.Nutrition, yamlNutrition{
			ID:       n.ID,
			User:     n.UserID,
			Date:     n.Date.Format(time.DateOnly),
			Section:  string(n.Section),
			Meal:     n.MealName,
			Calories: n.Calories,
			Protein:  n.Protein,
			Carbs:    n.Carbs,
			Fat:      n.Fat,
			Quantity: n.Quantity,
		})
	}

	return yaml.Marshal(yamlData)
}

// ImportJSON imports data from JSON bytes.
func (d *DB) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return d.ImportData(&exportData)
}

type yamlWorkout struct {
	ID       int64   `yaml:"id"`
	User     string  `yaml:"user"`
	Date     string  `yaml:"date"`
	Exercise string  `yaml:"exercise"`
	IsCardio bool    `yaml:"is_cardio"`
	Sets     int     `yaml:"sets,omitempty"`
	Reps     string  `yaml:"reps,omitempty"`
	Weight   float64 `yaml:"weight,omitempty"`
	Time     int     `yaml:"time,omitempty"`
	Calories int     `yaml:"calories,omitempty"`
}

type yamlNutrition struct {
	ID       int64   `yaml:"id"`
	User     string  `yaml:"user"`
	Date     string  `yaml:"date"`
	Section  string  `yaml:"section"`
	Meal     string  `yaml:"meal"`
	Calories int     `yaml:"calories"`
	Protein  float64 `yaml:"protein"`
	Carbs    float64 `yaml:"carbs"`
	Fat      float64 `yaml:"fat"`
	Quantity int     `yaml:"quantity"`
}
