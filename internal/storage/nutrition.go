// ABOUTME: Nutrition log store CRUD and aggregation queries.
// ABOUTME: Unlike workouts, multiple entries per (user, date, section) are allowed.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/philturner/fitlog/internal/dateutil"
	"github.com/philturner/fitlog/internal/models"
)

const nutritionColumns = "id, user_id, date, meal_section, meal_name, calories, protein, carbs, fat, quantity"

// LogNutrition inserts a new nutrition log row and returns its id.
// Re-logging the same meal creates a new row; rows are never updated
// in place.
func (d *DB) LogNutrition(e *models.NutritionEntry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	res, err := d.db.Exec(`
		INSERT INTO nutrition_logs (user_id, date, meal_section, meal_name, calories, protein, carbs, fat, quantity)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.UserID,
		e.Date.Format(time.DateOnly),
		string(e.Section),
		e.MealName,
		e.Calories, e.Protein, e.Carbs, e.Fat, e.Quantity,
	)
	if err != nil {
		return 0, fmt.Errorf("log nutrition: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("log nutrition: %w", err)
	}
	e.ID = id
	return id, nil
}

// ListNutrition retrieves all entries for a user with date in
// [start, end], ordered by date ascending then meal section ascending.
func (d *DB) ListNutrition(userID string, start, end time.Time) ([]*models.NutritionEntry, error) {
	rows, err := d.db.Query(`
		SELECT `+nutritionColumns+`
		FROM nutrition_logs
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, meal_section ASC
	`, userID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("list nutrition: %w", err)
	}
	defer rows.Close()

	var entries []*models.NutritionEntry
	for rows.Next() {
		e, err := scanNutrition(rows)
		if err != nil {
			return nil, fmt.Errorf("scan nutrition log: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteNutrition removes a log row only if it belongs to the user.
// Deleting a nonexistent or foreign id is a no-op.
func (d *DB) DeleteNutrition(userID string, id int64) error {
	if _, err := d.db.Exec("DELETE FROM nutrition_logs WHERE id = ? AND user_id = ?", id, userID); err != nil {
		return fmt.Errorf("delete nutrition log: %w", err)
	}
	return nil
}

// DailyTotals returns SUM(macro x quantity) for all four macros on one
// date. Every sum defaults to 0 when no rows match, never null.
func (d *DB) DailyTotals(userID string, date time.Time) (models.MacroTotals, error) {
	var t models.MacroTotals
	err := d.db.QueryRow(`
		SELECT
			COALESCE(SUM(calories * quantity), 0),
			COALESCE(SUM(protein * quantity), 0),
			COALESCE(SUM(carbs * quantity), 0),
			COALESCE(SUM(fat * quantity), 0)
		FROM nutrition_logs
		WHERE user_id = ? AND date = ?
	`, userID, date.Format(time.DateOnly)).
		Scan(&t.Calories, &t.Protein, &t.Carbs, &t.Fat)
	if err != nil {
		return models.MacroTotals{}, fmt.Errorf("daily totals: %w", err)
	}
	return t, nil
}

// NutritionSeries returns one aggregated row per date with logs in the
// week or month containing ref, ascending by date. Dates with no logs
// are absent; callers must handle the sparse series.
func (d *DB) NutritionSeries(userID string, ref time.Time, mode dateutil.ViewMode) ([]models.DayTotals, error) {
	start, end := dateutil.PeriodOf(ref, mode)

	rows, err := d.db.Query(`
		SELECT
			date,
			COALESCE(SUM(calories * quantity), 0),
			COALESCE(SUM(protein * quantity), 0),
			COALESCE(SUM(carbs * quantity), 0),
			COALESCE(SUM(fat * quantity), 0)
		FROM nutrition_logs
		WHERE user_id = ? AND date >= ? AND date <= ?
		GROUP BY date
		ORDER BY date ASC
	`, userID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("nutrition series: %w", err)
	}
	defer rows.Close()

	var series []models.DayTotals
	for rows.Next() {
		var dt models.DayTotals
		var dateStr string
		if err := rows.Scan(&dateStr, &dt.Calories, &dt.Protein, &dt.Carbs, &dt.Fat); err != nil {
			return nil, fmt.Errorf("scan nutrition series: %w", err)
		}
		dt.Date, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse series date: %w", err)
		}
		series = append(series, dt)
	}
	return series, rows.Err()
}

// scanNutrition scans a single row into a NutritionEntry.
func scanNutrition(rows *sql.Rows) (*models.NutritionEntry, error) {
	var e models.NutritionEntry
	var dateStr, section string

	err := rows.Scan(&e.ID, &e.UserID, &dateStr, &section, &e.MealName,
		&e.Calories, &e.Protein, &e.Carbs, &e.Fat, &e.Quantity)
	if err != nil {
		return nil, err
	}

	e.Section = models.MealSection(section)
	e.Date, err = time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parse nutrition date: %w", err)
	}
	return &e, nil
}
