// ABOUTME: Workout log store CRUD operations for SQLite storage.
// ABOUTME: Enforces the one-entry-per-(user, date, exercise) uniqueness policy.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/philturner/fitlog/internal/models"
)

const workoutColumns = "id, user_id, date, exercise, is_cardio, sets, reps, weight, time, calories"

// LogWorkout inserts a new workout entry and returns its id. If an entry
// already exists for the (user, date, exercise) triple, it returns a
// ConflictError carrying the existing row; the caller decides whether to
// overwrite.
func (d *DB) LogWorkout(e *models.WorkoutEntry) (int64, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}

	existing, err := d.findWorkout(e.UserID, e.Date, e.Exercise)
	if err != nil {
		return 0, fmt.Errorf("log workout: %w", err)
	}
	if existing != nil {
		return 0, &ConflictError{Existing: existing}
	}

	res, err := d.db.Exec(`
		INSERT INTO workouts (user_id, date, exercise, is_cardio, sets, reps, weight, time, calories)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		e.UserID,
		e.Date.Format(time.DateOnly),
		e.Exercise,
		e.IsCardio,
		e.Sets, e.Reps, e.Weight, e.Time, e.Calories,
	)
	if err != nil {
		return 0, fmt.Errorf("log workout: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("log workout: %w", err)
	}
	e.ID = id
	return id, nil
}

// OverwriteWorkout replaces the payload fields of an existing row by id,
// leaving user, date, and exercise untouched. It returns the affected row
// count; a missing id updates zero rows and is not an error.
func (d *DB) OverwriteWorkout(id int64, p models.Payload) (int64, error) {
	res, err := d.db.Exec(`
		UPDATE workouts
		SET sets = ?, reps = ?, weight = ?, time = ?, calories = ?
		WHERE id = ?
	`, p.Sets, p.Reps, p.Weight, p.Time, p.Calories, id)
	if err != nil {
		return 0, fmt.Errorf("overwrite workout: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("overwrite workout: %w", err)
	}
	return affected, nil
}

// ListWorkouts retrieves all entries for a user with date in
// [start, end], ordered by date ascending then exercise ascending.
func (d *DB) ListWorkouts(userID string, start, end time.Time) ([]*models.WorkoutEntry, error) {
	rows, err := d.db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC, exercise ASC
	`, userID, start.Format(time.DateOnly), end.Format(time.DateOnly))
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// LastWorkout returns the most recent entry for a user and exercise, or
// ErrNotFound when the exercise has never been logged. Used to pre-fill
// the log form with the previous session's values.
func (d *DB) LastWorkout(userID, exercise string) (*models.WorkoutEntry, error) {
	row := d.db.QueryRow(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = ? AND exercise = ?
		ORDER BY date DESC
		LIMIT 1
	`, userID, exercise)

	e, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("last workout: %w", err)
	}
	return e, nil
}

// ExerciseHistory returns the full time series for one exercise,
// ascending by date. Feeds the progress chart.
func (d *DB) ExerciseHistory(userID, exercise string) ([]*models.WorkoutEntry, error) {
	rows, err := d.db.Query(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = ? AND exercise = ?
		ORDER BY date ASC
	`, userID, exercise)
	if err != nil {
		return nil, fmt.Errorf("exercise history: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// AllWorkouts returns (date, exercise) stamps for every entry the user
// ever logged, ascending by date. Feeds the heatmap and streak views.
func (d *DB) AllWorkouts(userID string) ([]models.WorkoutStamp, error) {
	rows, err := d.db.Query(`
		SELECT date, exercise
		FROM workouts
		WHERE user_id = ?
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("all workouts: %w", err)
	}
	defer rows.Close()

	var stamps []models.WorkoutStamp
	for rows.Next() {
		var dateStr string
		var s models.WorkoutStamp
		if err := rows.Scan(&dateStr, &s.Exercise); err != nil {
			return nil, fmt.Errorf("scan workout stamp: %w", err)
		}
		s.Date, err = time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parse workout date: %w", err)
		}
		stamps = append(stamps, s)
	}
	return stamps, rows.Err()
}

// GetWorkout retrieves a single entry by id, or ErrNotFound.
func (d *DB) GetWorkout(id int64) (*models.WorkoutEntry, error) {
	row := d.db.QueryRow(`SELECT `+workoutColumns+` FROM workouts WHERE id = ?`, id)
	e, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get workout: %w", err)
	}
	return e, nil
}

// DeleteWorkout removes the row unconditionally. Deleting a nonexistent
// id is not an error.
func (d *DB) DeleteWorkout(id int64) error {
	if _, err := d.db.Exec("DELETE FROM workouts WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	return nil
}

// findWorkout looks up the row for a (user, date, exercise) triple.
// Returns nil without error when no row exists.
func (d *DB) findWorkout(userID string, date time.Time, exercise string) (*models.WorkoutEntry, error) {
	row := d.db.QueryRow(`
		SELECT `+workoutColumns+`
		FROM workouts
		WHERE user_id = ? AND date = ? AND exercise = ?
	`, userID, date.Format(time.DateOnly), exercise)

	e, err := scanWorkout(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanWorkout scans a single row into a WorkoutEntry.
func scanWorkout(row rowScanner) (*models.WorkoutEntry, error) {
	var e models.WorkoutEntry
	var dateStr string
	var sets, workTime, calories sql.NullInt64
	var reps sql.NullString
	var weight sql.NullFloat64

	err := row.Scan(&e.ID, &e.UserID, &dateStr, &e.Exercise, &e.IsCardio,
		&sets, &reps, &weight, &workTime, &calories)
	if err != nil {
		return nil, err
	}

	e.Date, err = time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, fmt.Errorf("parse workout date: %w", err)
	}
	if sets.Valid {
		v := int(sets.Int64)
		e.Sets = &v
	}
	if reps.Valid {
		v := reps.String
		e.Reps = &v
	}
	if weight.Valid {
		v := weight.Float64
		e.Weight = &v
	}
	if workTime.Valid {
		v := int(workTime.Int64)
		e.Time = &v
	}
	if calories.Valid {
		v := int(calories.Int64)
		e.Calories = &v
	}

	return &e, nil
}

// scanWorkouts scans multiple rows into a slice of WorkoutEntries.
func scanWorkouts(rows *sql.Rows) ([]*models.WorkoutEntry, error) {
	var entries []*models.WorkoutEntry
	for rows.Next() {
		e, err := scanWorkout(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
