// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines the workouts and nutrition_logs tables.
package storage

// initSchema creates or updates the database schema.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workouts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		exercise TEXT NOT NULL,
		is_cardio INTEGER NOT NULL DEFAULT 0,
		sets INTEGER,
		reps TEXT,
		weight REAL,
		time INTEGER,
		calories INTEGER,
		UNIQUE(user_id, date, exercise)
	);

	CREATE TABLE IF NOT EXISTS nutrition_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		date TEXT NOT NULL,
		meal_section TEXT NOT NULL,
		meal_name TEXT NOT NULL,
		calories INTEGER NOT NULL DEFAULT 0,
		protein REAL NOT NULL DEFAULT 0,
		carbs REAL NOT NULL DEFAULT 0,
		fat REAL NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1)
	);

	CREATE INDEX IF NOT EXISTS idx_workouts_user_date ON workouts(user_id, date);
	CREATE INDEX IF NOT EXISTS idx_workouts_user_exercise ON workouts(user_id, exercise, date);
	CREATE INDEX IF NOT EXISTS idx_nutrition_user_date ON nutrition_logs(user_id, date);
	`

	_, err := d.db.Exec(schema)
	return err
}
