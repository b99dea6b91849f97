// ABOUTME: Repository interface for the workout and nutrition log stores.
// ABOUTME: Defines the contract consumed by the CLI and MCP presentation layers.
package storage

import (
	"time"

	"github.com/philturner/fitlog/internal/dateutil"
	"github.com/philturner/fitlog/internal/models"
)

// Repository defines the storage interface for logged data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Workout log store
	LogWorkout(e *models.WorkoutEntry) (int64, error)
	OverwriteWorkout(id int64, p models.Payload) (int64, error)
	ListWorkouts(userID string, start, end time.Time) ([]*models.WorkoutEntry, error)
	LastWorkout(userID, exercise string) (*models.WorkoutEntry, error)
	ExerciseHistory(userID, exercise string) ([]*models.WorkoutEntry, error)
	AllWorkouts(userID string) ([]models.WorkoutStamp, error)
	GetWorkout(id int64) (*models.WorkoutEntry, error)
	DeleteWorkout(id int64) error

	// Nutrition log store
	LogNutrition(e *models.NutritionEntry) (int64, error)
	ListNutrition(userID string, start, end time.Time) ([]*models.NutritionEntry, error)
	DeleteNutrition(userID string, id int64) error
	DailyTotals(userID string, date time.Time) (models.MacroTotals, error)
	NutritionSeries(userID string, ref time.Time, mode dateutil.ViewMode) ([]models.DayTotals, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
