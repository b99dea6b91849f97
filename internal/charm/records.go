// ABOUTME: Record mirroring between the local SQLite store and Charm KV.
// ABOUTME: Workouts key on their natural (user, date, exercise) triple; nutrition rows on a uuid.
package charm

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/philturner/fitlog/internal/models"
)

const (
	WorkoutPrefix   = "workout:"
	NutritionPrefix = "nutrition:"
)

// WorkoutKey builds the KV key for a workout entry. The natural triple
// is stable across devices, so a re-logged workout overwrites its mirror
// instead of duplicating it.
func WorkoutKey(e *models.WorkoutEntry) string {
	return fmt.Sprintf("%s%s:%s:%s", WorkoutPrefix, e.UserID, e.Date.Format(time.DateOnly), e.Exercise)
}

// NutritionKey builds the KV key for a nutrition row. Local row ids are
// per-device, so each mirror gets a fresh uuid.
func NutritionKey(e *models.NutritionEntry) string {
	return fmt.Sprintf("%s%s:%s:%s", NutritionPrefix, e.UserID, e.Date.Format(time.DateOnly), uuid.New().String())
}

// MirrorWorkout writes or overwrites a workout entry in the cloud mirror.
func (c *Client) MirrorWorkout(e *models.WorkoutEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal workout: %w", err)
	}
	return c.set(WorkoutKey(e), data)
}

// RemoveWorkout deletes a workout entry from the cloud mirror.
func (c *Client) RemoveWorkout(e *models.WorkoutEntry) error {
	return c.delete(WorkoutKey(e))
}

// MirrorNutrition writes a nutrition row to the cloud mirror.
func (c *Client) MirrorNutrition(e *models.NutritionEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal nutrition log: %w", err)
	}
	return c.set(NutritionKey(e), data)
}

// ListWorkouts returns every mirrored workout entry.
func (c *Client) ListWorkouts() ([]*models.WorkoutEntry, error) {
	values, err := c.listByPrefix(WorkoutPrefix)
	if err != nil {
		return nil, fmt.Errorf("list mirrored workouts: %w", err)
	}
	entries := make([]*models.WorkoutEntry, 0, len(values))
	for _, v := range values {
		var e models.WorkoutEntry
		if err := json.Unmarshal(v, &e); err != nil {
			return nil, fmt.Errorf("unmarshal mirrored workout: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, nil
}

// ListNutrition returns every mirrored nutrition row.
func (c *Client) ListNutrition() ([]*models.NutritionEntry, error) {
	values, err := c.listByPrefix(NutritionPrefix)
	if err != nil {
		return nil, fmt.Errorf("list mirrored nutrition logs: %w", err)
	}
	entries := make([]*models.NutritionEntry, 0, len(values))
	for _, v := range values {
		var e models.NutritionEntry
		if err := json.Unmarshal(v, &e); err != nil {
			return nil, fmt.Errorf("unmarshal mirrored nutrition log: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, nil
}
