// ABOUTME: Error taxonomy for the log stores.
// ABOUTME: ConflictError carries the existing row so callers can offer an overwrite.
package storage

import (
	"errors"
	"fmt"

	"github.com/philturner/fitlog/internal/models"
)

// ErrNotFound is returned by reads that match zero rows where the caller
// asked for a specific record.
var ErrNotFound = errors.New("not found")

// ErrConflict is the sentinel behind ConflictError, for errors.Is checks.
var ErrConflict = errors.New("already logged")

// ConflictError reports a workout write that violates the
// (user, date, exercise) uniqueness constraint. Existing is the row
// already in place, so the caller can offer an explicit overwrite.
type ConflictError struct {
	Existing *models.WorkoutEntry
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("workout already logged for %s on %s",
		e.Existing.Exercise, e.Existing.Date.Format("2006-01-02"))
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// AsConflict unwraps err into a ConflictError if it is one.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
