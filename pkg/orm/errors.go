package orm

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the requested ID.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint is returned when the store rejects a write because of a
	// uniqueness, foreign-key or not-null constraint.
	ErrConstraint = errors.New("constraint violation")
)

// constraintMarkers match driver messages for the cases gorm does not
// translate (not-null, and drivers without an error translator).
var constraintMarkers = []string{
	"constraint",
	"duplicate entry",
	"duplicate key",
}

// Translate maps gorm and driver errors onto ErrNotFound and ErrConstraint.
// Any other error is returned unchanged.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConstraint):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range constraintMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %v", ErrConstraint, err)
		}
	}
	return err
}
