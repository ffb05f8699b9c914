package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shashiranjanraj/orderdesk/app/repositories"
	"github.com/shashiranjanraj/orderdesk/pkg/orm"
)

var (
	// ErrNotFound means the addressed entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRelatedNotFound means a referenced entity does not exist.
	ErrRelatedNotFound = errors.New("related entity not found")
	// ErrConstraint means the store rejected the write (duplicate name or
	// email, or a row still referenced elsewhere).
	ErrConstraint = orm.ErrConstraint
)

// LookupError names the entity and ID that failed to resolve. Err is
// ErrNotFound or ErrRelatedNotFound.
type LookupError struct {
	Entity string
	ID     uint
	Err    error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

func (e *LookupError) Unwrap() error { return e.Err }

// find loads id from repo, mapping a missing row to a LookupError with kind.
func find[T any](ctx context.Context, repo repositories.Repository[T], entity string, id uint, withRelations bool, kind error) (*T, error) {
	v, err := repo.FindByID(ctx, id, withRelations)
	if errors.Is(err, orm.ErrNotFound) {
		return nil, &LookupError{Entity: entity, ID: id, Err: kind}
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}

// remove checks existence before deleting. An absent row reports false and
// the store is left untouched.
func remove[T any](ctx context.Context, repo repositories.Repository[T], id uint) (bool, error) {
	ok, err := repo.ExistsByID(ctx, id)
	if err != nil || !ok {
		return false, err
	}

	if err := repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, orm.ErrNotFound) {
			// deleted concurrently between the check and the delete
			return false, nil
		}
		return false, err
	}
	return true, nil
}
