// Package repositories gives every entity the same persistence contract on
// top of orm.Store, plus the entity's eager relation and delete cascade.
package repositories

import (
	"context"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/orderdesk/pkg/orm"
)

// Repository is the persistence contract shared by all entities.
//
// withRelations loads the entity's one eager relation (see Relation on each
// constructor). Lookup failures are orm.ErrNotFound; rejected writes wrap
// orm.ErrConstraint.
type Repository[T any] interface {
	FindAll(ctx context.Context, withRelations bool) ([]T, error)
	FindByID(ctx context.Context, id uint, withRelations bool) (*T, error)
	// Save inserts when the ID is zero and updates otherwise. Associations
	// are never written.
	Save(ctx context.Context, entity *T) error
	ExistsByID(ctx context.Context, id uint) (bool, error)
	// DeleteByID removes the row and everything it owns in one transaction.
	DeleteByID(ctx context.Context, id uint) error
}

type storeRepository[T any] struct {
	store    *orm.Store[T]
	relation string
}

func newRepository[T any](db *gorm.DB, relation string, cascade orm.CascadeFunc, opts ...orm.Option) *storeRepository[T] {
	if cascade != nil {
		opts = append(append([]orm.Option(nil), opts...), orm.WithCascade(cascade))
	}
	return &storeRepository[T]{store: orm.NewStore[T](db, opts...), relation: relation}
}

func (r *storeRepository[T]) preloads(withRelations bool) []string {
	if !withRelations || r.relation == "" {
		return nil
	}
	return []string{r.relation}
}

func (r *storeRepository[T]) FindAll(ctx context.Context, withRelations bool) ([]T, error) {
	return r.store.FindAll(ctx, r.preloads(withRelations)...)
}

func (r *storeRepository[T]) FindByID(ctx context.Context, id uint, withRelations bool) (*T, error) {
	return r.store.FindByID(ctx, id, r.preloads(withRelations)...)
}

func (r *storeRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.store.Save(ctx, entity)
}

func (r *storeRepository[T]) ExistsByID(ctx context.Context, id uint) (bool, error) {
	return r.store.Exists(ctx, id)
}

func (r *storeRepository[T]) DeleteByID(ctx context.Context, id uint) error {
	return r.store.Delete(ctx, id)
}
