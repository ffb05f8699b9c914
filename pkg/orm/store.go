// Package orm provides a generic gorm-backed store with per-query latency
// metrics, an optional read cache and error classification.
//
//	type Category struct { ID uint; Name string; Products []Product }
//
//	store := orm.NewStore[Category](db,
//	    orm.WithCache(c, time.Minute),
//	    orm.WithCascade(func(tx *gorm.DB, id uint) error {
//	        return tx.Where("category_id = ?", id).Delete(&Product{}).Error
//	    }),
//	)
//	all, err := store.FindAll(ctx, "Products")
package orm

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/shashiranjanraj/orderdesk/pkg/cache"
	"github.com/shashiranjanraj/orderdesk/pkg/logger"
	"github.com/shashiranjanraj/orderdesk/pkg/metrics"
)

// CascadeFunc removes the dependents of the row with the given ID. It runs
// inside the delete's transaction, before the row itself is deleted.
type CascadeFunc func(tx *gorm.DB, id uint) error

// Option configures a Store.
type Option func(*options)

type options struct {
	cache   cache.Cache
	ttl     time.Duration
	cascade CascadeFunc
}

// WithCache enables read-through caching of FindAll and FindByID.
// A nil cache leaves caching off.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *options) {
		o.cache = c
		o.ttl = ttl
	}
}

// WithCascade registers the dependent-row cleanup run by Delete.
func WithCascade(fn CascadeFunc) Option {
	return func(o *options) { o.cascade = fn }
}

// Store persists one model type T. Saves never write associations.
type Store[T any] struct {
	db    *gorm.DB
	table string
	opts  options
}

// NewStore builds a Store for T. It panics if T is not a gorm model, which
// is a programming error caught at startup.
func NewStore[T any](db *gorm.DB, opts ...Option) *Store[T] {
	s := &Store[T]{db: db, table: tableName[T](db)}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

func tableName[T any](db *gorm.DB) string {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(new(T)); err != nil {
		panic(fmt.Sprintf("orm: parse %T: %v", *new(T), err))
	}
	return stmt.Schema.Table
}

// Table returns the table T is stored in.
func (s *Store[T]) Table() string { return s.table }

// FindAll returns every row, eager-loading the named relations.
func (s *Store[T]) FindAll(ctx context.Context, preloads ...string) ([]T, error) {
	key, cached := s.cacheKey(ctx, "all", preloads)
	if cached {
		var hit []T
		if s.opts.cache.Get(ctx, key, &hit) {
			return hit, nil
		}
	}

	defer metrics.ObserveDBQuery(s.table, "find_all", time.Now())

	var rows []T
	if err := withPreloads(s.db.WithContext(ctx), preloads).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("orm: %s find all: %w", s.table, Translate(err))
	}

	if cached {
		s.store(ctx, key, rows)
	}
	return rows, nil
}

// FindByID returns the row with the given ID or ErrNotFound.
func (s *Store[T]) FindByID(ctx context.Context, id uint, preloads ...string) (*T, error) {
	key, cached := s.cacheKey(ctx, "id:"+strconv.FormatUint(uint64(id), 10), preloads)
	if cached {
		var hit T
		if s.opts.cache.Get(ctx, key, &hit) {
			return &hit, nil
		}
	}

	defer metrics.ObserveDBQuery(s.table, "find_by_id", time.Now())

	var row T
	if err := withPreloads(s.db.WithContext(ctx), preloads).First(&row, id).Error; err != nil {
		return nil, wrapLookup(s.table, "find by id", err)
	}

	if cached {
		s.store(ctx, key, row)
	}
	return &row, nil
}

// Exists reports whether a row with the given ID is stored.
func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	defer metrics.ObserveDBQuery(s.table, "exists", time.Now())

	var count int64
	if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("orm: %s exists: %w", s.table, Translate(err))
	}
	return count > 0, nil
}

// Save inserts a row with a zero primary key and updates every column
// otherwise. Associations are never written.
func (s *Store[T]) Save(ctx context.Context, row *T) error {
	defer metrics.ObserveDBQuery(s.table, "save", time.Now())

	if err := s.db.WithContext(ctx).Omit(clause.Associations).Save(row).Error; err != nil {
		return fmt.Errorf("orm: %s save: %w", s.table, Translate(err))
	}
	s.invalidate(ctx)
	return nil
}

// Delete removes the row and, first, its dependents in one transaction.
// Returns ErrNotFound when no row was deleted.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	defer metrics.ObserveDBQuery(s.table, "delete", time.Now())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if s.opts.cascade != nil {
			if err := s.opts.cascade(tx, id); err != nil {
				return err
			}
		}

		res := tx.Delete(new(T), id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return wrapLookup(s.table, "delete", err)
	}

	s.invalidate(ctx)
	return nil
}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db
}

func wrapLookup(table, op string, err error) error {
	err = Translate(err)
	if err == ErrNotFound {
		return err
	}
	return fmt.Errorf("orm: %s %s: %w", table, op, err)
}

func (s *Store[T]) cacheKey(ctx context.Context, op string, preloads []string) (string, bool) {
	if s.opts.cache == nil {
		return "", false
	}
	gen, err := s.opts.cache.Generation(ctx)
	if err != nil {
		logger.WithCtx(ctx).Warn("cache generation unavailable", "table", s.table, "error", err)
		return "", false
	}
	return cache.Key(gen, s.table, op, strings.Join(preloads, ",")), true
}

func (s *Store[T]) store(ctx context.Context, key string, v interface{}) {
	if err := s.opts.cache.Set(ctx, key, v, s.opts.ttl); err != nil {
		logger.WithCtx(ctx).Warn("cache set failed", "key", key, "error", err)
	}
}

func (s *Store[T]) invalidate(ctx context.Context) {
	if s.opts.cache == nil {
		return
	}
	if err := s.opts.cache.Bump(ctx); err != nil {
		logger.WithCtx(ctx).Warn("cache invalidation failed", "table", s.table, "error", err)
	}
}
