// Package storage is the catalog data access layer: CRUD for categories,
// products, platform links and users, plus assembly of the
// ProductWithDetails read view and the seed routine.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/amd4k/ZHV/pkg/logger"
	"github.com/amd4k/ZHV/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when the addressed row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when a unique column (code, sku, username) is taken.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrInvalidReference is returned when a categoryId or productId does not resolve.
	ErrInvalidReference = errors.New("invalid reference")
)

// Store wraps an injected database handle.
type Store struct {
	db      *gorm.DB
	metrics *metrics.Metrics
}

type Option func(*Store)

// WithMetrics records per-operation durations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

func New(db *gorm.DB, opts ...Option) *Store {
	s := &Store{db: db}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store) track(operation string) func() {
	return s.metrics.TrackDBOperation(operation)
}

func log(ctx context.Context) *zap.Logger {
	return logger.FromContext(ctx)
}

// translate maps driver and gorm errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrInvalidReference, err)
	}
	return err
}

// exists reports whether any row of model matches the condition.
func exists(tx *gorm.DB, model interface{}, query string, args ...interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
