// Package storage persists saved comparisons.
package storage

import (
	"context"
	"errors"

	"github.com/hyperjump/lapwise/internal/models"
)

// ErrNotFound is returned when a saved comparison does not exist.
var ErrNotFound = errors.New("comparison not found")

// ComparisonStore defines saved comparison persistence operations.
type ComparisonStore interface {
	// Save assigns an ID and creation time when they are unset, then stores c.
	Save(ctx context.Context, c *models.SavedComparison) error
	Get(ctx context.Context, id string) (*models.SavedComparison, error)
	// List returns comparisons newest first.
	List(ctx context.Context, offset, limit int) ([]*models.SavedComparison, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)

	Close() error
}
