package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/computer/model"
)

// Repository is the persistence abstraction consumed by the computer write
// pipeline.
type Repository interface {
	// Insert writes a new computer; the stored version is 0.
	Insert(ctx context.Context, computer *model.Computer) error

	// Update persists a merged snapshot, guarded by the snapshot's version,
	// and returns the incremented version.
	Update(ctx context.Context, computer *model.Computer) (int, error)

	// FindByID returns the computer, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Computer, error)

	// FindByField returns all computers whose natural-key field has exactly
	// the given value. Supported fields: manufacturer, serial.
	FindByField(ctx context.Context, field, value string) ([]model.Computer, error)

	// Find returns computers matching the filter criteria.
	Find(ctx context.Context, filter model.ComputerFilter) ([]model.Computer, error)

	// Delete removes the computer and returns the number of deleted rows.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}
