package service

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/book/model"
)

// ServiceInterface is the transport-independent contract of the book domain.
// Write operations report business failures as fault.* error values; anything
// else is an infrastructure fault.
type ServiceInterface interface {
	// Create validates the candidate, enforces natural-key uniqueness and
	// persists the book with its keywords. Returns the new id.
	Create(ctx context.Context, book *model.Book) (uuid.UUID, error)

	// Update merges the payload onto the stored snapshot under optimistic
	// concurrency control. Returns the new version.
	Update(ctx context.Context, id string, book *model.Book, version string) (int, error)

	// Delete removes the book and its keywords. Returns true only when a
	// book row was actually removed; an unknown or invalid id is a no-op.
	Delete(ctx context.Context, id string) (bool, error)

	FindByID(ctx context.Context, id string) (*model.Book, error)
	Find(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
}
