package repository

import (
	"context"

	"github.com/google/uuid"

	"catalog-backend/internal/domains/book/model"
)

// Repository is the persistence abstraction consumed by the write pipeline.
// Insert and DeleteCascade must treat the book and its keywords as one atomic
// unit of work.
type Repository interface {
	// Insert writes a new book together with its keywords; the stored
	// version is 0.
	Insert(ctx context.Context, book *model.Book) error

	// Update persists a merged snapshot, guarded by the snapshot's version,
	// and returns the incremented version.
	Update(ctx context.Context, book *model.Book) (int, error)

	// FindByID returns the book with its keywords, or nil when absent.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Book, error)

	// FindByField returns all books whose natural-key field has exactly the
	// given value. Supported fields: title, isbn.
	FindByField(ctx context.Context, field, value string) ([]model.Book, error)

	// Find returns books matching the filter criteria.
	Find(ctx context.Context, filter model.BookFilter) ([]model.Book, error)

	// DeleteCascade removes the book and all its keywords in one
	// transaction and returns the number of deleted book rows.
	DeleteCascade(ctx context.Context, id uuid.UUID) (int64, error)
}
