package book

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for books.
// Read methods hydrate the embedded Author reference via a join: list
// queries carry the author name, detail queries add bio and dob.
type Repository interface {
	// Create persists a new book
	Create(ctx context.Context, b *Book) error

	// GetByID retrieves a book with its full author reference
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)

	// GetAll retrieves books matching the filter plus the total count
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)

	// Update persists the full state of an existing book
	Update(ctx context.Context, b *Book) error

	// Delete removes a book by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// CountByAuthor returns how many books reference the given author
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (int64, error)
}
