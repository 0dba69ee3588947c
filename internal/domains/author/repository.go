package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for Author data access operations
type Repository interface {
	// Create inserts a new author
	// Returns: created author with ID and timestamps
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID retrieves author by UUID
	// Returns: ErrAuthorNotFound if not exists
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves a page of authors, newest first.
	// Search filters by case-insensitive substring on name.
	// Returns: authors slice + total match count for pagination
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update persists the full entity state
	// Returns: ErrAuthorNotFound if not exists
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author only when no book references it.
	// The check and the delete are one atomic statement, so a book created
	// concurrently can never be left dangling.
	// Returns: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID) error

	// ExistsByID checks existence without fetching the row
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
