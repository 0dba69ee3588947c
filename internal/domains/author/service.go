package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines business logic operations for the Author domain
type Service interface {
	// Create creates a new author
	// Business rules:
	// - Name is required (ValidationError otherwise)
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)

	// GetByID retrieves author by UUID
	// Errors: ErrAuthorNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll retrieves a paginated list with filtering
	// Business rules:
	// - Default limit 10, max 100; page is 1-indexed
	// - Search by name is case-insensitive partial match
	// - Ordered newest-first by creation time
	GetAll(ctx context.Context, filter AuthorFilter) ([]Author, int64, error)

	// Update applies a truthy-overwrite partial update
	// Errors: ErrAuthorNotFound
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete removes the author unless books reference it
	// Errors: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID) error
}
