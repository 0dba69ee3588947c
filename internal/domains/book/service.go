package book

import (
	"context"

	"github.com/google/uuid"
)

// Service defines book business logic.
// Cover uploads are optional on both create and update: a nil cover on
// update leaves the stored image untouched.
type Service interface {
	Create(ctx context.Context, req CreateBookRequest, cover *CoverUpload) (*Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Book, error)
	GetAll(ctx context.Context, filter BookFilter) ([]Book, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateBookRequest, cover *CoverUpload) (*Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
