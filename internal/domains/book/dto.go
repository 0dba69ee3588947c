package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateBookRequest - POST /api/v1/books (multipart form fields)
type CreateBookRequest struct {
	Title         string  `form:"title"`
	Description   *string `form:"description"`
	PublishedYear *int    `form:"publishedYear"`
	AuthorID      string  `form:"authorId"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 500),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("authorId is required"),
			is.UUID.Error("authorId must be a valid UUID"),
		),
		validation.Field(&r.PublishedYear,
			validation.Min(1).Error("publishedYear must be positive"),
			validation.Max(time.Now().Year()+1),
		),
	)
}

// UpdateBookRequest - PUT /api/v1/books/:id (multipart form fields)
// Same truthy-overwrite semantics as the author update: absent or empty
// fields keep their stored values. When no new file is uploaded a
// non-empty ExistingImage becomes the cover URL, so clients echo back the
// stored value to keep it.
type UpdateBookRequest struct {
	Title         *string `form:"title"`
	Description   *string `form:"description"`
	PublishedYear *int    `form:"publishedYear"`
	AuthorID      *string `form:"authorId"`
	ExistingImage string  `form:"existingImage"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorID,
			validation.NilOrNotEmpty.Error("authorId cannot be empty"),
			is.UUID.Error("authorId must be a valid UUID"),
		),
		validation.Field(&r.PublishedYear,
			validation.Min(1).Error("publishedYear must be positive"),
			validation.Max(time.Now().Year()+1),
		),
	)
}

// CoverUpload is the raw uploaded cover image handed from the handler to
// the service pipeline.
type CoverUpload struct {
	Data        []byte
	ContentType string
}

// BookFilter - query parameters for listing
type BookFilter struct {
	Search string // case-insensitive substring match on title
	Page   int    // 1-indexed
	Limit  int
}

// Offset converts the 1-indexed page to a row offset
func (f BookFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ListResponse - GET /api/v1/books wire shape
type ListResponse struct {
	Books       []Book `json:"books"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalBooks  int64  `json:"totalBooks"`
}
