package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio,omitempty"`
	Dob  *Date   `json:"dob,omitempty"`
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}

// UpdateAuthorRequest - PUT /api/v1/authors/:id
// Partial update with truthy-overwrite semantics: a field that is absent OR
// present-but-empty keeps its stored value. A field can therefore never be
// cleared through this endpoint; this mirrors the reference behavior and is
// intentional.
type UpdateAuthorRequest struct {
	Name *string `json:"name,omitempty"`
	Bio  *string `json:"bio,omitempty"`
	Dob  *Date   `json:"dob,omitempty"`
}

// ApplyToEntity overwrites only the fields that carry a non-empty value
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Name != nil && *r.Name != "" {
		a.Name = *r.Name
	}
	if r.Bio != nil && *r.Bio != "" {
		a.Bio = r.Bio
	}
	if r.Dob != nil && !r.Dob.IsZero() {
		a.Dob = r.Dob
	}
}

// AuthorFilter - query parameters for listing
type AuthorFilter struct {
	Search string // case-insensitive substring match on name
	Page   int    // 1-indexed
	Limit  int
}

// Offset converts the 1-indexed page to a row offset
func (f AuthorFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// ListResponse - GET /api/v1/authors wire shape
type ListResponse struct {
	Authors      []Author `json:"authors"`
	CurrentPage  int      `json:"currentPage"`
	TotalPages   int      `json:"totalPages"`
	TotalAuthors int64    `json:"totalAuthors"`
}
