package book

import (
	"time"

	"github.com/google/uuid"

	"book-catalog-backend/internal/domains/author"
)

// Book is the domain entity backing the books table.
// Author holds the referenced author's display fields joined in at read
// time; it is never stored denormalized.
type Book struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Title         string    `json:"title" db:"title"` // Required
	Description   *string   `json:"description,omitempty" db:"description"`
	Image         *string   `json:"image,omitempty" db:"image"` // Stored cover URL
	PublishedYear *int      `json:"publishedYear,omitempty" db:"published_year"`
	AuthorID      uuid.UUID `json:"authorId" db:"author_id"` // Required FK

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	Author *AuthorRef `json:"author,omitempty"`
}

// AuthorRef carries the joined author fields. Listings populate name only;
// single-item fetches also carry bio and dob.
type AuthorRef struct {
	ID   uuid.UUID    `json:"id"`
	Name string       `json:"name"`
	Bio  *string      `json:"bio,omitempty"`
	Dob  *author.Date `json:"dob,omitempty"`
}
