package book

import "errors"

var (
	ErrBookNotFound = errors.New("Book not found")

	// ErrAuthorNotResolvable rejects a write whose author_id does not
	// reference an existing author. Checked synchronously before the
	// write, on create and on any update that changes the reference.
	ErrAuthorNotResolvable = errors.New("Author not found for the given authorId")

	ErrInvalidImage = errors.New("Invalid image file")
)

// ToHTTPStatus converts a domain error to an HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrAuthorNotResolvable), errors.Is(err, ErrInvalidImage):
		return 400
	default:
		return 500
	}
}
