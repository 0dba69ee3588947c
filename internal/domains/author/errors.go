package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("Author not found")

	// ErrAuthorHasBooks guards referential integrity: an author referenced
	// by at least one book cannot be deleted.
	ErrAuthorHasBooks = errors.New("Cannot delete author. There are books associated with this author.")
)

// ToHTTPStatus converts a domain error to an HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrAuthorHasBooks):
		return 400
	default:
		return 500
	}
}
