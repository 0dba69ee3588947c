package admin

import "context"

// Repository defines data access for administrator credentials
type Repository interface {
	// FindByEmail looks up the credential record for an email.
	// Returns ErrAdminNotFound when no record matches.
	FindByEmail(ctx context.Context, email string) (*Admin, error)

	// Create inserts a credential record. Used by the seed tool only;
	// there is no registration endpoint.
	Create(ctx context.Context, a *Admin) error
}
