package admin

import "context"

// Service defines the authentication business logic
type Service interface {
	// Login verifies credentials and issues a signed 30-day session token.
	// Business rules:
	// - the stored hash is only ever compared with bcrypt (constant-time),
	//   never plain equality
	// - unknown email and wrong password both return ErrInvalidCredentials
	// - repeated failures from the same email+IP within the window return
	//   ErrTooManyAttempts before the password is even checked
	Login(ctx context.Context, req LoginRequest, clientIP string) (*LoginResponse, error)
}
