package admin

import "errors"

var (
	ErrAdminNotFound = errors.New("admin not found")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password, so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	ErrTooManyAttempts = errors.New("Too many login attempts, please try again later")
)
