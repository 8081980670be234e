// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrInvalidCredentials is returned when login fails for any reason.
	// Lookup misses, password mismatches and internal failures all collapse
	// into this error so callers cannot tell which step failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenMissing is returned when an operation requires a token and none
	// was supplied.
	ErrTokenMissing = errors.New("token not provided")

	// ErrInvalidToken is returned when a token is revoked, malformed, expired
	// or carries a bad signature.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUserNotFound is returned when the user referenced by a verified
	// refresh token no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
