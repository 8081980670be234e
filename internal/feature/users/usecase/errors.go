// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by ID or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateKey is returned when a create or update would collide with
	// another user's username or email.
	ErrDuplicateKey = errors.New("username or email already exists")
)
