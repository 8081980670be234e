// Package entity defines the domain entities for the users feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains profile data, authentication credentials and timestamps.
type User struct {
	// ID is the unique identifier for the user, assigned by the storage layer.
	ID uint `gorm:"primaryKey"`

	// Name is the user's given name.
	Name string `gorm:"size:255;not null"`

	// LastName is the user's family name.
	LastName string `gorm:"size:255;not null"`

	// Username is the user's public handle.
	// It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This should never store plaintext passwords.
	Password string `gorm:"size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	// It is set once and never mutated afterwards.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	// It is refreshed on every mutation.
	UpdatedAt time.Time
}
