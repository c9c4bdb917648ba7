// Package entity defines the domain entities for the account feature.
package entity

import "time"

// User represents a registered account in the system.
// It contains authentication credentials and creation metadata.
type User struct {
	// UserID is the unique identifier for the user, assigned at registration.
	// It is a UUID string and is never reused.
	UserID string `gorm:"column:user_id;primaryKey;size:36"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the bcrypt hash of the user's password.
	// This never stores plaintext passwords.
	PasswordHash string `gorm:"column:password_hash;size:255;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time
}

// TableName maps the entity to the users table.
func (User) TableName() string {
	return "users"
}
