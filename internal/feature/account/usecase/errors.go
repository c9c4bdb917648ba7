// Package usecase implements the business logic for the account feature.
package usecase

import "errors"

var (
	// ErrInvalidEmailDomain is returned when the email's domain has no MX record.
	ErrInvalidEmailDomain = errors.New("email domain does not exist")

	// ErrEmailAlreadyRegistered is returned when attempting to register an email that already exists.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login failure.
	// It deliberately covers both "unknown email" and "wrong password" so that
	// callers cannot distinguish the two cases.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUserNotFound is returned when a user cannot be found by email.
	ErrUserNotFound = errors.New("user not found")

	// ErrUpstreamTimeout is returned when a DNS or database call exceeds its deadline.
	ErrUpstreamTimeout = errors.New("upstream call timed out")
)
