// Package usecase implements the business logic for the users feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when the email unique index rejects a write.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned when the password or declared role
	// does not match the stored account.
	ErrInvalidCredentials = errors.New("invalid email, password or role")

	// ErrInvalidSocialLink is returned when a social link does not point at
	// its platform's host.
	ErrInvalidSocialLink = errors.New("social link does not match its platform")

	// ErrInvalidCompanyRef is returned when an experience entry references
	// a malformed company id.
	ErrInvalidCompanyRef = errors.New("experience references an invalid company id")
)
