// Package usecase implements the business logic for the companies feature.
package usecase

import "errors"

var (
	// ErrCompanyNotFound is returned when a company id does not resolve.
	ErrCompanyNotFound = errors.New("company not found")

	// ErrNameTaken is returned when the company name unique index rejects
	// a write.
	ErrNameTaken = errors.New("company name already registered")

	// ErrNoFields is returned when an update patch contains no updatable
	// fields.
	ErrNoFields = errors.New("no updatable fields in request")
)
