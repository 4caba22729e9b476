// Package usecase implements the business logic for the jobs feature.
package usecase

import "errors"

var (
	// ErrJobNotFound is returned when a job id does not resolve.
	ErrJobNotFound = errors.New("job not found")

	// ErrCompanyNotFound is returned when a posting references a company
	// that does not exist.
	ErrCompanyNotFound = errors.New("referenced company does not exist")

	// ErrCategoryNotFound is returned when any of a posting's category
	// references fails to resolve. Category validation is all-or-nothing.
	ErrCategoryNotFound = errors.New("one or more referenced job categories do not exist")

	// ErrNoFields is returned when an update patch contains no updatable
	// fields.
	ErrNoFields = errors.New("no updatable fields in request")
)
