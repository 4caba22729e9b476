// Package usecase implements the business logic for the categories feature.
package usecase

import "errors"

var (
	// ErrCategoryNotFound is returned when a category id does not resolve.
	ErrCategoryNotFound = errors.New("job category not found")

	// ErrNameTaken is returned when the category name unique index rejects
	// a write.
	ErrNameTaken = errors.New("job category name already exists")

	// ErrNoFields is returned when an update patch contains no updatable
	// fields.
	ErrNoFields = errors.New("no updatable fields in request")
)
