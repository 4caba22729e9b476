// Package usecase implements the business logic for the applications feature.
package usecase

import "errors"

var (
	// ErrApplicationNotFound is returned when an application id does not
	// resolve.
	ErrApplicationNotFound = errors.New("application not found")

	// ErrJobNotFound is returned when applying to a job that does not exist.
	ErrJobNotFound = errors.New("job not found")

	// ErrAlreadyApplied is returned when the (job, applicant) pair already
	// has an application on file.
	ErrAlreadyApplied = errors.New("you have already applied to this job")

	// ErrInvalidStatus is returned when a status update carries a value
	// outside the fixed enum.
	ErrInvalidStatus = errors.New("invalid application status")
)
