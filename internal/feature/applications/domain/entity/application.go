// Package entity defines the domain model for job applications.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	jobentity "jobboard_backend/internal/feature/jobs/domain/entity"
	userentity "jobboard_backend/internal/feature/users/domain/entity"
)

// Status is an application's review state. Transitions are unconstrained:
// any valid value may be set from any other.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusReviewed  Status = "Reviewed"
	StatusInterview Status = "Interview"
	StatusOffered   Status = "Offered"
	StatusRejected  Status = "Rejected"
)

// Valid reports whether s is one of the fixed status values.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusInterview, StatusOffered, StatusRejected:
		return true
	}
	return false
}

// Application records one user's application to one job. At most one
// application exists per (job, applicant) pair, enforced by a compound
// unique index.
type Application struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Job         bson.ObjectID `bson:"job" json:"job"`
	Applicant   bson.ObjectID `bson:"applicant" json:"applicant"`
	Resume      string        `bson:"resume" json:"resume"`
	Status      Status        `bson:"status" json:"status"`
	CoverLetter string        `bson:"cover_letter,omitempty" json:"cover_letter,omitempty"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// ApplicationWithJob is the aggregation view for an applicant's own list:
// the job reference is populated, and the job's company in turn.
type ApplicationWithJob struct {
	Application `bson:",inline"`

	JobDoc *jobentity.JobWithCompany `bson:"job_doc,omitempty" json:"job_doc,omitempty"`
}

// ApplicationWithApplicant is the aggregation view for a job's applicant
// list. The applicant's password is projected away in the pipeline and is
// additionally never serialized by the user entity itself.
type ApplicationWithApplicant struct {
	Application `bson:",inline"`

	ApplicantDoc *userentity.User `bson:"applicant_doc,omitempty" json:"applicant_doc,omitempty"`
}
