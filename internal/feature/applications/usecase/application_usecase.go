package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/platform/sanitize"
)

// ApplicationRepository abstracts the persistence layer for applications.
type ApplicationRepository interface {
	// Insert persists a new application. A duplicate (job, applicant)
	// pair yields ErrAlreadyApplied.
	Insert(ctx context.Context, a *entity.Application) error

	// ListForApplicant lists a user's applications, newest first, with
	// the job and the job's company populated.
	ListForApplicant(ctx context.Context, applicantID bson.ObjectID) ([]entity.ApplicationWithJob, error)

	// ListForJob lists a job's applications, newest first, with the
	// applicant populated (password projected away).
	ListForJob(ctx context.Context, jobID bson.ObjectID) ([]entity.ApplicationWithApplicant, error)

	// UpdateStatus overwrites the status and returns the new document.
	UpdateStatus(ctx context.Context, id bson.ObjectID, status entity.Status) (*entity.Application, error)
}

// JobRefs is the job-side bookkeeping consumed when applying.
type JobRefs interface {
	// Exists reports whether the job id resolves.
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)

	// AddApplicant pushes the application id onto the job's applicants
	// list.
	AddApplicant(ctx context.Context, jobID, applicationID bson.ObjectID) error
}

// Txn runs a function inside the storage transaction boundary.
type Txn interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type applicationUsecase struct {
	applications ApplicationRepository
	jobs         JobRefs
	txn          Txn
}

// NewApplicationUsecase creates the applications business logic.
func NewApplicationUsecase(applications ApplicationRepository, jobs JobRefs, txn Txn) *applicationUsecase {
	return &applicationUsecase{applications: applications, jobs: jobs, txn: txn}
}

// Apply files an application for the job. The job must exist. Duplicate
// applications are rejected by the storage-level unique index rather than a
// check-then-create read, so two concurrent applies cannot both succeed.
// The insert and the applicant-list push share one transaction.
func (u *applicationUsecase) Apply(ctx context.Context, applicantID, jobID bson.ObjectID, resume, coverLetter string) (*entity.Application, error) {
	ok, err := u.jobs.Exists(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrJobNotFound
	}

	app := &entity.Application{
		Job:         jobID,
		Applicant:   applicantID,
		Resume:      sanitize.String(resume),
		Status:      entity.StatusApplied,
		CoverLetter: sanitize.String(coverLetter),
	}

	err = u.txn.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.applications.Insert(ctx, app); err != nil {
			return err
		}
		return u.jobs.AddApplicant(ctx, jobID, app.ID)
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// ListForApplicant returns a user's applications with jobs populated;
// empty is success.
func (u *applicationUsecase) ListForApplicant(ctx context.Context, applicantID bson.ObjectID) ([]entity.ApplicationWithJob, error) {
	return u.applications.ListForApplicant(ctx, applicantID)
}

// ListForJob returns a job's applications with applicants populated;
// empty is success.
func (u *applicationUsecase) ListForJob(ctx context.Context, jobID bson.ObjectID) ([]entity.ApplicationWithApplicant, error) {
	return u.applications.ListForJob(ctx, jobID)
}

// UpdateStatus overwrites the application's status. Any valid status is
// reachable from any other.
func (u *applicationUsecase) UpdateStatus(ctx context.Context, id bson.ObjectID, status entity.Status) (*entity.Application, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return u.applications.UpdateStatus(ctx, id, status)
}
