package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/platform/sanitize"
)

// JobRepository abstracts the persistence layer for job entities.
type JobRepository interface {
	// Insert persists a new job.
	Insert(ctx context.Context, job *entity.Job) error

	// FindByID retrieves a job by id.
	FindByID(ctx context.Context, id bson.ObjectID) (*entity.Job, error)

	// Search lists jobs whose title or description contains the keyword
	// (case-insensitive; empty keyword matches everything), newest first,
	// with the referenced company populated.
	Search(ctx context.Context, keyword string) ([]entity.JobWithCompany, error)

	// FindByPoster lists jobs created by the given user, newest first.
	FindByPoster(ctx context.Context, posterID bson.ObjectID) ([]entity.Job, error)

	// UpdateFields applies a partial update and returns the new document.
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Job, error)

	// Delete removes the job document.
	Delete(ctx context.Context, id bson.ObjectID) error
}

// CompanyRefs is the company-side reference bookkeeping consumed when
// posting and deleting jobs.
type CompanyRefs interface {
	// Exists reports whether the company id resolves.
	Exists(ctx context.Context, id bson.ObjectID) (bool, error)

	// AddJobRef pushes the job id onto the company's jobs list.
	AddJobRef(ctx context.Context, companyID, jobID bson.ObjectID) error

	// RemoveJobRef pulls the job id out of every company referencing it.
	RemoveJobRef(ctx context.Context, jobID bson.ObjectID) error
}

// CategoryRefs is the category-side reference bookkeeping consumed when
// posting and deleting jobs.
type CategoryRefs interface {
	// CountByIDs reports how many of the ids resolve to stored categories.
	CountByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error)

	// AddJobRef pushes the job id onto every named category's jobs list.
	AddJobRef(ctx context.Context, categoryIDs []bson.ObjectID, jobID bson.ObjectID) error

	// RemoveJobRef pulls the job id out of every category referencing it.
	RemoveJobRef(ctx context.Context, jobID bson.ObjectID) error
}

// Txn runs a function inside the storage transaction boundary.
type Txn interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PostJobInput carries the validated posting fields; all required.
type PostJobInput struct {
	Title        string
	Description  string
	Location     string
	Experience   string
	Salary       int
	Openings     int
	Requirements []string
	JobType      string
	CompanyID    bson.ObjectID
	CategoryIDs  []bson.ObjectID
}

// updatableFields is the patch whitelist for job updates. References
// (company, categories, applicants, posted_by) are never patchable.
var updatableFields = map[string]bool{
	"title":        true,
	"description":  true,
	"location":     true,
	"experience":   true,
	"salary":       true,
	"openings":     true,
	"requirements": true,
	"job_type":     true,
}

type jobUsecase struct {
	jobs       JobRepository
	companies  CompanyRefs
	categories CategoryRefs
	txn        Txn
}

// NewJobUsecase creates the jobs business logic.
func NewJobUsecase(jobs JobRepository, companies CompanyRefs, categories CategoryRefs, txn Txn) *jobUsecase {
	return &jobUsecase{jobs: jobs, companies: companies, categories: categories, txn: txn}
}

// Post validates the posting's references and creates the job. The company
// must exist and every category id must resolve; category validation is
// all-or-nothing, so a single bad id rejects the whole posting and nothing
// is persisted. The insert and both back-reference pushes share one
// transaction: a failure mid-sequence leaves no half-linked job behind.
func (u *jobUsecase) Post(ctx context.Context, posterID bson.ObjectID, in PostJobInput) (*entity.Job, error) {
	ok, err := u.companies.Exists(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCompanyNotFound
	}

	categoryIDs := dedupe(in.CategoryIDs)
	count, err := u.categories.CountByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}
	if count != int64(len(categoryIDs)) {
		return nil, ErrCategoryNotFound
	}

	job := &entity.Job{
		Title:        sanitize.String(in.Title),
		Description:  sanitize.String(in.Description),
		Location:     sanitize.String(in.Location),
		Experience:   sanitize.String(in.Experience),
		Salary:       in.Salary,
		Openings:     in.Openings,
		Requirements: sanitize.Strings(in.Requirements),
		JobType:      sanitize.String(in.JobType),
		Company:      in.CompanyID,
		Categories:   categoryIDs,
		PostedBy:     posterID,
		Applicants:   []bson.ObjectID{},
	}

	err = u.txn.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.jobs.Insert(ctx, job); err != nil {
			return err
		}
		if err := u.categories.AddJobRef(ctx, categoryIDs, job.ID); err != nil {
			return err
		}
		return u.companies.AddJobRef(ctx, in.CompanyID, job.ID)
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetByID returns a single job.
func (u *jobUsecase) GetByID(ctx context.Context, id bson.ObjectID) (*entity.Job, error) {
	return u.jobs.FindByID(ctx, id)
}

// List returns jobs matching the keyword with companies populated; empty
// is success.
func (u *jobUsecase) List(ctx context.Context, keyword string) ([]entity.JobWithCompany, error) {
	return u.jobs.Search(ctx, keyword)
}

// ListByPoster returns the jobs created by a user; empty is success.
func (u *jobUsecase) ListByPoster(ctx context.Context, posterID bson.ObjectID) ([]entity.Job, error) {
	return u.jobs.FindByPoster(ctx, posterID)
}

// Update applies a sanitized, whitelisted partial update.
func (u *jobUsecase) Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Job, error) {
	fields := map[string]any{}
	for k, v := range sanitize.Map(patch) {
		if updatableFields[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return u.jobs.UpdateFields(ctx, id, fields)
}

// Delete removes the job and pulls its id out of every referencing company
// and category inside one transaction. Applications filed against the job
// are left in place: they are never deleted by any exposed operation.
func (u *jobUsecase) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := u.jobs.FindByID(ctx, id); err != nil {
		return err
	}

	return u.txn.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.jobs.Delete(ctx, id); err != nil {
			return err
		}
		if err := u.categories.RemoveJobRef(ctx, id); err != nil {
			return err
		}
		return u.companies.RemoveJobRef(ctx, id)
	})
}

func dedupe(ids []bson.ObjectID) []bson.ObjectID {
	seen := make(map[bson.ObjectID]bool, len(ids))
	out := make([]bson.ObjectID, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
