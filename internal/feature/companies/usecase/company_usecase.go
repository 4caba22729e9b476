package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/companies/domain/entity"
	"jobboard_backend/internal/platform/sanitize"
)

// CompanyRepository abstracts the persistence layer for company entities.
type CompanyRepository interface {
	// Create persists a new company. Returns ErrNameTaken if the name
	// unique index rejects the write.
	Create(ctx context.Context, company *entity.Company) error

	// FindByID retrieves a company by id.
	FindByID(ctx context.Context, id bson.ObjectID) (*entity.Company, error)

	// FindByOwner lists companies owned by the given user. An empty
	// result is not an error.
	FindByOwner(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error)

	// FindAll lists every company. An empty result is not an error.
	FindAll(ctx context.Context) ([]entity.Company, error)

	// UpdateFields applies a partial update and returns the new document.
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Company, error)

	// Delete removes the company document.
	Delete(ctx context.Context, id bson.ObjectID) error
}

// JobPurger removes the jobs posted under a company as part of its cascade
// deletion and reports which jobs were removed.
type JobPurger interface {
	DeleteByCompany(ctx context.Context, companyID bson.ObjectID) ([]bson.ObjectID, error)
}

// CategoryUnlinker pulls job back-references out of every category.
type CategoryUnlinker interface {
	RemoveJobRefs(ctx context.Context, jobIDs []bson.ObjectID) error
}

// Txn runs a function inside the storage transaction boundary.
type Txn interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CreateCompanyInput carries the validated creation fields; all required.
type CreateCompanyInput struct {
	Name        string
	Description string
	Website     string
	Location    string
}

// updatableFields is the patch whitelist for company updates.
var updatableFields = map[string]bool{
	"name":        true,
	"description": true,
	"website":     true,
	"location":    true,
	"logo":        true,
}

type companyUsecase struct {
	companies  CompanyRepository
	jobs       JobPurger
	categories CategoryUnlinker
	txn        Txn
}

// NewCompanyUsecase creates the companies business logic.
func NewCompanyUsecase(companies CompanyRepository, jobs JobPurger, categories CategoryUnlinker, txn Txn) *companyUsecase {
	return &companyUsecase{companies: companies, jobs: jobs, categories: categories, txn: txn}
}

// Create registers a new company with the creating user as its owner.
func (u *companyUsecase) Create(ctx context.Context, ownerID bson.ObjectID, in CreateCompanyInput) (*entity.Company, error) {
	company := &entity.Company{
		Name:        sanitize.String(in.Name),
		Description: sanitize.String(in.Description),
		Website:     sanitize.String(in.Website),
		Location:    sanitize.String(in.Location),
		Owners:      []bson.ObjectID{ownerID},
		Jobs:        []bson.ObjectID{},
	}
	if err := u.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// GetByID returns a single company.
func (u *companyUsecase) GetByID(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
	return u.companies.FindByID(ctx, id)
}

// ListByOwner returns the companies owned by a user; empty is success.
func (u *companyUsecase) ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error) {
	return u.companies.FindByOwner(ctx, ownerID)
}

// ListAll returns every company; empty is success.
func (u *companyUsecase) ListAll(ctx context.Context) ([]entity.Company, error) {
	return u.companies.FindAll(ctx)
}

// Update applies a sanitized, whitelisted partial update.
func (u *companyUsecase) Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error) {
	fields := map[string]any{}
	for k, v := range sanitize.Map(patch) {
		if updatableFields[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return u.companies.UpdateFields(ctx, id, fields)
}

// Delete removes the company and cascades: every job posted under it is
// deleted and those job ids are pulled out of every category. The whole
// cleanup shares one transaction.
func (u *companyUsecase) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := u.companies.FindByID(ctx, id); err != nil {
		return err
	}

	return u.txn.WithTransaction(ctx, func(ctx context.Context) error {
		jobIDs, err := u.jobs.DeleteByCompany(ctx, id)
		if err != nil {
			return err
		}
		if len(jobIDs) > 0 {
			if err := u.categories.RemoveJobRefs(ctx, jobIDs); err != nil {
				return err
			}
		}
		return u.companies.Delete(ctx, id)
	})
}
