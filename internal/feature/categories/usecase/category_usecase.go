package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/categories/domain/entity"
	"jobboard_backend/internal/platform/sanitize"
)

// CategoryRepository abstracts the persistence layer for job categories.
type CategoryRepository interface {
	// Create persists a new category. Returns ErrNameTaken if the name
	// unique index rejects the write.
	Create(ctx context.Context, category *entity.JobCategory) error

	// FindByID retrieves a category by id.
	FindByID(ctx context.Context, id bson.ObjectID) (*entity.JobCategory, error)

	// FindAll lists every category. An empty result is not an error.
	FindAll(ctx context.Context) ([]entity.JobCategory, error)

	// UpdateFields applies a partial update and returns the new document.
	UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.JobCategory, error)

	// Delete removes the category document.
	Delete(ctx context.Context, id bson.ObjectID) error
}

// JobUnlinker pulls a deleted category out of every job's categories list.
type JobUnlinker interface {
	RemoveCategoryRef(ctx context.Context, categoryID bson.ObjectID) error
}

// Txn runs a function inside the storage transaction boundary.
type Txn interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// updatableFields is the patch whitelist for category updates.
var updatableFields = map[string]bool{
	"name": true,
}

type categoryUsecase struct {
	categories CategoryRepository
	jobs       JobUnlinker
	txn        Txn
}

// NewCategoryUsecase creates the categories business logic.
func NewCategoryUsecase(categories CategoryRepository, jobs JobUnlinker, txn Txn) *categoryUsecase {
	return &categoryUsecase{categories: categories, jobs: jobs, txn: txn}
}

// Create registers a new job category.
func (u *categoryUsecase) Create(ctx context.Context, name string) (*entity.JobCategory, error) {
	category := &entity.JobCategory{
		Name: sanitize.String(name),
		Jobs: []bson.ObjectID{},
	}
	if err := u.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID returns a single category.
func (u *categoryUsecase) GetByID(ctx context.Context, id bson.ObjectID) (*entity.JobCategory, error) {
	return u.categories.FindByID(ctx, id)
}

// ListAll returns every category; empty is success.
func (u *categoryUsecase) ListAll(ctx context.Context) ([]entity.JobCategory, error) {
	return u.categories.FindAll(ctx)
}

// Update applies a sanitized, whitelisted partial update.
func (u *categoryUsecase) Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.JobCategory, error) {
	fields := map[string]any{}
	for k, v := range sanitize.Map(patch) {
		if updatableFields[k] {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return u.categories.UpdateFields(ctx, id, fields)
}

// Delete removes the category and pulls its id out of every job's
// categories list inside one transaction.
func (u *categoryUsecase) Delete(ctx context.Context, id bson.ObjectID) error {
	if _, err := u.categories.FindByID(ctx, id); err != nil {
		return err
	}

	return u.txn.WithTransaction(ctx, func(ctx context.Context) error {
		if err := u.jobs.RemoveCategoryRef(ctx, id); err != nil {
			return err
		}
		return u.categories.Delete(ctx, id)
	})
}
