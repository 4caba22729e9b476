package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/companies/domain/entity"
)

type mockCompanyRepository struct {
	CreateFunc       func(ctx context.Context, company *entity.Company) error
	FindByIDFunc     func(ctx context.Context, id bson.ObjectID) (*entity.Company, error)
	FindByOwnerFunc  func(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error)
	FindAllFunc      func(ctx context.Context) ([]entity.Company, error)
	UpdateFieldsFunc func(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Company, error)
	DeleteFunc       func(ctx context.Context, id bson.ObjectID) error
}

func (m *mockCompanyRepository) Create(ctx context.Context, company *entity.Company) error {
	return m.CreateFunc(ctx, company)
}
func (m *mockCompanyRepository) FindByID(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockCompanyRepository) FindByOwner(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error) {
	return m.FindByOwnerFunc(ctx, ownerID)
}
func (m *mockCompanyRepository) FindAll(ctx context.Context) ([]entity.Company, error) {
	return m.FindAllFunc(ctx)
}
func (m *mockCompanyRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Company, error) {
	return m.UpdateFieldsFunc(ctx, id, fields)
}
func (m *mockCompanyRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.DeleteFunc(ctx, id)
}

type mockJobPurger struct {
	DeleteByCompanyFunc func(ctx context.Context, companyID bson.ObjectID) ([]bson.ObjectID, error)
}

func (m *mockJobPurger) DeleteByCompany(ctx context.Context, companyID bson.ObjectID) ([]bson.ObjectID, error) {
	return m.DeleteByCompanyFunc(ctx, companyID)
}

type mockCategoryUnlinker struct {
	RemoveJobRefsFunc func(ctx context.Context, jobIDs []bson.ObjectID) error
}

func (m *mockCategoryUnlinker) RemoveJobRefs(ctx context.Context, jobIDs []bson.ObjectID) error {
	return m.RemoveJobRefsFunc(ctx, jobIDs)
}

// mockTxn runs the function directly without a real session.
type mockTxn struct{}

func (mockTxn) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestCompanyUsecase_Create_SetsOwnerAndSanitizes(t *testing.T) {
	ownerID := bson.NewObjectID()
	var created *entity.Company
	repo := &mockCompanyRepository{
		CreateFunc: func(ctx context.Context, company *entity.Company) error {
			company.ID = bson.NewObjectID()
			created = company
			return nil
		},
	}
	uc := NewCompanyUsecase(repo, nil, nil, mockTxn{})

	company, err := uc.Create(context.Background(), ownerID, CreateCompanyInput{
		Name:        "  Acme <Corp>  ",
		Description: "widgets",
		Website:     "https://acme.example",
		Location:    "Osaka",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Acme &lt;Corp&gt;", company.Name)
	assert.Equal(t, []bson.ObjectID{ownerID}, company.Owners)
	assert.NotNil(t, company.Jobs)
	assert.Empty(t, company.Jobs)
}

func TestCompanyUsecase_Create_DuplicateName(t *testing.T) {
	repo := &mockCompanyRepository{
		CreateFunc: func(ctx context.Context, company *entity.Company) error {
			return ErrNameTaken
		},
	}
	uc := NewCompanyUsecase(repo, nil, nil, mockTxn{})

	_, err := uc.Create(context.Background(), bson.NewObjectID(), CreateCompanyInput{Name: "Acme"})
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestCompanyUsecase_Update_WhitelistsFields(t *testing.T) {
	var gotFields map[string]any
	repo := &mockCompanyRepository{
		UpdateFieldsFunc: func(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Company, error) {
			gotFields = fields
			return &entity.Company{ID: id}, nil
		},
	}
	uc := NewCompanyUsecase(repo, nil, nil, mockTxn{})

	_, err := uc.Update(context.Background(), bson.NewObjectID(), map[string]any{
		"name":   " New Name ",
		"owners": []string{"sneaky"},
		"jobs":   []string{"sneaky"},
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "New Name"}, gotFields)
}

func TestCompanyUsecase_Update_NoUpdatableFields(t *testing.T) {
	uc := NewCompanyUsecase(&mockCompanyRepository{}, nil, nil, mockTxn{})

	_, err := uc.Update(context.Background(), bson.NewObjectID(), map[string]any{"owners": "x"})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestCompanyUsecase_Delete_CascadesJobsAndCategories(t *testing.T) {
	companyID := bson.NewObjectID()
	jobIDs := []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()}

	var purged, unlinked, deleted bool
	repo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
			return &entity.Company{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
			deleted = true
			assert.True(t, purged, "jobs must be purged before the company is deleted")
			return nil
		},
	}
	jobs := &mockJobPurger{
		DeleteByCompanyFunc: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			purged = true
			assert.Equal(t, companyID, id)
			return jobIDs, nil
		},
	}
	categories := &mockCategoryUnlinker{
		RemoveJobRefsFunc: func(ctx context.Context, ids []bson.ObjectID) error {
			unlinked = true
			assert.Equal(t, jobIDs, ids)
			return nil
		},
	}
	uc := NewCompanyUsecase(repo, jobs, categories, mockTxn{})

	err := uc.Delete(context.Background(), companyID)

	require.NoError(t, err)
	assert.True(t, purged)
	assert.True(t, unlinked)
	assert.True(t, deleted)
}

func TestCompanyUsecase_Delete_NoJobsSkipsUnlink(t *testing.T) {
	repo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
			return &entity.Company{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error { return nil },
	}
	jobs := &mockJobPurger{
		DeleteByCompanyFunc: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			return nil, nil
		},
	}
	categories := &mockCategoryUnlinker{
		RemoveJobRefsFunc: func(ctx context.Context, ids []bson.ObjectID) error {
			t.Fatal("RemoveJobRefs should not be called when no jobs were purged")
			return nil
		},
	}
	uc := NewCompanyUsecase(repo, jobs, categories, mockTxn{})

	assert.NoError(t, uc.Delete(context.Background(), bson.NewObjectID()))
}

func TestCompanyUsecase_Delete_NotFound(t *testing.T) {
	repo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
			return nil, ErrCompanyNotFound
		},
	}
	uc := NewCompanyUsecase(repo, &mockJobPurger{}, &mockCategoryUnlinker{}, mockTxn{})

	err := uc.Delete(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestCompanyUsecase_Delete_PurgeFailureAborts(t *testing.T) {
	boom := errors.New("storage down")
	var deleted bool
	repo := &mockCompanyRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
			return &entity.Company{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
			deleted = true
			return nil
		},
	}
	jobs := &mockJobPurger{
		DeleteByCompanyFunc: func(ctx context.Context, id bson.ObjectID) ([]bson.ObjectID, error) {
			return nil, boom
		},
	}
	uc := NewCompanyUsecase(repo, jobs, &mockCategoryUnlinker{}, mockTxn{})

	err := uc.Delete(context.Background(), bson.NewObjectID())
	assert.ErrorIs(t, err, boom)
	assert.False(t, deleted)
}
