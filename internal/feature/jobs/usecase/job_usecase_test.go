package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/jobs/domain/entity"
)

type mockJobRepository struct {
	InsertFunc       func(ctx context.Context, job *entity.Job) error
	FindByIDFunc     func(ctx context.Context, id bson.ObjectID) (*entity.Job, error)
	SearchFunc       func(ctx context.Context, keyword string) ([]entity.JobWithCompany, error)
	FindByPosterFunc func(ctx context.Context, posterID bson.ObjectID) ([]entity.Job, error)
	UpdateFieldsFunc func(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Job, error)
	DeleteFunc       func(ctx context.Context, id bson.ObjectID) error
}

func (m *mockJobRepository) Insert(ctx context.Context, job *entity.Job) error {
	return m.InsertFunc(ctx, job)
}
func (m *mockJobRepository) FindByID(ctx context.Context, id bson.ObjectID) (*entity.Job, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockJobRepository) Search(ctx context.Context, keyword string) ([]entity.JobWithCompany, error) {
	return m.SearchFunc(ctx, keyword)
}
func (m *mockJobRepository) FindByPoster(ctx context.Context, posterID bson.ObjectID) ([]entity.Job, error) {
	return m.FindByPosterFunc(ctx, posterID)
}
func (m *mockJobRepository) UpdateFields(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Job, error) {
	return m.UpdateFieldsFunc(ctx, id, fields)
}
func (m *mockJobRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.DeleteFunc(ctx, id)
}

type mockCompanyRefs struct {
	ExistsFunc       func(ctx context.Context, id bson.ObjectID) (bool, error)
	AddJobRefFunc    func(ctx context.Context, companyID, jobID bson.ObjectID) error
	RemoveJobRefFunc func(ctx context.Context, jobID bson.ObjectID) error
}

func (m *mockCompanyRefs) Exists(ctx context.Context, id bson.ObjectID) (bool, error) {
	return m.ExistsFunc(ctx, id)
}
func (m *mockCompanyRefs) AddJobRef(ctx context.Context, companyID, jobID bson.ObjectID) error {
	return m.AddJobRefFunc(ctx, companyID, jobID)
}
func (m *mockCompanyRefs) RemoveJobRef(ctx context.Context, jobID bson.ObjectID) error {
	return m.RemoveJobRefFunc(ctx, jobID)
}

type mockCategoryRefs struct {
	CountByIDsFunc   func(ctx context.Context, ids []bson.ObjectID) (int64, error)
	AddJobRefFunc    func(ctx context.Context, categoryIDs []bson.ObjectID, jobID bson.ObjectID) error
	RemoveJobRefFunc func(ctx context.Context, jobID bson.ObjectID) error
}

func (m *mockCategoryRefs) CountByIDs(ctx context.Context, ids []bson.ObjectID) (int64, error) {
	return m.CountByIDsFunc(ctx, ids)
}
func (m *mockCategoryRefs) AddJobRef(ctx context.Context, categoryIDs []bson.ObjectID, jobID bson.ObjectID) error {
	return m.AddJobRefFunc(ctx, categoryIDs, jobID)
}
func (m *mockCategoryRefs) RemoveJobRef(ctx context.Context, jobID bson.ObjectID) error {
	return m.RemoveJobRefFunc(ctx, jobID)
}

type mockTxn struct{}

func (mockTxn) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func postInput(companyID bson.ObjectID, categoryIDs ...bson.ObjectID) PostJobInput {
	return PostJobInput{
		Title:        "Backend Engineer",
		Description:  "Build APIs",
		Location:     "Tokyo",
		Experience:   "3 years",
		Salary:       8000000,
		Openings:     2,
		Requirements: []string{"Go", "MongoDB"},
		JobType:      "full-time",
		CompanyID:    companyID,
		CategoryIDs:  categoryIDs,
	}
}

func TestJobUsecase_Post_LinksCompanyAndCategories(t *testing.T) {
	posterID := bson.NewObjectID()
	companyID := bson.NewObjectID()
	categoryID := bson.NewObjectID()
	jobID := bson.NewObjectID()

	var companyLinked, categoryLinked bool
	repo := &mockJobRepository{
		InsertFunc: func(ctx context.Context, job *entity.Job) error {
			job.ID = jobID
			return nil
		},
	}
	companies := &mockCompanyRefs{
		ExistsFunc: func(ctx context.Context, id bson.ObjectID) (bool, error) { return true, nil },
		AddJobRefFunc: func(ctx context.Context, cID, jID bson.ObjectID) error {
			companyLinked = true
			assert.Equal(t, companyID, cID)
			assert.Equal(t, jobID, jID)
			return nil
		},
	}
	categories := &mockCategoryRefs{
		CountByIDsFunc: func(ctx context.Context, ids []bson.ObjectID) (int64, error) {
			return int64(len(ids)), nil
		},
		AddJobRefFunc: func(ctx context.Context, catIDs []bson.ObjectID, jID bson.ObjectID) error {
			categoryLinked = true
			assert.Equal(t, []bson.ObjectID{categoryID}, catIDs)
			assert.Equal(t, jobID, jID)
			return nil
		},
	}
	uc := NewJobUsecase(repo, companies, categories, mockTxn{})

	job, err := uc.Post(context.Background(), posterID, postInput(companyID, categoryID))

	require.NoError(t, err)
	assert.Equal(t, jobID, job.ID)
	assert.Equal(t, posterID, job.PostedBy)
	assert.NotNil(t, job.Applicants)
	assert.Empty(t, job.Applicants)
	assert.True(t, companyLinked)
	assert.True(t, categoryLinked)
}

func TestJobUsecase_Post_UnknownCompany(t *testing.T) {
	companies := &mockCompanyRefs{
		ExistsFunc: func(ctx context.Context, id bson.ObjectID) (bool, error) { return false, nil },
	}
	uc := NewJobUsecase(&mockJobRepository{}, companies, &mockCategoryRefs{}, mockTxn{})

	_, err := uc.Post(context.Background(), bson.NewObjectID(), postInput(bson.NewObjectID(), bson.NewObjectID()))
	assert.ErrorIs(t, err, ErrCompanyNotFound)
}

func TestJobUsecase_Post_AnyInvalidCategoryRejectsAll(t *testing.T) {
	companies := &mockCompanyRefs{
		ExistsFunc: func(ctx context.Context, id bson.ObjectID) (bool, error) { return true, nil },
	}
	categories := &mockCategoryRefs{
		CountByIDsFunc: func(ctx context.Context, ids []bson.ObjectID) (int64, error) {
			return int64(len(ids)) - 1, nil
		},
	}
	var inserted bool
	repo := &mockJobRepository{
		InsertFunc: func(ctx context.Context, job *entity.Job) error {
			inserted = true
			return nil
		},
	}
	uc := NewJobUsecase(repo, companies, categories, mockTxn{})

	_, err := uc.Post(context.Background(), bson.NewObjectID(),
		postInput(bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()))

	assert.ErrorIs(t, err, ErrCategoryNotFound)
	assert.False(t, inserted)
}

func TestJobUsecase_Post_DedupesCategories(t *testing.T) {
	categoryID := bson.NewObjectID()
	companies := &mockCompanyRefs{
		ExistsFunc:    func(ctx context.Context, id bson.ObjectID) (bool, error) { return true, nil },
		AddJobRefFunc: func(ctx context.Context, cID, jID bson.ObjectID) error { return nil },
	}
	var counted []bson.ObjectID
	categories := &mockCategoryRefs{
		CountByIDsFunc: func(ctx context.Context, ids []bson.ObjectID) (int64, error) {
			counted = ids
			return int64(len(ids)), nil
		},
		AddJobRefFunc: func(ctx context.Context, catIDs []bson.ObjectID, jID bson.ObjectID) error { return nil },
	}
	repo := &mockJobRepository{
		InsertFunc: func(ctx context.Context, job *entity.Job) error { return nil },
	}
	uc := NewJobUsecase(repo, companies, categories, mockTxn{})

	job, err := uc.Post(context.Background(), bson.NewObjectID(),
		postInput(bson.NewObjectID(), categoryID, categoryID, categoryID))

	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{categoryID}, counted)
	assert.Equal(t, []bson.ObjectID{categoryID}, job.Categories)
}

func TestJobUsecase_Post_SanitizesStrings(t *testing.T) {
	companies := &mockCompanyRefs{
		ExistsFunc:    func(ctx context.Context, id bson.ObjectID) (bool, error) { return true, nil },
		AddJobRefFunc: func(ctx context.Context, cID, jID bson.ObjectID) error { return nil },
	}
	categories := &mockCategoryRefs{
		CountByIDsFunc: func(ctx context.Context, ids []bson.ObjectID) (int64, error) {
			return int64(len(ids)), nil
		},
		AddJobRefFunc: func(ctx context.Context, catIDs []bson.ObjectID, jID bson.ObjectID) error { return nil },
	}
	repo := &mockJobRepository{
		InsertFunc: func(ctx context.Context, job *entity.Job) error { return nil },
	}
	uc := NewJobUsecase(repo, companies, categories, mockTxn{})

	in := postInput(bson.NewObjectID(), bson.NewObjectID())
	in.Title = "  <b>Engineer</b>  "
	in.Requirements = []string{" Go ", "<script>"}

	job, err := uc.Post(context.Background(), bson.NewObjectID(), in)

	require.NoError(t, err)
	assert.Equal(t, "&lt;b&gt;Engineer&lt;/b&gt;", job.Title)
	assert.Equal(t, []string{"Go", "&lt;script&gt;"}, job.Requirements)
}

func TestJobUsecase_Update_WhitelistsFields(t *testing.T) {
	var gotFields map[string]any
	repo := &mockJobRepository{
		UpdateFieldsFunc: func(ctx context.Context, id bson.ObjectID, fields map[string]any) (*entity.Job, error) {
			gotFields = fields
			return &entity.Job{ID: id}, nil
		},
	}
	uc := NewJobUsecase(repo, &mockCompanyRefs{}, &mockCategoryRefs{}, mockTxn{})

	_, err := uc.Update(context.Background(), bson.NewObjectID(), map[string]any{
		"title":     " Senior Engineer ",
		"salary":    9000000,
		"company":   "sneaky",
		"posted_by": "sneaky",
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "Senior Engineer", "salary": 9000000}, gotFields)
}

func TestJobUsecase_Update_NoUpdatableFields(t *testing.T) {
	uc := NewJobUsecase(&mockJobRepository{}, &mockCompanyRefs{}, &mockCategoryRefs{}, mockTxn{})

	_, err := uc.Update(context.Background(), bson.NewObjectID(), map[string]any{"applicants": "x"})
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestJobUsecase_Delete_UnlinksReferences(t *testing.T) {
	jobID := bson.NewObjectID()
	var deleted, categoriesUnlinked, companiesUnlinked bool

	repo := &mockJobRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Job, error) {
			return &entity.Job{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
			deleted = true
			return nil
		},
	}
	companies := &mockCompanyRefs{
		RemoveJobRefFunc: func(ctx context.Context, id bson.ObjectID) error {
			companiesUnlinked = true
			assert.Equal(t, jobID, id)
			return nil
		},
	}
	categories := &mockCategoryRefs{
		RemoveJobRefFunc: func(ctx context.Context, id bson.ObjectID) error {
			categoriesUnlinked = true
			assert.Equal(t, jobID, id)
			return nil
		},
	}
	uc := NewJobUsecase(repo, companies, categories, mockTxn{})

	require.NoError(t, uc.Delete(context.Background(), jobID))
	assert.True(t, deleted)
	assert.True(t, categoriesUnlinked)
	assert.True(t, companiesUnlinked)
}

func TestJobUsecase_Delete_NotFound(t *testing.T) {
	repo := &mockJobRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Job, error) {
			return nil, ErrJobNotFound
		},
	}
	uc := NewJobUsecase(repo, &mockCompanyRefs{}, &mockCategoryRefs{}, mockTxn{})

	assert.ErrorIs(t, uc.Delete(context.Background(), bson.NewObjectID()), ErrJobNotFound)
}

func TestJobUsecase_Delete_UnlinkFailurePropagates(t *testing.T) {
	boom := errors.New("storage down")
	repo := &mockJobRepository{
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (*entity.Job, error) {
			return &entity.Job{ID: id}, nil
		},
		DeleteFunc: func(ctx context.Context, id bson.ObjectID) error { return nil },
	}
	companies := &mockCompanyRefs{
		RemoveJobRefFunc: func(ctx context.Context, id bson.ObjectID) error { return boom },
	}
	categories := &mockCategoryRefs{
		RemoveJobRefFunc: func(ctx context.Context, id bson.ObjectID) error { return nil },
	}
	uc := NewJobUsecase(repo, companies, categories, mockTxn{})

	assert.ErrorIs(t, uc.Delete(context.Background(), bson.NewObjectID()), boom)
}

func TestJobUsecase_List_PassesKeyword(t *testing.T) {
	var gotKeyword string
	repo := &mockJobRepository{
		SearchFunc: func(ctx context.Context, keyword string) ([]entity.JobWithCompany, error) {
			gotKeyword = keyword
			return []entity.JobWithCompany{}, nil
		},
	}
	uc := NewJobUsecase(repo, &mockCompanyRefs{}, &mockCategoryRefs{}, mockTxn{})

	jobs, err := uc.List(context.Background(), "backend")

	require.NoError(t, err)
	assert.Equal(t, "backend", gotKeyword)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}
