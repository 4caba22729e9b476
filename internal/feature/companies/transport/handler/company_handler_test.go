package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/feature/companies/domain/entity"
	"jobboard_backend/internal/feature/companies/usecase"
	jwtauth "jobboard_backend/internal/platform/jwt"
)

type mockCompanyUsecase struct {
	CreateFunc      func(ctx context.Context, ownerID bson.ObjectID, in usecase.CreateCompanyInput) (*entity.Company, error)
	GetByIDFunc     func(ctx context.Context, id bson.ObjectID) (*entity.Company, error)
	ListByOwnerFunc func(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error)
	ListAllFunc     func(ctx context.Context) ([]entity.Company, error)
	UpdateFunc      func(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error)
	DeleteFunc      func(ctx context.Context, id bson.ObjectID) error
}

func (m *mockCompanyUsecase) Create(ctx context.Context, ownerID bson.ObjectID, in usecase.CreateCompanyInput) (*entity.Company, error) {
	return m.CreateFunc(ctx, ownerID, in)
}
func (m *mockCompanyUsecase) GetByID(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockCompanyUsecase) ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error) {
	return m.ListByOwnerFunc(ctx, ownerID)
}
func (m *mockCompanyUsecase) ListAll(ctx context.Context) ([]entity.Company, error) {
	return m.ListAllFunc(ctx)
}
func (m *mockCompanyUsecase) Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error) {
	return m.UpdateFunc(ctx, id, patch)
}
func (m *mockCompanyUsecase) Delete(ctx context.Context, id bson.ObjectID) error {
	return m.DeleteFunc(ctx, id)
}

// companyRouter mounts the handler behind a stub that injects the
// authenticated user id, the way the auth middleware does.
func companyRouter(uc *mockCompanyUsecase, ownerID bson.ObjectID) *gin.Engine {
	h := NewCompanyHandler(uc)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(jwtauth.ContextUserID, ownerID.Hex()) })
	r.POST("/company/create", h.Create)
	r.GET("/company/all", h.ListAll)
	r.GET("/company/user/:id", h.ListByOwner)
	r.PATCH("/company/update/:id", h.Update)
	r.GET("/company/:id", h.GetByID)
	r.DELETE("/company/:id", h.Delete)
	return r
}

func createBody() gin.H {
	return gin.H{
		"name":        "Acme Corp",
		"description": "We make everything",
		"website":     "https://acme.example.com",
		"location":    "Tokyo",
	}
}

func TestCompanyHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ownerID := bson.NewObjectID()

	tests := []struct {
		name           string
		requestBody    gin.H
		mockCreate     func(ctx context.Context, ownerID bson.ObjectID, in usecase.CreateCompanyInput) (*entity.Company, error)
		expectedStatus int
	}{
		{
			name:        "success: company created",
			requestBody: createBody(),
			mockCreate: func(ctx context.Context, gotOwner bson.ObjectID, in usecase.CreateCompanyInput) (*entity.Company, error) {
				assert.Equal(t, ownerID, gotOwner)
				return &entity.Company{ID: bson.NewObjectID(), Name: in.Name, Owners: []bson.ObjectID{gotOwner}}, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "failure: missing name",
			requestBody: gin.H{
				"description": "We make everything",
				"website":     "https://acme.example.com",
				"location":    "Tokyo",
			},
			mockCreate:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: website is not a url",
			requestBody: gin.H{
				"name": "Acme Corp", "description": "d",
				"website": "not a url", "location": "Tokyo",
			},
			mockCreate:     nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: duplicate name",
			requestBody: createBody(),
			mockCreate: func(ctx context.Context, ownerID bson.ObjectID, in usecase.CreateCompanyInput) (*entity.Company, error) {
				return nil, usecase.ErrNameTaken
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := companyRouter(&mockCompanyUsecase{CreateFunc: tt.mockCreate}, ownerID)

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPost, "/company/create", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var responseBody gin.H
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
			assert.Equal(t, tt.expectedStatus < 400, responseBody["success"])
		})
	}
}

func TestCompanyHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	companyID := bson.NewObjectID()
	tests := []struct {
		name           string
		path           string
		mockGet        func(ctx context.Context, id bson.ObjectID) (*entity.Company, error)
		expectedStatus int
	}{
		{
			name: "success",
			path: "/company/" + companyID.Hex(),
			mockGet: func(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
				return &entity.Company{ID: id, Name: "Acme Corp"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "failure: malformed id",
			path:           "/company/zzz",
			mockGet:        nil,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "failure: unknown id",
			path: "/company/" + bson.NewObjectID().Hex(),
			mockGet: func(ctx context.Context, id bson.ObjectID) (*entity.Company, error) {
				return nil, usecase.ErrCompanyNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := companyRouter(&mockCompanyUsecase{GetByIDFunc: tt.mockGet}, bson.NewObjectID())

			req, _ := http.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCompanyHandler_ListAll_EmptyBoard(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := companyRouter(&mockCompanyUsecase{
		ListAllFunc: func(ctx context.Context) ([]entity.Company, error) {
			return []entity.Company{}, nil
		},
	}, bson.NewObjectID())

	req, _ := http.NewRequest(http.MethodGet, "/company/all", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var responseBody struct {
		Success bool  `json:"success"`
		Data    []any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
	assert.True(t, responseBody.Success)
	assert.NotNil(t, responseBody.Data, "empty list serializes as [], not null")
}

func TestCompanyHandler_ListByOwner_MalformedID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := companyRouter(&mockCompanyUsecase{}, bson.NewObjectID())

	req, _ := http.NewRequest(http.MethodGet, "/company/user/not-hex", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCompanyHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		requestBody    gin.H
		mockUpdate     func(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error)
		expectedStatus int
	}{
		{
			name:        "success",
			requestBody: gin.H{"location": "Osaka"},
			mockUpdate: func(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error) {
				assert.Equal(t, "Osaka", patch["location"])
				return &entity.Company{ID: id, Location: "Osaka"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "failure: rename collides with existing company",
			requestBody: gin.H{"name": "Taken Inc"},
			mockUpdate: func(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error) {
				return nil, usecase.ErrNameTaken
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "failure: nothing updatable in patch",
			requestBody: gin.H{"owners": []string{"sneaky"}},
			mockUpdate: func(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error) {
				return nil, usecase.ErrNoFields
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "failure: unknown company",
			requestBody: gin.H{"location": "Osaka"},
			mockUpdate: func(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error) {
				return nil, usecase.ErrCompanyNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := companyRouter(&mockCompanyUsecase{UpdateFunc: tt.mockUpdate}, bson.NewObjectID())

			body, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest(http.MethodPatch, "/company/update/"+bson.NewObjectID().Hex(), bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCompanyHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := bson.NewObjectID()
		var gotID bson.ObjectID
		router := companyRouter(&mockCompanyUsecase{
			DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
				gotID = id
				return nil
			},
		}, bson.NewObjectID())

		req, _ := http.NewRequest(http.MethodDelete, "/company/"+companyID.Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, companyID, gotID)
	})

	t.Run("failure: unknown company", func(t *testing.T) {
		router := companyRouter(&mockCompanyUsecase{
			DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
				return usecase.ErrCompanyNotFound
			},
		}, bson.NewObjectID())

		req, _ := http.NewRequest(http.MethodDelete, "/company/"+bson.NewObjectID().Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("failure: storage error is hidden", func(t *testing.T) {
		router := companyRouter(&mockCompanyUsecase{
			DeleteFunc: func(ctx context.Context, id bson.ObjectID) error {
				return errors.New("connection reset")
			},
		}, bson.NewObjectID())

		req, _ := http.NewRequest(http.MethodDelete, "/company/"+bson.NewObjectID().Hex(), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}
