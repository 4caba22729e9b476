// Package handler provides the HTTP handlers for the companies feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/companies/domain/entity"
	"jobboard_backend/internal/feature/companies/transport/http/dto"
	"jobboard_backend/internal/feature/companies/usecase"
	jwtauth "jobboard_backend/internal/platform/jwt"
)

// CompanyUsecase defines the companies operations consumed by the handler.
type CompanyUsecase interface {
	Create(ctx context.Context, ownerID bson.ObjectID, in usecase.CreateCompanyInput) (*entity.Company, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*entity.Company, error)
	ListByOwner(ctx context.Context, ownerID bson.ObjectID) ([]entity.Company, error)
	ListAll(ctx context.Context) ([]entity.Company, error)
	Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Company, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// CompanyHandler handles HTTP requests for company CRUD.
type CompanyHandler struct {
	companies CompanyUsecase
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(companies CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{companies: companies}
}

// Create handles POST /company/create.
func (h *CompanyHandler) Create(c *gin.Context) {
	ownerID, err := bson.ObjectIDFromHex(jwtauth.UserID(c))
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("company create validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	company, err := h.companies.Create(c.Request.Context(), ownerID, usecase.CreateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			api.Fail(c, http.StatusConflict, "company name already registered")
			return
		}
		slog.Error("company create failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	slog.Info("company created", "company_id", company.ID.Hex(), "owner_id", ownerID.Hex())
	api.OK(c, http.StatusCreated, "company created", company)
}

// GetByID handles GET /company/:id.
func (h *CompanyHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	company, err := h.companies.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "company found", company)
}

// ListAll handles GET /company/all. An empty board is a success with an
// empty list.
func (h *CompanyHandler) ListAll(c *gin.Context) {
	companies, err := h.companies.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "companies listed", companies)
}

// ListByOwner handles GET /company/user/:id.
func (h *CompanyHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := pathID(c, "id")
	if !ok {
		return
	}

	companies, err := h.companies.ListByOwner(c.Request.Context(), ownerID)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "companies listed", companies)
}

// Update handles PATCH /company/update/:id with an arbitrary whitelisted patch.
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.companies.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			api.Fail(c, http.StatusConflict, "company name already registered")
			return
		}
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "company updated", company)
}

// Delete handles DELETE /company/:id. Deletion cascades into the company's
// jobs and their category back-references.
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.companies.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	slog.Info("company deleted", "company_id", id.Hex())
	api.OK(c, http.StatusOK, "company deleted", nil)
}

// fail maps usecase errors onto HTTP statuses.
func (h *CompanyHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		api.Fail(c, http.StatusNotFound, "company not found")
	case errors.Is(err, usecase.ErrNoFields):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error("company operation failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses a hex object id from a path parameter, answering 400 on a
// structurally invalid id.
func pathID(c *gin.Context, name string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Param(name))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid id")
		return bson.ObjectID{}, false
	}
	return id, true
}
