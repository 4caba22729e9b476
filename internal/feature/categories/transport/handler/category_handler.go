// Package handler provides the HTTP handlers for the categories feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/categories/domain/entity"
	"jobboard_backend/internal/feature/categories/transport/http/dto"
	"jobboard_backend/internal/feature/categories/usecase"
)

// CategoryUsecase defines the category operations consumed by the handler.
type CategoryUsecase interface {
	Create(ctx context.Context, name string) (*entity.JobCategory, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*entity.JobCategory, error)
	ListAll(ctx context.Context) ([]entity.JobCategory, error)
	Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.JobCategory, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// CategoryHandler handles HTTP requests for job-category CRUD.
type CategoryHandler struct {
	categories CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categories CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// Create handles POST /job/category/create.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("category create validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	category, err := h.categories.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			api.Fail(c, http.StatusConflict, "job category name already exists")
			return
		}
		slog.Error("category create failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	api.OK(c, http.StatusCreated, "job category created", category)
}

// GetByID handles GET /job/category/:id.
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	category, err := h.categories.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "job category found", category)
}

// ListAll handles GET /job/category/all.
func (h *CategoryHandler) ListAll(c *gin.Context) {
	categories, err := h.categories.ListAll(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "job categories listed", categories)
}

// Update handles PATCH /job/category/update/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, patch)
	if err != nil {
		if errors.Is(err, usecase.ErrNameTaken) {
			api.Fail(c, http.StatusConflict, "job category name already exists")
			return
		}
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "job category updated", category)
}

// Delete handles DELETE /job/category/:id. The category id is pulled out
// of every job that referenced it.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	slog.Info("job category deleted", "category_id", id.Hex())
	api.OK(c, http.StatusOK, "job category deleted", nil)
}

func (h *CategoryHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		api.Fail(c, http.StatusNotFound, "job category not found")
	case errors.Is(err, usecase.ErrNoFields):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error("category operation failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
	}
}

func pathID(c *gin.Context) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid id")
		return bson.ObjectID{}, false
	}
	return id, true
}
