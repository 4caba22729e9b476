// Package handler provides the HTTP handlers for the jobs feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/jobs/domain/entity"
	"jobboard_backend/internal/feature/jobs/transport/http/dto"
	"jobboard_backend/internal/feature/jobs/usecase"
	jwtauth "jobboard_backend/internal/platform/jwt"
)

// JobUsecase defines the job operations consumed by the handler.
type JobUsecase interface {
	Post(ctx context.Context, posterID bson.ObjectID, in usecase.PostJobInput) (*entity.Job, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*entity.Job, error)
	List(ctx context.Context, keyword string) ([]entity.JobWithCompany, error)
	ListByPoster(ctx context.Context, posterID bson.ObjectID) ([]entity.Job, error)
	Update(ctx context.Context, id bson.ObjectID, patch map[string]any) (*entity.Job, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// JobHandler handles HTTP requests for job postings.
type JobHandler struct {
	jobs JobUsecase
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobs JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// Post handles POST /job/post.
func (h *JobHandler) Post(c *gin.Context) {
	posterID, err := bson.ObjectIDFromHex(jwtauth.UserID(c))
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.PostJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("job post validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	companyID, err := bson.ObjectIDFromHex(req.Company)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid company id")
		return
	}
	categoryIDs := make([]bson.ObjectID, len(req.Categories))
	for i, raw := range req.Categories {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			api.Fail(c, http.StatusBadRequest, "invalid category id")
			return
		}
		categoryIDs[i] = id
	}

	job, err := h.jobs.Post(c.Request.Context(), posterID, usecase.PostJobInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		Experience:   req.Experience,
		Salary:       req.Salary,
		Openings:     req.Openings,
		Requirements: req.Requirements,
		JobType:      req.JobType,
		CompanyID:    companyID,
		CategoryIDs:  categoryIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCompanyNotFound), errors.Is(err, usecase.ErrCategoryNotFound):
			api.Fail(c, http.StatusBadRequest, err.Error())
		default:
			slog.Error("job post failed", "error", err)
			api.Fail(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	slog.Info("job posted", "job_id", job.ID.Hex(), "poster_id", posterID.Hex())
	api.OK(c, http.StatusCreated, "job posted", job)
}

// GetByID handles GET /job/:id.
func (h *JobHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	job, err := h.jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "job found", job)
}

// List handles GET /job/all?keyword=. An empty result is a success with
// an empty list.
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "jobs listed", jobs)
}

// ListByPoster handles GET /job/all/:id.
func (h *JobHandler) ListByPoster(c *gin.Context) {
	posterID, ok := pathID(c)
	if !ok {
		return
	}

	jobs, err := h.jobs.ListByPoster(c.Request.Context(), posterID)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "jobs listed", jobs)
}

// Update handles PATCH /job/update/:id with an arbitrary whitelisted patch.
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	job, err := h.jobs.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.fail(c, err)
		return
	}
	api.OK(c, http.StatusOK, "job updated", job)
}

// Delete handles DELETE /job/:id. The job id is pulled out of every
// referencing company and category.
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.jobs.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	slog.Info("job deleted", "job_id", id.Hex())
	api.OK(c, http.StatusOK, "job deleted", nil)
}

func (h *JobHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		api.Fail(c, http.StatusNotFound, "job not found")
	case errors.Is(err, usecase.ErrNoFields):
		api.Fail(c, http.StatusBadRequest, err.Error())
	default:
		slog.Error("job operation failed", "error", err)
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
