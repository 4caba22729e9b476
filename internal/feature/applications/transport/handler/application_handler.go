// Package handler provides the HTTP handlers for the applications feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/applications/domain/entity"
	"jobboard_backend/internal/feature/applications/transport/http/dto"
	"jobboard_backend/internal/feature/applications/usecase"
	jwtauth "jobboard_backend/internal/platform/jwt"
)

// ApplicationUsecase defines the application operations consumed by the
// handler.
type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID bson.ObjectID, resume, coverLetter string) (*entity.Application, error)
	ListForApplicant(ctx context.Context, applicantID bson.ObjectID) ([]entity.ApplicationWithJob, error)
	ListForJob(ctx context.Context, jobID bson.ObjectID) ([]entity.ApplicationWithApplicant, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status entity.Status) (*entity.Application, error)
}

// ApplicationHandler handles HTTP requests for job applications.
type ApplicationHandler struct {
	applications ApplicationUsecase
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(applications ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

// Apply handles POST /application/apply/:jobId.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	applicantID, err := bson.ObjectIDFromHex(jwtauth.UserID(c))
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}
	jobID, err := bson.ObjectIDFromHex(c.Param("jobId"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "resume is required")
		return
	}

	app, err := h.applications.Apply(c.Request.Context(), applicantID, jobID, req.Resume, req.CoverLetter)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrJobNotFound):
			api.Fail(c, http.StatusNotFound, "job not found")
		case errors.Is(err, usecase.ErrAlreadyApplied):
			api.Fail(c, http.StatusConflict, err.Error())
		default:
			slog.Error("application apply failed", "error", err)
			api.Fail(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	slog.Info("application filed", "application_id", app.ID.Hex(), "job_id", jobID.Hex())
	api.OK(c, http.StatusCreated, "application submitted", app)
}

// ListForApplicant handles GET /application/:id (a user id). An empty
// result is a success with an empty list.
func (h *ApplicationHandler) ListForApplicant(c *gin.Context) {
	applicantID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid user id")
		return
	}

	apps, err := h.applications.ListForApplicant(c.Request.Context(), applicantID)
	if err != nil {
		slog.Error("application list failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	api.OK(c, http.StatusOK, "applications listed", apps)
}

// ListForJob handles GET /application/:id/applicants (a job id).
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	jobID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid job id")
		return
	}

	apps, err := h.applications.ListForJob(c.Request.Context(), jobID)
	if err != nil {
		slog.Error("applicant list failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}
	api.OK(c, http.StatusOK, "applicants listed", apps)
}

// UpdateStatus handles PATCH /application/status/:applicationId/update.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("applicationId"))
	if err != nil {
		api.Fail(c, http.StatusBadRequest, "invalid application id")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.Fail(c, http.StatusBadRequest, "status is required")
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), id, entity.Status(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			api.Fail(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, usecase.ErrApplicationNotFound):
			api.Fail(c, http.StatusNotFound, "application not found")
		default:
			slog.Error("status update failed", "error", err)
			api.Fail(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	slog.Info("application status updated", "application_id", id.Hex(), "status", req.Status)
	api.OK(c, http.StatusOK, "status updated", app)
}
