// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"jobboard_backend/internal/api"
	"jobboard_backend/internal/feature/users/domain/entity"
	"jobboard_backend/internal/feature/users/transport/http/dto"
	"jobboard_backend/internal/feature/users/usecase"
	jwtauth "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/storage"
)

// UserUsecase defines the users operations consumed by the handler.
// Following Go convention, the interface is defined by the consumer.
type UserUsecase interface {
	Register(ctx context.Context, in usecase.RegisterInput, file *storage.File) (*entity.User, error)
	Login(ctx context.Context, email, password, role string) (*entity.User, string, error)
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
	UpdateProfile(ctx context.Context, userID bson.ObjectID, patch usecase.ProfilePatch, file *storage.File) (*entity.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (*entity.User, error)
}

// UserHandler handles HTTP requests for account registration, login,
// logout and profile updates.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Register handles POST /user/auth/create.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	profile, err := toProfileInput(req)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	file, ok := optionalFile(c)
	if !ok {
		return
	}

	user, err := h.users.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     req.Role,
		Profile:  profile,
	}, file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailTaken):
			api.Fail(c, http.StatusConflict, "email already registered")
		case errors.Is(err, usecase.ErrInvalidSocialLink):
			api.Fail(c, http.StatusBadRequest, err.Error())
		default:
			slog.Error("register failed", "error", err, "email", req.Email)
			api.Fail(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	slog.Info("user registered", "user_id", user.ID.Hex(), "role", user.Role)
	api.OK(c, http.StatusCreated, "account created", user)
}

// Login handles POST /user/auth/login. On success the signed token is set
// as an http-only, SameSite-Strict cookie.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	user, token, err := h.users.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			api.Fail(c, http.StatusNotFound, "no account with this email")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			api.Fail(c, http.StatusUnauthorized, "invalid email, password or role")
		default:
			slog.Error("login failed", "error", err, "email", req.Email)
			api.Fail(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(jwtauth.CookieName, token, int(jwtauth.TokenTTL.Seconds()), "/", "", false, true)

	slog.Info("user login successful", "user_id", user.ID.Hex())
	api.OK(c, http.StatusOK, "welcome back "+user.Name, user)
}

// Logout handles GET /user/logout. The cookie is always cleared; when a
// revocation store is configured the token is also revoked server-side.
func (h *UserHandler) Logout(c *gin.Context) {
	tokenID := c.GetString(jwtauth.ContextTokenID)
	expiresAt, _ := c.Get(jwtauth.ContextTokenExp)
	exp, _ := expiresAt.(time.Time)

	if err := h.users.Logout(c.Request.Context(), tokenID, exp); err != nil {
		// Revocation failure must not keep the client logged in.
		slog.Error("token revocation failed", "error", err)
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(jwtauth.CookieName, "", -1, "/", "", false, true)
	api.OK(c, http.StatusOK, "logged out", nil)
}

// Me handles GET /user/me, returning the authenticated user's account.
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := bson.ObjectIDFromHex(jwtauth.UserID(c))
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			api.Fail(c, http.StatusNotFound, "user not found")
			return
		}
		slog.Error("profile fetch failed", "error", err, "user_id", userID.Hex())
		api.Fail(c, http.StatusInternalServerError, "internal server error")
		return
	}

	api.OK(c, http.StatusOK, "profile", user)
}

// UpdateProfile handles PATCH /user/profile/update for the authenticated user.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := bson.ObjectIDFromHex(jwtauth.UserID(c))
	if err != nil {
		api.Fail(c, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("profile update validation failed", "error", err, "remote_addr", c.ClientIP())
		api.Fail(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	patch, err := toProfilePatch(req)
	if err != nil {
		api.Fail(c, http.StatusBadRequest, err.Error())
		return
	}

	file, ok := optionalFile(c)
	if !ok {
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), userID, patch, file)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			api.Fail(c, http.StatusNotFound, "user not found")
		case errors.Is(err, usecase.ErrEmailTaken):
			api.Fail(c, http.StatusConflict, "email already registered")
		case errors.Is(err, usecase.ErrInvalidSocialLink):
			api.Fail(c, http.StatusBadRequest, err.Error())
		default:
			slog.Error("profile update failed", "error", err, "user_id", userID.Hex())
			api.Fail(c, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	api.OK(c, http.StatusOK, "profile updated", user)
}

// toProfileInput converts the optional profile fields of a registration
// request, resolving company hex ids in experience entries.
func toProfileInput(req dto.RegisterRequest) (usecase.ProfileInput, error) {
	experience, err := toExperience(req.Experience)
	if err != nil {
		return usecase.ProfileInput{}, err
	}
	return usecase.ProfileInput{
		Bio:        req.Bio,
		Skills:     req.Skills,
		Education:  toEducation(req.Education),
		Experience: experience,
		Social:     toSocialLinks(req.Social),
	}, nil
}

// toProfilePatch converts the request DTO into the usecase patch,
// resolving company hex ids in experience entries.
func toProfilePatch(req dto.UpdateProfileRequest) (usecase.ProfilePatch, error) {
	experience, err := toExperience(req.Experience)
	if err != nil {
		return usecase.ProfilePatch{}, err
	}
	return usecase.ProfilePatch{
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Bio:        req.Bio,
		Skills:     req.Skills,
		Education:  toEducation(req.Education),
		Experience: experience,
		Social:     toSocialLinks(req.Social),
	}, nil
}

func toEducation(in []dto.EducationEntry) []entity.Education {
	if in == nil {
		return nil
	}
	out := make([]entity.Education, len(in))
	for i, e := range in {
		out[i] = entity.Education{
			Institution:  e.Institution,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			StartYear:    e.StartYear,
			EndYear:      e.EndYear,
		}
	}
	return out
}

func toExperience(in []dto.ExperienceEntry) ([]entity.Experience, error) {
	if in == nil {
		return nil, nil
	}
	out := make([]entity.Experience, len(in))
	for i, e := range in {
		exp := entity.Experience{
			Title:       e.Title,
			From:        e.From,
			To:          e.To,
			Description: e.Description,
		}
		if e.Company != "" {
			companyID, err := bson.ObjectIDFromHex(e.Company)
			if err != nil {
				return nil, usecase.ErrInvalidCompanyRef
			}
			exp.Company = companyID
		}
		out[i] = exp
	}
	return out, nil
}

func toSocialLinks(in *dto.SocialEntry) *entity.SocialLinks {
	if in == nil {
		return nil
	}
	return &entity.SocialLinks{
		LinkedIn:  in.LinkedIn,
		GitHub:    in.GitHub,
		Twitter:   in.Twitter,
		Portfolio: in.Portfolio,
	}
}

// optionalFile extracts and validates the optional `file` multipart field.
// It writes the error response itself and returns ok=false when the upload
// is present but invalid.
func optionalFile(c *gin.Context) (*storage.File, bool) {
	fh, err := c.FormFile("file")
	if err != nil {
		// No file attached; that is fine everywhere this is used.
		return nil, true
	}

	file, err := storage.FromMultipart(fh)
	if err != nil {
		if errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrFileType) {
			api.Fail(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
		slog.Error("upload intake failed", "error", err)
		api.Fail(c, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return file, true
}
