// Package router wires the HTTP routes to their handlers.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	applicationhandler "jobboard_backend/internal/feature/applications/transport/handler"
	categoryhandler "jobboard_backend/internal/feature/categories/transport/handler"
	companyhandler "jobboard_backend/internal/feature/companies/transport/handler"
	jobhandler "jobboard_backend/internal/feature/jobs/transport/handler"
	userhandler "jobboard_backend/internal/feature/users/transport/handler"
	"jobboard_backend/internal/platform/config"
	platformhandler "jobboard_backend/internal/platform/http/handler"
	jwtauth "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/ratelimit"
)

// Handlers bundles the feature handlers the router mounts.
type Handlers struct {
	Users        *userhandler.UserHandler
	Companies    *companyhandler.CompanyHandler
	Categories   *categoryhandler.CategoryHandler
	Jobs         *jobhandler.JobHandler
	Applications *applicationhandler.ApplicationHandler
}

// NewRouter builds the gin engine with CORS, the liveness endpoint, the
// public auth routes and the cookie-authenticated API.
func NewRouter(cfg *config.Config, revocations jwtauth.RevocationChecker, h Handlers) *gin.Engine {
	r := gin.Default()

	// Credentialed CORS: the auth cookie only travels when the browser
	// origin is explicitly allowed.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	v1 := r.Group("/api/v1")

	// No auth required. Login is throttled per client IP to slow down
	// credential stuffing.
	loginLimiter := ratelimit.NewLimiter(10, time.Minute)
	v1.POST("/user/auth/create", h.Users.Register)
	v1.POST("/user/auth/login", loginLimiter.Middleware(), h.Users.Login)

	// Everything else requires the token cookie
	auth := v1.Group("/")
	auth.Use(jwtauth.AuthRequired(cfg.JWTSecret, revocations))
	{
		auth.GET("/user/logout", h.Users.Logout)
		auth.GET("/user/me", h.Users.Me)
		auth.PATCH("/user/profile/update", h.Users.UpdateProfile)

		auth.POST("/company/create", h.Companies.Create)
		auth.GET("/company/all", h.Companies.ListAll)
		auth.GET("/company/user/:id", h.Companies.ListByOwner)
		auth.PATCH("/company/update/:id", h.Companies.Update)
		auth.GET("/company/:id", h.Companies.GetByID)
		auth.DELETE("/company/:id", h.Companies.Delete)

		auth.POST("/job/category/create", h.Categories.Create)
		auth.GET("/job/category/all", h.Categories.ListAll)
		auth.PATCH("/job/category/update/:id", h.Categories.Update)
		auth.GET("/job/category/:id", h.Categories.GetByID)
		auth.DELETE("/job/category/:id", h.Categories.Delete)

		auth.POST("/job/post", h.Jobs.Post)
		auth.GET("/job/all", h.Jobs.List)
		auth.GET("/job/all/:id", h.Jobs.ListByPoster)
		auth.PATCH("/job/update/:id", h.Jobs.Update)
		auth.GET("/job/:id", h.Jobs.GetByID)
		auth.DELETE("/job/:id", h.Jobs.Delete)

		auth.POST("/application/apply/:jobId", h.Applications.Apply)
		auth.PATCH("/application/status/:applicationId/update", h.Applications.UpdateStatus)
		auth.GET("/application/:id/applicants", h.Applications.ListForJob)
		auth.GET("/application/:id", h.Applications.ListForApplicant)
	}

	return r
}
