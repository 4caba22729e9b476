package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"jobboard_backend/internal/app/di"
	"jobboard_backend/internal/app/router"
	applicationadapters "jobboard_backend/internal/feature/applications/adapters"
	applicationhandler "jobboard_backend/internal/feature/applications/transport/handler"
	applicationusecase "jobboard_backend/internal/feature/applications/usecase"
	categoryadapters "jobboard_backend/internal/feature/categories/adapters"
	categoryhandler "jobboard_backend/internal/feature/categories/transport/handler"
	categoryusecase "jobboard_backend/internal/feature/categories/usecase"
	companyadapters "jobboard_backend/internal/feature/companies/adapters"
	companyhandler "jobboard_backend/internal/feature/companies/transport/handler"
	companyusecase "jobboard_backend/internal/feature/companies/usecase"
	jobadapters "jobboard_backend/internal/feature/jobs/adapters"
	jobhandler "jobboard_backend/internal/feature/jobs/transport/handler"
	jobusecase "jobboard_backend/internal/feature/jobs/usecase"
	useradapters "jobboard_backend/internal/feature/users/adapters"
	userhandler "jobboard_backend/internal/feature/users/transport/handler"
	userusecase "jobboard_backend/internal/feature/users/usecase"
	"jobboard_backend/internal/platform/config"
	jwtauth "jobboard_backend/internal/platform/jwt"
	"jobboard_backend/internal/platform/mongodb"
	platformredis "jobboard_backend/internal/platform/redis"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file, using process environment")
	}
	cfg := config.LoadConfig()

	if cfg.JWTSecret == "" {
		slog.Warn("JWT_SECRET is not set; authenticated routes will reject every request")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		slog.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(context.Background()); err != nil {
			slog.Error("failed to close mongodb client", "error", err)
		}
	}()

	// Redis backs logout revocation only; the server runs without it.
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr); err != nil {
		slog.Warn("redis unavailable, logout revocation disabled", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close redis client", "error", err)
			}
		}()
	}
	checker, revoker := di.NewTokenRevocations(rdb)

	uploader, err := di.NewUploader(&cfg)
	if err != nil {
		slog.Error("object storage configuration failed", "error", err)
		os.Exit(1)
	}
	if uploader == nil {
		slog.Warn("object storage not configured, file uploads disabled")
	}

	// Repositories
	userRepo := useradapters.NewUserMongo(store)
	companyRepo := companyadapters.NewCompanyMongo(store)
	categoryRepo := categoryadapters.NewCategoryMongo(store)
	jobRepo := jobadapters.NewJobMongo(store)
	applicationRepo := applicationadapters.NewApplicationMongo(store)

	// Usecases
	tokens := jwtauth.NewGenerator(cfg.JWTSecret, jwtauth.TokenTTL)
	userUC := userusecase.NewUserUsecase(userRepo, tokens, uploader, revoker)
	companyUC := companyusecase.NewCompanyUsecase(companyRepo, jobRepo, categoryRepo, store)
	categoryUC := categoryusecase.NewCategoryUsecase(categoryRepo, jobRepo, store)
	jobUC := jobusecase.NewJobUsecase(jobRepo, companyRepo, categoryRepo, store)
	applicationUC := applicationusecase.NewApplicationUsecase(applicationRepo, jobRepo, store)

	r := router.NewRouter(&cfg, checker, router.Handlers{
		Users:        userhandler.NewUserHandler(userUC),
		Companies:    companyhandler.NewCompanyHandler(companyUC),
		Categories:   categoryhandler.NewCategoryHandler(categoryUC),
		Jobs:         jobhandler.NewJobHandler(jobUC),
		Applications: applicationhandler.NewApplicationHandler(applicationUC),
	})

	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
