// Package di provides dependency injection factories for creating application components.
package di

import (
	userusecase "jobboard_backend/internal/feature/users/usecase"
	"jobboard_backend/internal/platform/config"
	"jobboard_backend/internal/platform/storage"
)

// NewUploader creates the object storage client for profile images and
// resumes. Returns nil when no storage URL is configured; file uploads
// are then rejected at the usecase layer.
func NewUploader(cfg *config.Config) (userusecase.FileUploader, error) {
	if cfg.CloudinaryURL == "" {
		return nil, nil
	}
	up, err := storage.NewCloudinaryUploader(cfg.CloudinaryURL, "jobboard")
	if err != nil {
		return nil, err
	}
	return up, nil
}
