package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryUploader forwards buffered uploads to Cloudinary and returns
// the public URL of the stored object.
type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader creates an uploader from a cloudinary:// URL.
func NewCloudinaryUploader(url, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to configure cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld, folder: folder}, nil
}

// Upload sends the file to object storage and returns its secure URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, f *File) (string, error) {
	res, err := u.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), uploader.UploadParams{
		Folder:       u.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return "", fmt.Errorf("object storage upload failed: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("object storage upload failed: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}
