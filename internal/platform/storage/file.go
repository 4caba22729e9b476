// Package storage handles file intake and forwarding to object storage.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// MaxFileSize is the per-file upload ceiling (2MB).
const MaxFileSize = 2 << 20

// allowedExtensions is the upload allow-list for resumes and images.
var allowedExtensions = map[string]bool{
	".doc":  true,
	".docx": true,
	".rtf":  true,
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

var (
	// ErrFileTooLarge is returned when an upload exceeds MaxFileSize.
	ErrFileTooLarge = fmt.Errorf("file exceeds maximum size of %d bytes", MaxFileSize)

	// ErrFileType is returned when an upload's extension is not allowed.
	ErrFileType = errors.New("file type not allowed")
)

// File is an upload buffered fully in memory before forwarding to object
// storage. There is no disk persistence and no streaming.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}

// IsImage reports whether the upload declared an image content type.
func (f *File) IsImage() bool {
	return strings.HasPrefix(f.ContentType, "image/")
}

// FromMultipart validates a multipart upload against the size ceiling and
// extension allow-list and buffers its content in memory.
func FromMultipart(fh *multipart.FileHeader) (*File, error) {
	if fh.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrFileType
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, MaxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	return &File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
