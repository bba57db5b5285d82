package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Uploads persists profile images on disk under a base directory.
type Uploads struct {
	baseDir  string
	maxBytes int64
}

// NewUploads ensures the base directory exists and returns a handle.
func NewUploads(baseDir string, maxBytes int64) (*Uploads, error) {
	if baseDir == "" {
		baseDir = "./uploads"
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads directory: %w", err)
	}
	if maxBytes <= 0 {
		maxBytes = 5 * 1024 * 1024
	}
	return &Uploads{baseDir: baseDir, maxBytes: maxBytes}, nil
}

// SaveImage stores an uploaded image under the given subdirectory and returns
// the relative path. The stored name is randomized; the original extension is
// preserved when it looks like an image extension.
func (u *Uploads) SaveImage(subdir string, header *multipart.FileHeader) (string, error) {
	if header.Size > u.maxBytes {
		return "", fmt.Errorf("file exceeds maximum size of %d bytes", u.maxBytes)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp":
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close() //nolint:errcheck

	rel := filepath.Join(subdir, uuid.NewString()+ext)
	path := filepath.Join(u.baseDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("prepare upload directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close() //nolint:errcheck

	if _, err := io.Copy(dst, io.LimitReader(src, u.maxBytes)); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return rel, nil
}

// Delete removes a stored file if present.
func (u *Uploads) Delete(rel string) error {
	if rel == "" {
		return nil
	}
	path := filepath.Join(u.baseDir, rel)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}

// Path exposes the absolute path of a stored file.
func (u *Uploads) Path(rel string) string {
	return filepath.Join(u.baseDir, rel)
}
