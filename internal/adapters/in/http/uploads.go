package http

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"bottleshop/internal/core/domain/model/kernel"
	"bottleshop/internal/pkg/errs"
)

// FileStore persists uploaded files under a single directory that the
// server also exposes as static content.
type FileStore struct {
	dir string
}

// NewFileStore creates a file store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the directory the store writes into.
func (s *FileStore) Dir() string {
	return s.dir
}

// Save writes one multipart file under a fresh name and returns the public
// path it will be served from. The original name only contributes its
// extension, never its path.
func (s *FileStore) Save(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", errs.NewValueIsInvalidErrorWithCause("file", err)
	}
	defer src.Close()

	name := kernel.NewUUID().String() + filepath.Ext(filepath.Base(file.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}

	return "/uploads/" + name, nil
}
