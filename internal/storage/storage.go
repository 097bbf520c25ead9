package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/blockseblock/backend/internal/models"
)

// localStorage implements Storage interface using local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance.
// The base directory is created if it does not exist yet.
func NewLocalStorage(basePath string) (*localStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &localStorage{
		basePath: basePath,
	}, nil
}

// BasePath returns the directory files are stored in
func (s *localStorage) BasePath() string {
	return s.basePath
}

// generatePath generates the full file path for a stored file name.
// Names that could escape the base directory are rejected.
func (s *localStorage) generatePath(name string) (string, error) {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", models.ErrInvalidFilename
	}
	return filepath.Join(s.basePath, name), nil
}

// Create creates a new file and returns a WriteCloser
func (s *localStorage) Create(name string) (io.WriteCloser, error) {
	path, err := s.generatePath(name)
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
}

// OpenFile opens a file and returns *os.File for use with http.ServeContent
func (s *localStorage) OpenFile(name string) (*os.File, error) {
	path, err := s.generatePath(name)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes a file
func (s *localStorage) Delete(name string) error {
	path, err := s.generatePath(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
