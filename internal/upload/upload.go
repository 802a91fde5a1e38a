// Package upload stores incoming multipart files in a local directory so
// extraction workers can read them after the accepting request returns.
package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store saves uploaded payloads into a single local directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a Store rooted at dir, creating the directory if needed.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if dir == "" {
		return nil, errors.New("upload directory cannot be empty")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{
		dir:    dir,
		logger: logger.With("component", "upload_store"),
	}, nil
}

// Save writes the content to a new file in the store's directory and
// returns its path. The stored name is the sanitized original name
// prefixed with a fresh UUID, so concurrent uploads of the same filename
// never collide.
func (s *Store) Save(filename string, content io.Reader) (string, error) {
	name := uuid.NewString() + "_" + sanitizeFilename(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	written, err := io.Copy(f, content)
	if err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	s.logger.Debug("stored upload", "path", path, "bytes", written)
	return path, nil
}

// sanitizeFilename reduces a client-supplied filename to its base name so
// a crafted name cannot escape the upload directory.
func sanitizeFilename(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == ".." || base == "/" || base == "" {
		return "upload"
	}
	return base
}
