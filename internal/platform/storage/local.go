package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/phrazzld/rental-portal-api/internal/platform/logger"
)

// LocalStore writes uploaded files to a directory on disk. References
// are paths relative to the process working directory, e.g.
// "uploads/1714727691234.jpg".
type LocalStore struct {
	dir      string
	timeFunc func() time.Time // Injectable for testing
}

// NewLocalStore creates a LocalStore rooted at dir, creating the
// directory if it does not exist.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStore{dir: dir, timeFunc: time.Now}, nil
}

// Ensure LocalStore implements FileStore interface
var _ FileStore = (*LocalStore)(nil)

// Save implements FileStore.Save
func (s *LocalStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	name := GenerateFilename(originalName, s.timeFunc())
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Error("failed to create upload file",
			"path", path,
			"error", err)
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(f, r); err != nil {
		log.Error("failed to write upload file",
			"path", path,
			"error", err)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return path, nil
}
