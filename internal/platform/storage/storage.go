// Package storage persists uploaded binary files (profile pictures,
// listing images) and hands back the reference string stored inline on
// the owning record. Backends: local disk (default) and any
// S3-compatible object store.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"
)

// FileStore saves uploaded files and returns a stable reference for
// later retrieval. Save never cleans up after a downstream failure;
// a file orphaned by a failed request stays in the store.
type FileStore interface {
	// Save stores the file content under a generated name and returns
	// the reference to persist on the owning record.
	Save(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// GenerateFilename derives the stored name from the upload time and
// the original file's extension, e.g. "1714727691234.jpg".
func GenerateFilename(originalName string, now time.Time) string {
	return fmt.Sprintf("%d%s", now.UnixMilli(), filepath.Ext(originalName))
}
