package mocks

import (
	"context"
	"fmt"
	"io"
)

// MockFileStore implements storage.FileStore for testing
type MockFileStore struct {
	SaveFn func(ctx context.Context, originalName string, r io.Reader) (string, error)

	// SavedNames records the original names passed to Save, in order
	SavedNames []string
	Err        error
}

// Save implements the storage.FileStore interface. The default
// implementation drains the reader and returns a deterministic
// reference derived from the call count.
func (m *MockFileStore) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, originalName, r)
	}
	if m.Err != nil {
		return "", m.Err
	}

	if _, err := io.Copy(io.Discard, r); err != nil {
		return "", err
	}

	m.SavedNames = append(m.SavedNames, originalName)
	return fmt.Sprintf("uploads/%d-%s", len(m.SavedNames), originalName), nil
}
