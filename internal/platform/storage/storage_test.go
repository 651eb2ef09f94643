package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFilename(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1714727691234)

	tests := []struct {
		name         string
		originalName string
		want         string
	}{
		{name: "jpeg", originalName: "house.jpg", want: "1714727691234.jpg"},
		{name: "png", originalName: "front-view.png", want: "1714727691234.png"},
		{name: "no extension", originalName: "README", want: "1714727691234"},
		{name: "dotted name", originalName: "my.photo.jpeg", want: "1714727691234.jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GenerateFilename(tt.originalName, now))
		})
	}
}

func TestLocalStore_Save(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewLocalStore(dir)
	require.NoError(t, err)

	fixed := time.UnixMilli(1714727691234)
	store.timeFunc = func() time.Time { return fixed }

	ref, err := store.Save(context.Background(), "house.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1714727691234.jpg"), ref)

	content, err := os.ReadFile(ref)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestLocalStore_SaveRejectsCollision(t *testing.T) {
	t.Parallel()

	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	fixed := time.UnixMilli(1714727691234)
	store.timeFunc = func() time.Time { return fixed }

	_, err = store.Save(context.Background(), "a.jpg", strings.NewReader("first"))
	require.NoError(t, err)

	// Same millisecond and extension collides on the generated name.
	_, err = store.Save(context.Background(), "b.jpg", strings.NewReader("second"))
	assert.Error(t, err)
}

func TestNewLocalStore_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewLocalStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
