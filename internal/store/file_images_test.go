package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avetikov/go-places-api/internal/config"
	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImageStorage(t *testing.T) (ImageStorage, string) {
	dir := t.TempDir()
	s, err := NewImageFileStorage(config.Files{ImagesDir: dir}, logger.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestNewImageFileStorage_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")

	_, err := NewImageFileStorage(config.Files{ImagesDir: dir}, logger.Nop())
	require.NoError(t, err)

	info, statErr := os.Stat(dir)
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestImageFileStorage_Save(t *testing.T) {
	s, dir := newTestImageStorage(t)
	ctx := context.Background()

	t.Run("stores content and keeps extension", func(t *testing.T) {
		path, err := s.Save(ctx, "photo.JPG", strings.NewReader("image bytes"))
		require.NoError(t, err)

		assert.Equal(t, dir, filepath.Dir(path))
		assert.Equal(t, ".jpg", filepath.Ext(path))

		content, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "image bytes", string(content))
	})

	t.Run("no extension", func(t *testing.T) {
		path, err := s.Save(ctx, "photo", strings.NewReader("data"))
		require.NoError(t, err)
		assert.Empty(t, filepath.Ext(path))
	})

	t.Run("same original name never collides", func(t *testing.T) {
		first, err := s.Save(ctx, "photo.png", strings.NewReader("one"))
		require.NoError(t, err)
		second, err := s.Save(ctx, "photo.png", strings.NewReader("two"))
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestImageFileStorage_Delete(t *testing.T) {
	s, _ := newTestImageStorage(t)
	ctx := context.Background()

	t.Run("removes stored file", func(t *testing.T) {
		path, err := s.Save(ctx, "photo.png", strings.NewReader("bytes"))
		require.NoError(t, err)

		require.NoError(t, s.Delete(ctx, path))

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, ""))
	})

	t.Run("missing file returns error", func(t *testing.T) {
		err := s.Delete(ctx, filepath.Join(t.TempDir(), "missing.png"))
		require.Error(t, err)
	})
}
