package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/avetikov/go-places-api/internal/config"
	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/google/uuid"
)

// imageFileStorage is the local-filesystem implementation of [ImageStorage].
// Uploaded files are stored flat under the configured directory with a
// uuid-based file name; the original name only contributes its extension.
//
// Stored paths are what gets persisted on users and places, so the
// directory must stay stable for the lifetime of the data.
type imageFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewImageFileStorage constructs an [ImageStorage] rooted at the configured
// images directory, creating it if necessary.
func NewImageFileStorage(cfg config.Files, logger *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(cfg.ImagesDir, 0o755); err != nil {
		logger.Err(err).Str("dir", cfg.ImagesDir).Msg("failed to create images directory")
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	logger.Debug().Str("dir", cfg.ImagesDir).Msg("creating image file storage")
	return &imageFileStorage{
		dir:    cfg.ImagesDir,
		logger: logger,
	}, nil
}

// Save streams content into a new file under the storage directory and
// returns the stored path. The file name is a fresh uuid plus the original
// name's extension, which keeps uploads from colliding or traversing
// outside the directory.
func (s *imageFileStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	log := logger.FromContext(ctx)

	ext := strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.dir, uuid.NewString()+ext)

	file, err := os.Create(path)
	if err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Save").Str("path", path).Msg("failed to create image file")
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Save").Str("path", path).Msg("failed to write image file")
		// leave no half-written file behind
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}

	return path, nil
}

// Delete removes a previously stored file. Callers treat failures as
// non-fatal; the error is returned for logging only.
func (s *imageFileStorage) Delete(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	if path == "" {
		return nil
	}

	if err := os.Remove(path); err != nil {
		log.Err(err).Str("func", "*imageFileStorage.Delete").Str("path", path).Msg("failed to delete image file")
		return fmt.Errorf("failed to delete image file: %w", err)
	}

	return nil
}
