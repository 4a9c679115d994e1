package store

import (
	"github.com/avetikov/go-places-api/internal/config"
	"github.com/avetikov/go-places-api/internal/logger"
)

// Storages bundles every persistence backend used by the service layer.
type Storages struct {
	UserRepository  UserRepository
	PlaceRepository PlaceRepository
	ImageStorage    ImageStorage
}

// NewStorages wires all repositories to the shared database handle and the
// image storage to the configured directory.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	imageStorage, err := NewImageFileStorage(cfg.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, logger),
		PlaceRepository: NewPlaceRepository(db, logger),
		ImageStorage:    imageStorage,
	}, nil
}
