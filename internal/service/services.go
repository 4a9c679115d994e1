package service

import (
	"github.com/avetikov/go-places-api/internal/config"
	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/store"
)

type Services struct {
	AuthService  AuthService
	PlaceService PlaceService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		PlaceService: NewPlaceService(storages.PlaceRepository, storages.UserRepository, storages.ImageStorage, NewStubGeocoder(logger), logger),
	}
}
