package handler

import (
	"github.com/avetikov/go-places-api/internal/config"
	"github.com/avetikov/go-places-api/internal/handler/http"
	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/service"
	"github.com/avetikov/go-places-api/internal/store"
	"github.com/avetikov/go-places-api/internal/validators"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, images store.ImageStorage, validator validators.Validator, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, images, validator, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
