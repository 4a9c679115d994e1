// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, and image upload
// concerns are all handled at this layer before requests are forwarded
// to the service layer.
package http

import (
	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/service"
	"github.com/avetikov/go-places-api/internal/store"
	"github.com/avetikov/go-places-api/internal/validators"
)

type Handler struct {
	services  *service.Services
	images    store.ImageStorage
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, images store.ImageStorage, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		images:    images,
		validator: validator,
		logger:    logger,
	}
}
