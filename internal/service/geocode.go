package service

import (
	"context"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/models"
)

// stubGeocoder is a placeholder [Geocoder] that resolves every address to
// the zero coordinates. It stands in until a real geocoding provider is
// wired up; callers already depend on the interface, so swapping the
// implementation requires no further changes.
type stubGeocoder struct {
	logger *logger.Logger
}

// NewStubGeocoder constructs the placeholder geocoder.
func NewStubGeocoder(logger *logger.Logger) Geocoder {
	return &stubGeocoder{logger: logger}
}

// Geocode implements [Geocoder]. It always returns {0, 0}.
func (g *stubGeocoder) Geocode(ctx context.Context, address string) (models.Location, error) {
	logger.FromContext(ctx).Debug().Str("address", address).Msg("geocoding address with stub provider")
	return models.Location{Lat: 0, Lng: 0}, nil
}
