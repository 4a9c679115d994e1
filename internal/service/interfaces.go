package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
)

type AuthService interface {
	RegisterUser(ctx context.Context, signup models.SignupRequest, imagePath string) (models.User, error)
	Login(ctx context.Context, login models.LoginRequest) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PlaceService interface {
	GetPlaceByID(ctx context.Context, placeID uuid.UUID) (models.Place, error)
	GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]models.Place, error)

	CreatePlace(ctx context.Context, creator uuid.UUID, create models.CreatePlaceRequest, imagePath string) (models.Place, error)
	UpdatePlace(ctx context.Context, requester uuid.UUID, placeID uuid.UUID, update models.UpdatePlaceRequest) (models.Place, error)
	DeletePlace(ctx context.Context, requester uuid.UUID, placeID uuid.UUID) error
}

// Geocoder resolves a postal address to map coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (models.Location, error)
}
