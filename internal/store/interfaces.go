package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
)

// UserRepository is the persistence abstraction for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves a user by its unique email.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID retrieves a user by its identifier.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByID(ctx context.Context, userID uuid.UUID) (models.User, error)

	// GetAllUsers returns every registered user, including password hashes;
	// the transport layer is responsible for not serializing them.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// PlaceRepository is the persistence abstraction for places. The two
// multi-write operations (CreatePlace, DeletePlace) also maintain the
// owning user's back-reference list and run both writes in one database
// transaction: both become visible or neither does.
type PlaceRepository interface {
	// CreatePlace inserts the place and appends its id to the creator's
	// places list atomically.
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)

	// FindPlaceByID retrieves a place by its identifier.
	// Returns ErrPlaceNotFound when no such place exists.
	FindPlaceByID(ctx context.Context, placeID uuid.UUID) (models.Place, error)

	// FindPlacesByCreator returns every place created by the given user.
	// An empty result is not an error at this layer.
	FindPlacesByCreator(ctx context.Context, creator uuid.UUID) ([]models.Place, error)

	// UpdatePlace persists the mutable fields (title, description) of the
	// given place and returns the stored row.
	// Returns ErrPlaceNotFound when no such place exists.
	UpdatePlace(ctx context.Context, place models.Place) (models.Place, error)

	// DeletePlace removes the place and its back-reference from the
	// creator's places list atomically.
	// Returns ErrPlaceNotFound when no such place exists.
	DeletePlace(ctx context.Context, place models.Place) error
}

// ImageStorage persists uploaded image files outside the relational
// database. Save returns the storage path recorded on the owning entity;
// Delete removes a previously saved file and is allowed to fail without
// affecting any request outcome.
type ImageStorage interface {
	Save(ctx context.Context, originalName string, content io.Reader) (string, error)
	Delete(ctx context.Context, path string) error
}
