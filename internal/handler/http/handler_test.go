package http

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/service"
	"github.com/avetikov/go-places-api/internal/validators"
	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, signup models.SignupRequest, imagePath string) (models.User, error)
	loginFn        func(ctx context.Context, login models.LoginRequest) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, signup models.SignupRequest, imagePath string) (models.User, error) {
	return m.registerUserFn(ctx, signup, imagePath)
}

func (m *mockAuthService) Login(ctx context.Context, login models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, login)
}

func (m *mockAuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsersFn(ctx)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockPlaceService implements service.PlaceService for unit tests.
type mockPlaceService struct {
	getPlaceByIDFn    func(ctx context.Context, placeID uuid.UUID) (models.Place, error)
	getPlacesByUserFn func(ctx context.Context, userID uuid.UUID) ([]models.Place, error)
	createPlaceFn     func(ctx context.Context, creator uuid.UUID, create models.CreatePlaceRequest, imagePath string) (models.Place, error)
	updatePlaceFn     func(ctx context.Context, requester uuid.UUID, placeID uuid.UUID, update models.UpdatePlaceRequest) (models.Place, error)
	deletePlaceFn     func(ctx context.Context, requester uuid.UUID, placeID uuid.UUID) error
}

func (m *mockPlaceService) GetPlaceByID(ctx context.Context, placeID uuid.UUID) (models.Place, error) {
	return m.getPlaceByIDFn(ctx, placeID)
}

func (m *mockPlaceService) GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]models.Place, error) {
	return m.getPlacesByUserFn(ctx, userID)
}

func (m *mockPlaceService) CreatePlace(ctx context.Context, creator uuid.UUID, create models.CreatePlaceRequest, imagePath string) (models.Place, error) {
	return m.createPlaceFn(ctx, creator, create, imagePath)
}

func (m *mockPlaceService) UpdatePlace(ctx context.Context, requester uuid.UUID, placeID uuid.UUID, update models.UpdatePlaceRequest) (models.Place, error) {
	return m.updatePlaceFn(ctx, requester, placeID, update)
}

func (m *mockPlaceService) DeletePlace(ctx context.Context, requester uuid.UUID, placeID uuid.UUID) error {
	return m.deletePlaceFn(ctx, requester, placeID)
}

// mockImageStorage implements store.ImageStorage for unit tests.
type mockImageStorage struct {
	saveFn   func(ctx context.Context, originalName string, content io.Reader) (string, error)
	deleteFn func(ctx context.Context, path string) error
}

func (m *mockImageStorage) Save(ctx context.Context, originalName string, content io.Reader) (string, error) {
	return m.saveFn(ctx, originalName, content)
}

func (m *mockImageStorage) Delete(ctx context.Context, path string) error {
	return m.deleteFn(ctx, path)
}

// newHandlerWithServices builds a Handler with the given service mocks and
// the real request validator.
func newHandlerWithServices(t *testing.T, auth service.AuthService, places service.PlaceService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:  auth,
		PlaceService: places,
	}
	images := &mockImageStorage{
		saveFn: func(_ context.Context, originalName string, _ io.Reader) (string, error) {
			return "uploads/images/" + originalName, nil
		},
		deleteFn: func(context.Context, string) error { return nil },
	}
	return NewHandler(svcs, images, validators.NewRequestValidator(logger.Nop()), logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}
