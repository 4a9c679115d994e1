package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/store"
	"github.com/avetikov/go-places-api/models"
	"github.com/google/uuid"
)

// placeService is the concrete implementation of PlaceService.
// It coordinates place CRUD across the place repository, the owner
// back-references maintained by the store layer, the image storage and the
// geocoder.
type placeService struct {
	placeRepository store.PlaceRepository
	userRepository  store.UserRepository
	imageStorage    store.ImageStorage
	geocoder        Geocoder
	logger          *logger.Logger
}

// NewPlaceService constructs a PlaceService wired to the given repositories,
// image storage and geocoder.
func NewPlaceService(placeRepository store.PlaceRepository, userRepository store.UserRepository, imageStorage store.ImageStorage, geocoder Geocoder, logger *logger.Logger) PlaceService {
	return &placeService{
		placeRepository: placeRepository,
		userRepository:  userRepository,
		imageStorage:    imageStorage,
		geocoder:        geocoder,
		logger:          logger,
	}
}

// GetPlaceByID returns a single place.
//
// A missing place surfaces as store.ErrPlaceNotFound.
func (p *placeService) GetPlaceByID(ctx context.Context, placeID uuid.UUID) (models.Place, error) {
	log := logger.FromContext(ctx)

	place, err := p.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		log.Err(err).Str("place_id", placeID.String()).Msg("place search by id failed")
		return models.Place{}, fmt.Errorf("place search by id failed: %w", err)
	}

	return place, nil
}

// GetPlacesByUser returns every place created by the given user, oldest
// first. A user without places yields an empty slice, not an error.
func (p *placeService) GetPlacesByUser(ctx context.Context, userID uuid.UUID) ([]models.Place, error) {
	log := logger.FromContext(ctx)

	places, err := p.placeRepository.FindPlacesByCreator(ctx, userID)
	if err != nil {
		log.Err(err).Str("user_id", userID.String()).Msg("place search by creator failed")
		return nil, fmt.Errorf("place search by creator failed: %w", err)
	}

	return places, nil
}

// CreatePlace geocodes the address, verifies the creator exists and persists
// the place together with the creator's back-reference in one transaction.
//
// Returns:
//   - ErrCreatorNotFound when the creator id does not belong to any user.
//   - A wrapped storage error on persistence failure.
func (p *placeService) CreatePlace(ctx context.Context, creator uuid.UUID, create models.CreatePlaceRequest, imagePath string) (models.Place, error) {
	log := logger.FromContext(ctx)

	if _, err := p.userRepository.FindUserByID(ctx, creator); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("creator", creator.String()).Msg("creator does not exist")
			return models.Place{}, ErrCreatorNotFound
		}

		log.Err(err).Str("creator", creator.String()).Msg("creator lookup failed")
		return models.Place{}, fmt.Errorf("creator lookup failed: %w", err)
	}

	location, err := p.geocoder.Geocode(ctx, create.Address)
	if err != nil {
		log.Err(err).Str("address", create.Address).Msg("geocoding failed")
		return models.Place{}, fmt.Errorf("geocoding failed: %w", err)
	}

	place := models.Place{
		Title:       create.Title,
		Description: create.Description,
		Address:     create.Address,
		Location:    location,
		Image:       imagePath,
		Creator:     creator,
	}

	createdPlace, err := p.placeRepository.CreatePlace(ctx, place)
	if err != nil {
		log.Err(err).Str("creator", creator.String()).Msg("place creation ended with error")
		return models.Place{}, fmt.Errorf("place creation ended with error: %w", err)
	}

	return createdPlace, nil
}

// UpdatePlace applies the mutable fields (title, description) of an existing
// place after verifying that the requester created it.
//
// Returns:
//   - store.ErrPlaceNotFound (wrapped) when the place does not exist.
//   - ErrNotPlaceOwner when the requester is not the creator.
func (p *placeService) UpdatePlace(ctx context.Context, requester uuid.UUID, placeID uuid.UUID, update models.UpdatePlaceRequest) (models.Place, error) {
	log := logger.FromContext(ctx)

	place, err := p.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		log.Err(err).Str("place_id", placeID.String()).Msg("place search by id failed")
		return models.Place{}, fmt.Errorf("place search by id failed: %w", err)
	}

	if place.Creator != requester {
		log.Error().
			Str("place_id", placeID.String()).
			Str("creator", place.Creator.String()).
			Str("requester", requester.String()).
			Msg("requester is not the creator of the place")
		return models.Place{}, ErrNotPlaceOwner
	}

	place.Title = update.Title
	place.Description = update.Description

	updatedPlace, err := p.placeRepository.UpdatePlace(ctx, place)
	if err != nil {
		log.Err(err).Str("place_id", placeID.String()).Msg("place update ended with error")
		return models.Place{}, fmt.Errorf("place update ended with error: %w", err)
	}

	return updatedPlace, nil
}

// DeletePlace removes an existing place after verifying ownership. The place
// row and the creator's back-reference go away in one transaction; the
// associated image file is removed afterwards on a best-effort basis and a
// failure there never fails the request.
//
// Returns:
//   - store.ErrPlaceNotFound (wrapped) when the place does not exist.
//   - ErrNotPlaceOwner when the requester is not the creator.
func (p *placeService) DeletePlace(ctx context.Context, requester uuid.UUID, placeID uuid.UUID) error {
	log := logger.FromContext(ctx)

	place, err := p.placeRepository.FindPlaceByID(ctx, placeID)
	if err != nil {
		log.Err(err).Str("place_id", placeID.String()).Msg("place search by id failed")
		return fmt.Errorf("place search by id failed: %w", err)
	}

	if place.Creator != requester {
		log.Error().
			Str("place_id", placeID.String()).
			Str("creator", place.Creator.String()).
			Str("requester", requester.String()).
			Msg("requester is not the creator of the place")
		return ErrNotPlaceOwner
	}

	if err := p.placeRepository.DeletePlace(ctx, place); err != nil {
		log.Err(err).Str("place_id", placeID.String()).Msg("place deletion ended with error")
		return fmt.Errorf("place deletion ended with error: %w", err)
	}

	if place.Image != "" {
		// best effort: the record is gone, an orphaned file is acceptable
		go func(ctx context.Context, image string) {
			if deleteErr := p.imageStorage.Delete(ctx, image); deleteErr != nil {
				p.logger.Err(deleteErr).Str("image", image).Msg("failed to delete place image")
			}
		}(context.WithoutCancel(ctx), place.Image)
	}

	return nil
}
