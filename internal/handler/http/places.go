package http

import (
	"encoding/json"
	"net/http"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/utils"
	"github.com/avetikov/go-places-api/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) getPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	placeID, err := uuid.Parse(chi.URLParam(r, "pid"))
	if err != nil {
		log.Err(err).Msg("invalid place id was passed")
		http.Error(w, "invalid place id was passed", http.StatusBadRequest)
		return
	}

	place, err := h.services.PlaceService.GetPlaceByID(ctx, placeID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusOK)
}

func (h *Handler) getPlacesByUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := uuid.Parse(chi.URLParam(r, "uid"))
	if err != nil {
		log.Err(err).Msg("invalid user id was passed")
		http.Error(w, "invalid user id was passed", http.StatusBadRequest)
		return
	}

	places, err := h.services.PlaceService.GetPlacesByUser(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// a user without places reads as "not found" on this endpoint
	if len(places) == 0 {
		log.Debug().Str("user_id", userID.String()).Msg("no places for the provided user id")
		utils.WriteJSON(w, models.ErrorResponse{Message: "could not find places for the provided user id"}, http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.PlacesResponse{Places: places}, http.StatusOK)
}

func (h *Handler) createPlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var create models.CreatePlaceRequest
	var imagePath string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			log.Err(err).Msg("invalid multipart form was passed")
			http.Error(w, "invalid multipart form was passed", http.StatusBadRequest)
			return
		}

		create = models.CreatePlaceRequest{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
			Address:     r.FormValue("address"),
		}

		path, err := h.saveUploadedImage(r)
		if err != nil {
			log.Err(err).Msg("saving uploaded place image failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		imagePath = path
	} else {
		if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	if err := h.validator.Validate(ctx, create); err != nil {
		h.respondError(w, r, err)
		return
	}

	place, err := h.services.PlaceService.CreatePlace(ctx, userID, create, imagePath)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusCreated)
}

func (h *Handler) updatePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	placeID, err := uuid.Parse(chi.URLParam(r, "pid"))
	if err != nil {
		log.Err(err).Msg("invalid place id was passed")
		http.Error(w, "invalid place id was passed", http.StatusBadRequest)
		return
	}

	var update models.UpdatePlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, update); err != nil {
		h.respondError(w, r, err)
		return
	}

	place, err := h.services.PlaceService.UpdatePlace(ctx, userID, placeID, update)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// 201 on update is long-standing observable behaviour of this API
	utils.WriteJSON(w, models.PlaceResponse{Place: place}, http.StatusCreated)
}

func (h *Handler) deletePlace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	placeID, err := uuid.Parse(chi.URLParam(r, "pid"))
	if err != nil {
		log.Err(err).Msg("invalid place id was passed")
		http.Error(w, "invalid place id was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.PlaceService.DeletePlace(ctx, userID, placeID); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Deleted place."}, http.StatusOK)
}
