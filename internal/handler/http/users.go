package http

import (
	"encoding/json"
	"net/http"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/utils"
	"github.com/avetikov/go-places-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.services.AuthService.ListUsers(ctx)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users}, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var signup models.SignupRequest
	var imagePath string

	if isMultipart(r) {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			log.Err(err).Msg("invalid multipart form was passed")
			http.Error(w, "invalid multipart form was passed", http.StatusBadRequest)
			return
		}

		signup = models.SignupRequest{
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}

		path, err := h.saveUploadedImage(r)
		if err != nil {
			log.Err(err).Msg("saving uploaded signup image failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		imagePath = path
	} else {
		if err := json.NewDecoder(r.Body).Decode(&signup); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}
	}

	if err := h.validator.Validate(ctx, signup); err != nil {
		h.respondError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, signup, imagePath)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("id", registeredUser.UserID.String()).Str("email", registeredUser.Email).Msg("user registered")

	utils.WriteJSON(w, models.AuthResponse{
		UserID: registeredUser.UserID,
		Email:  registeredUser.Email,
		Token:  token.SignedString,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var login models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&login); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(ctx, login); err != nil {
		h.respondError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, login)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("id", foundUser.UserID.String()).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Logged in!",
		UserID:  foundUser.UserID,
		Email:   foundUser.Email,
		Token:   token.SignedString,
	}, http.StatusOK)
}
