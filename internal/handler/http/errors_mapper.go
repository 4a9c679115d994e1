package http

import (
	"errors"
	"net/http"

	"github.com/avetikov/go-places-api/internal/logger"
	"github.com/avetikov/go-places-api/internal/service"
	"github.com/avetikov/go-places-api/internal/store"
	"github.com/avetikov/go-places-api/internal/utils"
	"github.com/avetikov/go-places-api/internal/validators"
	"github.com/avetikov/go-places-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrNotPlaceOwner:           http.StatusForbidden,
	service.ErrCreatorNotFound:         http.StatusInternalServerError,

	validators.ErrValidation: http.StatusUnprocessableEntity,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPlaceNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery:      http.StatusInternalServerError,
	store.ErrExecutingQuery:        http.StatusInternalServerError,
	store.ErrBeginningTransaction:  http.StatusInternalServerError,
	store.ErrCommittingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:    http.StatusInternalServerError,
	store.ErrScanningRow:           http.StatusInternalServerError,
	store.ErrScanningRows:          http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps a service/store error to its HTTP status and writes the
// JSON error body. Server-error classes keep a generic body so that internal
// details never leak, with one exception: a missing place creator keeps its
// original wording even though it is reported as a 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := http.StatusText(status)
	switch {
	case errors.Is(err, service.ErrCreatorNotFound):
		message = service.ErrCreatorNotFound.Error()
	case status < http.StatusInternalServerError:
		message = publicMessage(err, status)
	}

	log.Err(err).Int("status", status).Msg("request failed")
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}

// publicMessage returns the sentinel wording for a client-error class.
func publicMessage(err error, status int) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(status)
}
