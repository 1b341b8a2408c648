package middleware

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

const (
	detailUnauthenticated = "Could not validate credentials"
	detailUserNotFound    = "User not found"
	detailMisconfigured   = "Server not configured with GOOGLE_CLIENT_ID"
	detailValidation      = "invalid request body"
	detailInternal        = "something went wrong"
)

// WriteError maps err onto a status code and the {"detail": ...} body.
// Unknown errors are logged and reported as 500 without their text.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		tokenErr *usecase.IdentityTokenError
		validErr *validator.ValidationError
	)

	switch {
	case errors.As(err, &validErr):
		writeDetail(w, http.StatusUnprocessableEntity, payload.ErrorResponse{
			Detail: detailValidation,
			Errors: validErr.Fields,
		})
	case errors.As(err, &tokenErr):
		writeDetail(w, http.StatusBadRequest, payload.ErrorResponse{Detail: "Invalid ID token: " + tokenErr.Reason})
	case errors.Is(err, usecase.ErrServerMisconfigured):
		hlog.FromRequest(r).Error().Err(err).Msg("identity exchange attempted without a google client id")
		writeDetail(w, http.StatusInternalServerError, payload.ErrorResponse{Detail: detailMisconfigured})
	case errors.Is(err, usecase.ErrUnauthenticated):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeDetail(w, http.StatusUnauthorized, payload.ErrorResponse{Detail: detailUnauthenticated})
	case errors.Is(err, usecase.ErrUserNotFound):
		writeDetail(w, http.StatusNotFound, payload.ErrorResponse{Detail: detailUserNotFound})
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("request failed")
		writeDetail(w, http.StatusInternalServerError, payload.ErrorResponse{Detail: detailInternal})
	}
}

func writeDetail(w http.ResponseWriter, status int, body payload.ErrorResponse) {
	_ = httputil.WriteJSON(w, status, body)
}
