package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/middleware"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.Validator
	logger      *zerolog.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, v *validator.Validator, logger *zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   v,
		logger:      logger,
	}
}

// GoogleLogin exchanges a Google ID token for a session token.
// POST /api/auth/google
func (h *AuthHandler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	var req payload.GoogleAuthRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	result, err := h.authUsecase.ExchangeGoogleIDToken(r.Context(), req.IDToken)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	h.logger.Info().Str("user_id", result.User.ID).Msg("user signed in with google")

	writeJSON(w, r, http.StatusOK, payload.GoogleAuthResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
		User:        result.User,
	})
}

// CurrentUser returns the caller's user record.
// GET /api/user
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, usecase.ErrUnauthenticated)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}
