package payload

import "github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"

type GoogleAuthRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type GoogleAuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        *model.User `json:"user"`
}
