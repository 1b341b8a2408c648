package handler

import (
	"net/http"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/middleware"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

// decodeRequest reads a JSON body into dst and validates it.
// On failure the 422 response has already been written and false is returned.
func decodeRequest(w http.ResponseWriter, r *http.Request, v *validator.Validator, dst any) bool {
	if err := httputil.DecodeJSON(r, dst); err != nil {
		middleware.WriteError(w, r, &validator.ValidationError{
			Fields: map[string]string{"body": "body must be a valid JSON object"},
		})
		return false
	}

	if err := v.Struct(dst); err != nil {
		middleware.WriteError(w, r, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	if err := httputil.WriteJSON(w, status, body); err != nil {
		middleware.WriteError(w, r, err)
	}
}
