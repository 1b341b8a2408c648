package handler

import (
	"net/http"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/middleware"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

type StatusHandler struct {
	statusUsecase usecase.StatusUsecase
	validator     *validator.Validator
}

func NewStatusHandler(statusUsecase usecase.StatusUsecase, v *validator.Validator) *StatusHandler {
	return &StatusHandler{statusUsecase: statusUsecase, validator: v}
}

// CreateStatusCheck records a client check-in.
// POST /api/status
func (h *StatusHandler) CreateStatusCheck(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateStatusCheckRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	check, err := h.statusUsecase.CreateStatusCheck(r.Context(), req.ClientName)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, check)
}

// ListStatusChecks returns recorded check-ins.
// GET /api/status
func (h *StatusHandler) ListStatusChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.statusUsecase.ListStatusChecks(r.Context())
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, checks)
}
