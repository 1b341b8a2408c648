package handler

import (
	"net/http"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/middleware"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
	validator   *validator.Validator
}

func NewTaskHandler(taskUsecase usecase.TaskUsecase, v *validator.Validator) *TaskHandler {
	return &TaskHandler{taskUsecase: taskUsecase, validator: v}
}

// GetTasks returns the caller's saved task list.
// GET /api/tasks
func (h *TaskHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, usecase.ErrUnauthenticated)
		return
	}

	list, err := h.taskUsecase.GetTasks(r.Context(), user.ID)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	resp := payload.GetTasksResponse{Tasks: list.Tasks}
	if !list.UpdatedAt.IsZero() {
		resp.UpdatedAt = &list.UpdatedAt
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// SaveTasks replaces the caller's task list.
// POST /api/tasks
func (h *TaskHandler) SaveTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		middleware.WriteError(w, r, usecase.ErrUnauthenticated)
		return
	}

	var req payload.SaveTasksRequest
	if !decodeRequest(w, r, h.validator, &req) {
		return
	}

	list, err := h.taskUsecase.SaveTasks(r.Context(), user.ID, req.Tasks)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, payload.SaveTasksResponse{OK: true, UpdatedAt: list.UpdatedAt})
}
