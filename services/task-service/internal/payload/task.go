package payload

import "time"

type SaveTasksRequest struct {
	Tasks []any `json:"tasks" validate:"required"`
}

type SaveTasksResponse struct {
	OK        bool      `json:"ok"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetTasksResponse omits updated_at until the first save.
type GetTasksResponse struct {
	Tasks     []any      `json:"tasks"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
