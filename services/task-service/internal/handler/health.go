package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/payload"
)

const healthCheckTimeout = 2 * time.Second

// HealthChecker reports whether the document store is reachable.
// *mongo.Client satisfies it.
type HealthChecker interface {
	Ping(ctx context.Context, rp *readpref.ReadPref) error
}

type HealthHandler struct {
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Root answers GET /api/.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, payload.MessageResponse{Message: "Hello World"})
}

// Health pings the primary.
// GET /healthz
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx, readpref.Primary()); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("health check failed")
		writeJSON(w, r, http.StatusServiceUnavailable, payload.HealthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, r, http.StatusOK, payload.HealthResponse{Status: "ok"})
}
