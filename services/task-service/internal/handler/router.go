package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/middleware"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/metrics"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

// RouterDeps collects everything NewRouter wires together.
type RouterDeps struct {
	Logger             *zerolog.Logger
	Metrics            *metrics.Collector
	Validator          *validator.Validator
	HealthChecker      HealthChecker
	CORSAllowedOrigins []string

	AuthUsecase   usecase.AuthUsecase
	TaskUsecase   usecase.TaskUsecase
	StatusUsecase usecase.StatusUsecase
}

// NewRouter builds the HTTP API.
//
// Middleware order:
//
//	real ip → logger → request id → access log → metrics → recovery → CORS
//
// Routes under /api that touch user data sit behind the bearer guard.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(hlog.NewHandler(*deps.Logger))
	r.Use(hlog.RequestIDHandler("req_id", "X-Request-Id"))
	r.Use(hlog.RemoteAddrHandler("ip"))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Stringer("url", r.URL).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request handled")
	}))
	r.Use(deps.Metrics.Middleware)
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigins))

	authHandler := NewAuthHandler(deps.AuthUsecase, deps.Validator, deps.Logger)
	taskHandler := NewTaskHandler(deps.TaskUsecase, deps.Validator)
	statusHandler := NewStatusHandler(deps.StatusUsecase, deps.Validator)
	healthHandler := NewHealthHandler(deps.HealthChecker)

	r.Get("/healthz", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/", healthHandler.Root)

		r.Post("/auth/google", authHandler.GoogleLogin)

		r.Post("/status", statusHandler.CreateStatusCheck)
		r.Get("/status", statusHandler.ListStatusChecks)

		r.Group(func(r chi.Router) {
			r.Use(middleware.NewAuthMiddleware(deps.AuthUsecase))

			r.Get("/user", authHandler.CurrentUser)
			r.Get("/tasks", taskHandler.GetTasks)
			r.Post("/tasks", taskHandler.SaveTasks)
		})
	})

	return r
}
