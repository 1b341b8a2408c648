package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/config"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/handler"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/auth"
	"github.com/vasapolrittideah/task-tracker-api/shared/logger"
	"github.com/vasapolrittideah/task-tracker-api/shared/metrics"
	"github.com/vasapolrittideah/task-tracker-api/shared/mongodb"
	"github.com/vasapolrittideah/task-tracker-api/shared/provider"
	"github.com/vasapolrittideah/task-tracker-api/shared/validator"
)

const shutdownTimeout = 30 * time.Second

func main() {
	_ = godotenv.Load() // .env is optional

	cfg, err := config.Load()
	if err != nil {
		log := logger.New("info", "json")
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := mongodb.Connect(ctx, cfg.Mongo.URL, cfg.Mongo.ConnectTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongo")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("failed to disconnect from mongo")
		}
	}()

	db := client.Database(cfg.Mongo.Database)
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connection established")

	userRepo := repository.NewUserMongoRepository(ctx, log, db)
	taskListRepo := repository.NewTaskListMongoRepository(ctx, log, db)
	statusCheckRepo := repository.NewStatusCheckMongoRepository(db)

	googleProvider, err := provider.NewGoogleOAuthProvider(ctx, cfg.Google.CertsTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create google id token verifier")
	}
	if cfg.Google.ClientID == "" {
		log.Warn().Msg("GOOGLE_CLIENT_ID is not set; google sign-in will fail")
	}

	jwtAuth, err := auth.NewJWTAuthenticator(
		cfg.Token.Secret,
		cfg.Token.Algorithm,
		auth.WithIssuer(cfg.Token.Issuer),
		auth.WithTTL(cfg.Token.AccessTokenExpiresIn()),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create jwt authenticator")
	}

	v, err := validator.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create validator")
	}

	collector := metrics.NewCollector("task_tracker")

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:             log,
		Metrics:            collector,
		Validator:          v,
		HealthChecker:      client,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		AuthUsecase:        usecase.NewAuthUsecase(userRepo, googleProvider, jwtAuth, collector, cfg),
		TaskUsecase:        usecase.NewTaskUsecase(taskListRepo),
		StatusUsecase:      usecase.NewStatusUsecase(statusCheckRepo),
	})

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("http server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("http server failed")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down http server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	log.Info().Msg("http server stopped")
}
