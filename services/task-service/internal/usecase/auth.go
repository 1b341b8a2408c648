package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/config"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/repository"
	"github.com/vasapolrittideah/task-tracker-api/shared/auth"
	"github.com/vasapolrittideah/task-tracker-api/shared/metrics"
	"github.com/vasapolrittideah/task-tracker-api/shared/provider"
)

// TokenTypeBearer is reported alongside every issued access token.
const TokenTypeBearer = "bearer"

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	// ExchangeGoogleIDToken verifies a Google ID token, upserts the user and issues a session token.
	// Verification happens before any write.
	ExchangeGoogleIDToken(ctx context.Context, idToken string) (*AuthResult, error)

	// Authenticate resolves a session token to its user.
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// AuthResult is the outcome of a successful identity exchange.
type AuthResult struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
	User        *model.User
}

// IdentityVerifier validates an external identity token for an audience.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken, audience string) (*provider.GoogleIdentity, error)
}

var (
	ErrServerMisconfigured  = errors.New("server not configured with GOOGLE_CLIENT_ID")
	ErrInvalidIdentityToken = errors.New("invalid identity token")
	ErrUnauthenticated      = errors.New("could not validate credentials")
	ErrUserNotFound         = errors.New("user not found")
)

// IdentityTokenError carries the reason an identity token was rejected.
// It matches ErrInvalidIdentityToken with errors.Is.
type IdentityTokenError struct {
	Reason string
}

func (e *IdentityTokenError) Error() string {
	return ErrInvalidIdentityToken.Error() + ": " + e.Reason
}

func (e *IdentityTokenError) Unwrap() error {
	return ErrInvalidIdentityToken
}

type authUsecase struct {
	userRepo       repository.UserRepository
	verifier       IdentityVerifier
	jwtAuth        *auth.JWTAuthenticator
	metrics        *metrics.Collector
	taskServiceCfg *config.TaskServiceConfig
}

func NewAuthUsecase(
	userRepo repository.UserRepository,
	verifier IdentityVerifier,
	jwtAuth *auth.JWTAuthenticator,
	collector *metrics.Collector,
	taskServiceCfg *config.TaskServiceConfig,
) AuthUsecase {
	return &authUsecase{
		userRepo:       userRepo,
		verifier:       verifier,
		jwtAuth:        jwtAuth,
		metrics:        collector,
		taskServiceCfg: taskServiceCfg,
	}
}

func (u *authUsecase) ExchangeGoogleIDToken(ctx context.Context, idToken string) (*AuthResult, error) {
	audience := u.taskServiceCfg.Google.ClientID
	if audience == "" {
		u.metrics.RecordIdentityExchange(metrics.OutcomeMisconfig)
		return nil, ErrServerMisconfigured
	}

	identity, err := u.verifier.VerifyIDToken(ctx, idToken, audience)
	if err != nil {
		switch {
		case errors.Is(err, provider.ErrMissingAudience):
			u.metrics.RecordIdentityExchange(metrics.OutcomeMisconfig)
			return nil, ErrServerMisconfigured
		case errors.Is(err, provider.ErrInvalidIDToken):
			u.metrics.RecordIdentityExchange(metrics.OutcomeInvalidToken)
			return nil, &IdentityTokenError{Reason: err.Error()}
		default:
			u.metrics.RecordIdentityExchange(metrics.OutcomeError)
			return nil, fmt.Errorf("verify google id token: %w", err)
		}
	}

	user, err := u.userRepo.UpsertUser(ctx, repository.UpsertUserParams{
		ID:      identity.Subject,
		Email:   identity.Email,
		Name:    identity.Name,
		Picture: identity.Picture,
	})
	if err != nil {
		u.metrics.RecordIdentityExchange(metrics.OutcomeError)
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	accessToken, expiresAt, err := u.jwtAuth.GenerateToken(user.ID)
	if err != nil {
		u.metrics.RecordIdentityExchange(metrics.OutcomeError)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	u.metrics.RecordIdentityExchange(metrics.OutcomeSuccess)

	return &AuthResult{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}

func (u *authUsecase) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		u.metrics.RecordSessionValidation(metrics.OutcomeInvalidToken)
		return nil, ErrUnauthenticated
	}

	principal, err := u.jwtAuth.ValidateToken(token)
	if err != nil {
		u.metrics.RecordSessionValidation(metrics.OutcomeInvalidToken)
		return nil, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := u.userRepo.GetUser(ctx, principal)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			u.metrics.RecordSessionValidation(metrics.OutcomeUserNotFound)
			return nil, ErrUserNotFound
		}

		u.metrics.RecordSessionValidation(metrics.OutcomeError)
		return nil, fmt.Errorf("get user: %w", err)
	}

	u.metrics.RecordSessionValidation(metrics.OutcomeSuccess)

	return user, nil
}
