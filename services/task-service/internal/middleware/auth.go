package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/model"
	"github.com/vasapolrittideah/task-tracker-api/services/task-service/internal/usecase"
	"github.com/vasapolrittideah/task-tracker-api/shared/httputil"
)

type contextKey struct{}

var userContextKey = contextKey{}

// Authenticator resolves a session token to its user.
// usecase.AuthUsecase satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// NewAuthMiddleware requires an "Authorization: Bearer <token>" header and
// injects the resolved user into the request context.
func NewAuthMiddleware(authenticator Authenticator) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := httputil.BearerToken(r)
			if err != nil {
				WriteError(w, r, fmt.Errorf("%w: %w", usecase.ErrUnauthenticated, err))
				return
			}

			user, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				WriteError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

// UserFromContext returns the user injected by the auth middleware.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok && user != nil
}

func ContextWithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
