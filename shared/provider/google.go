package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"
)

var (
	ErrMissingAudience = errors.New("google client id is not configured")
	ErrInvalidIDToken  = errors.New("invalid google id token")
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// GoogleIdentity is the verified subset of a Google ID token payload.
// Profile claims are nil when the token omits them.
type GoogleIdentity struct {
	Subject string
	Email   *string
	Name    *string
	Picture *string
}

// TokenValidator checks an ID token's signature, expiry and audience.
// *idtoken.Validator satisfies it.
type TokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// GoogleOAuthProvider verifies Google-issued ID tokens against Google's published keys.
type GoogleOAuthProvider struct {
	validator TokenValidator
}

// NewGoogleOAuthProvider builds a provider whose key fetches use an HTTP client with the given timeout.
func NewGoogleOAuthProvider(ctx context.Context, timeout time.Duration) (*GoogleOAuthProvider, error) {
	validator, err := idtoken.NewValidator(ctx, option.WithHTTPClient(&http.Client{Timeout: timeout}))
	if err != nil {
		return nil, fmt.Errorf("create id token validator: %w", err)
	}

	return NewGoogleOAuthProviderWithValidator(validator), nil
}

// NewGoogleOAuthProviderWithValidator wraps an existing validator.
func NewGoogleOAuthProviderWithValidator(validator TokenValidator) *GoogleOAuthProvider {
	return &GoogleOAuthProvider{validator: validator}
}

// VerifyIDToken validates idToken for audience and returns the identity it asserts.
func (p *GoogleOAuthProvider) VerifyIDToken(ctx context.Context, idToken, audience string) (*GoogleIdentity, error) {
	if audience == "" {
		return nil, ErrMissingAudience
	}
	if idToken == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrInvalidIDToken)
	}

	payload, err := p.validator.Validate(ctx, idToken, audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidIDToken, err)
	}

	if payload.Audience != audience {
		return nil, fmt.Errorf("%w: audience %q does not match", ErrInvalidIDToken, payload.Audience)
	}
	if !googleIssuers[payload.Issuer] {
		return nil, fmt.Errorf("%w: wrong issuer %q", ErrInvalidIDToken, payload.Issuer)
	}
	if payload.Subject == "" {
		return nil, fmt.Errorf("%w: token has no subject", ErrInvalidIDToken)
	}

	return &GoogleIdentity{
		Subject: payload.Subject,
		Email:   stringClaim(payload.Claims, "email"),
		Name:    stringClaim(payload.Claims, "name"),
		Picture: stringClaim(payload.Claims, "picture"),
	}, nil
}

func stringClaim(claims map[string]any, key string) *string {
	v, ok := claims[key].(string)
	if !ok {
		return nil
	}
	return &v
}
