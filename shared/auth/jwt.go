package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
	ErrMissingSecret        = errors.New("missing signing secret")
	ErrInvalidToken         = errors.New("invalid token")
	ErrMissingPrincipal     = errors.New("token has no subject")
)

// DefaultTokenTTL is used unless WithTTL supplies a positive lifetime.
const DefaultTokenTTL = 7 * 24 * time.Hour

// JWTAuthenticator issues and validates HMAC-signed session tokens.
// The principal is carried in the standard "sub" claim.
type JWTAuthenticator struct {
	secret []byte
	method *jwt.SigningMethodHMAC
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

// Option configures a JWTAuthenticator.
type Option func(*JWTAuthenticator)

// WithIssuer sets the "iss" claim written to and required on tokens.
func WithIssuer(issuer string) Option {
	return func(a *JWTAuthenticator) {
		a.issuer = issuer
	}
}

// WithTTL sets the token lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(a *JWTAuthenticator) {
		if ttl > 0 {
			a.ttl = ttl
		}
	}
}

// WithClock replaces time.Now for both issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(a *JWTAuthenticator) {
		a.now = now
	}
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
// algorithm must name an HMAC method (HS256, HS384 or HS512).
func NewJWTAuthenticator(secret, algorithm string, opts ...Option) (*JWTAuthenticator, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}

	a := &JWTAuthenticator{
		secret: []byte(secret),
		method: method,
		ttl:    DefaultTokenTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// GenerateToken signs a token for principal that expires after the configured TTL.
func (a *JWTAuthenticator) GenerateToken(principal string) (string, time.Time, error) {
	if principal == "" {
		return "", time.Time{}, ErrMissingPrincipal
	}

	now := a.now()
	expiresAt := now.Add(a.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   principal,
		Issuer:    a.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	tokenStr, err := jwt.NewWithClaims(a.method, claims).SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenStr, expiresAt, nil
}

// ValidateToken checks signature, algorithm, expiry and issuer and returns the principal.
// Every failure wraps ErrInvalidToken or ErrMissingPrincipal.
func (a *JWTAuthenticator) ValidateToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	if _, err := a.ValidateTokenWithClaims(tokenString, claims); err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrMissingPrincipal
	}

	return claims.Subject, nil
}

// ValidateTokenWithClaims validates a JWT token and parses it into the provided claims type.
// The claims parameter should be a pointer to a struct that implements jwt.Claims.
func (a *JWTAuthenticator) ValidateTokenWithClaims(tokenString string, claims jwt.Claims) (*jwt.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{a.method.Alg()}),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return token, nil
}
