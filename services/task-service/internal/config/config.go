package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// TaskServiceConfig is read once at startup from the environment.
type TaskServiceConfig struct {
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8001"`

	Mongo  MongoConfig
	Google GoogleConfig
	Token  TokenConfig
	CORS   CORSConfig
	Log    LogConfig
}

// MongoConfig holds the document store connection settings.
type MongoConfig struct {
	URL            string        `env:"MONGO_URL"`
	Database       string        `env:"DB_NAME"`
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
}

// GoogleConfig holds identity provider settings.
// An empty ClientID is allowed at startup; identity exchange then fails as misconfigured.
type GoogleConfig struct {
	ClientID     string        `env:"GOOGLE_CLIENT_ID"`
	CertsTimeout time.Duration `env:"GOOGLE_CERTS_TIMEOUT" envDefault:"10s"`
}

// TokenConfig holds session token settings.
type TokenConfig struct {
	Secret        string `env:"SECRET_KEY"                  envDefault:"dev-secret-change-me"`
	Algorithm     string `env:"JWT_ALGORITHM"               envDefault:"HS256"`
	Issuer        string `env:"JWT_ISSUER"                  envDefault:"task-tracker-api"`
	ExpireMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES" envDefault:"10080"`
}

// AccessTokenExpiresIn returns the session token lifetime.
func (c TokenConfig) AccessTokenExpiresIn() time.Duration {
	return time.Duration(c.ExpireMinutes) * time.Minute
}

// CORSConfig lists allowed cross-origin sources; "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load parses the environment into a TaskServiceConfig and validates it.
func Load() (*TaskServiceConfig, error) {
	cfg, err := env.ParseAs[TaskServiceConfig]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	cfg.CORS.AllowedOrigins = normalizeOrigins(cfg.CORS.AllowedOrigins)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *TaskServiceConfig) validate() error {
	var errs []error
	if c.Mongo.URL == "" {
		errs = append(errs, errors.New("missing MONGO_URL environment variable"))
	}
	if c.Mongo.Database == "" {
		errs = append(errs, errors.New("missing DB_NAME environment variable"))
	}
	if c.Token.Secret == "" {
		errs = append(errs, errors.New("SECRET_KEY must not be empty"))
	}
	if c.Token.ExpireMinutes <= 0 {
		errs = append(errs, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be positive, got %d", c.Token.ExpireMinutes))
	}
	return errors.Join(errs...)
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
