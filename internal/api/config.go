// Package api assembles the HTTP server: configuration, routing and lifecycle.
package api

import (
	"os"
	"time"

	"github.com/rmendes/imobi/internal/logger"
)

// EnvJWTSecret is the name of the environment variable for the JWT signing
// secret. It takes precedence over the config file.
const EnvJWTSecret = "IMOBI_JWT_SECRET"

// devFallbackSecret keeps development setups working without any
// configuration. It is public knowledge and therefore worthless as a secret;
// the server logs loudly whenever it is in use.
const devFallbackSecret = "imobi-dev-secret-do-not-use-in-production!!"

// APIConfig configures the REST API HTTP server.
type APIConfig struct {
	// Port is the HTTP port for the API endpoints.
	// Default: 3000
	Port int `mapstructure:"port" validate:"omitempty,min=1,max=65535" yaml:"port"`

	// ReadTimeout is the maximum duration for reading the entire request,
	// including the body.
	// Default: 10s
	ReadTimeout time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response.
	// Default: 10s
	WriteTimeout time.Duration `mapstructure:"write_timeout" yaml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	// Default: 60s
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`

	// JWT configures session token generation and validation.
	JWT JWTConfig `mapstructure:"jwt" yaml:"jwt"`
}

// JWTConfig configures session token generation.
type JWTConfig struct {
	// Secret is the HMAC signing key for session tokens.
	// Must be at least 32 characters long.
	// Can also be set via the IMOBI_JWT_SECRET environment variable, which
	// takes precedence over the config file.
	Secret string `mapstructure:"secret" yaml:"secret"`

	// TokenDuration is the session token lifetime.
	// Default: 24h
	TokenDuration time.Duration `mapstructure:"token_duration" yaml:"token_duration"`
}

// applyDefaults fills in zero values with sensible defaults.
func (c *APIConfig) applyDefaults() {
	if c.Port == 0 {
		c.Port = 3000
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.JWT.TokenDuration == 0 {
		c.JWT.TokenDuration = 24 * time.Hour
	}
}

// GetJWTSecret returns the JWT secret: environment variable first, then the
// config file, then the insecure development fallback (with a warning).
func (c *APIConfig) GetJWTSecret() string {
	envSecret := os.Getenv(EnvJWTSecret)
	if envSecret != "" {
		if c.JWT.Secret != "" && c.JWT.Secret != envSecret {
			logger.Warn("JWT secret from environment variable overrides config file value",
				"env_var", EnvJWTSecret)
		}
		return envSecret
	}
	if c.JWT.Secret != "" {
		return c.JWT.Secret
	}

	logger.Warn("no JWT secret configured, using the built-in development secret; "+
		"tokens signed with it offer NO security",
		"env_var", EnvJWTSecret)
	return devFallbackSecret
}
