// Package config loads process configuration from DONATE_* environment
// variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/Ridwanullahi-super/chimbo-helping-hands/devmode"
	"github.com/Ridwanullahi-super/chimbo-helping-hands/tokenstore"
)

// Environment selects runtime behavior. Only development enables the mock
// fallback.
type Environment string

const (
	EnvDevelopment Environment = devmode.Environment
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Prefix is the environment variable prefix.
const Prefix = "DONATE"

// Config holds the configuration shared by the CLI and the mock backend.
// Environment variables are parsed from the DONATE_ prefix.
type Config struct {
	// API base URL; the client falls back to its own default when empty.
	APIURL string `envconfig:"API_URL" default:"http://localhost:5000/api"`

	Environment Environment `envconfig:"ENVIRONMENT" default:"production"`

	// Durable token store: file, sqlite or memory.
	TokenStore string `envconfig:"TOKEN_STORE" default:"file"`
	TokenPath  string `envconfig:"TOKEN_PATH" default:""`

	// Zero means no timeout.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`

	// Development mock backend
	MockAddr   string `envconfig:"MOCK_ADDR" default:":5000"`
	MockPrefix string `envconfig:"MOCK_PREFIX" default:"/api"`
}

// ResolveDefaults validates enumerations and derives the token path when it
// is not set.
func (c *Config) ResolveDefaults() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}

	switch c.TokenStore {
	case tokenstore.KindFile, tokenstore.KindSQLite, tokenstore.KindMemory:
	default:
		return fmt.Errorf("unsupported TOKEN_STORE: %s", c.TokenStore)
	}

	if c.TokenPath == "" && c.TokenStore != tokenstore.KindMemory {
		p, err := tokenstore.DefaultPath(c.TokenStore)
		if err != nil {
			return fmt.Errorf("derive token path: %w", err)
		}
		c.TokenPath = p
	}

	if c.HTTPTimeout < 0 {
		return fmt.Errorf("HTTP_TIMEOUT must not be negative: %s", c.HTTPTimeout)
	}

	if c.MockPrefix != "" && !strings.HasPrefix(c.MockPrefix, "/") {
		c.MockPrefix = "/" + c.MockPrefix
	}
	c.MockPrefix = strings.TrimRight(c.MockPrefix, "/")
	return nil
}

// New creates a Config by parsing environment variables.
// Example: DONATE_API_URL, DONATE_ENVIRONMENT
func New() (*Config, error) {
	var cfg Config

	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}

	if err := cfg.ResolveDefaults(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("api_url", cfg.APIURL).
		Str("environment", string(cfg.Environment)).
		Str("token_store", cfg.TokenStore).
		Str("token_path", cfg.TokenPath).
		Dur("http_timeout", cfg.HTTPTimeout).
		Bool("debug", cfg.Debug).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a hermetic config: in-memory tokens, testing
// environment, no env lookups.
func NewForTesting() *Config {
	return &Config{
		APIURL:      "http://localhost:5000/api",
		Environment: EnvTesting,
		TokenStore:  tokenstore.KindMemory,
		MockAddr:    "127.0.0.1:0",
		MockPrefix:  "/api",
	}
}

// IsDevelopment reports whether the mock fallback may be used.
func (c *Config) IsDevelopment() bool {
	return devmode.Enabled(string(c.Environment))
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}
