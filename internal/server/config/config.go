// Package config handles configuration for the server component: defaults,
// then environment (optionally seeded from a .env file), then a JSON file,
// then command-line flags. Each layer only overrides what it sets.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/passvault/internal/server/auth"
)

// Config holds runtime settings for the passvault server.
//
// Fields:
//   - EndpointAddrHTTP / EndpointAddrGRPC: bind addresses of the two transports.
//   - SecretKey: HMAC secret for JWT session tokens; required when TokenFormat is "jwt".
//   - TokenFormat: "opaque" (random hex) or "jwt".
//   - SessionTTL: session lifetime; zero keeps sessions until superseded or revoked.
//   - Hasher: "sha256" (unsalted, compatible) or "argon2id".
//   - CORSAllowedOrigins: origins allowed by the REST transport.
//   - LogLevel: debug, info, warn or error.
//   - ShutdownTimeout: grace period for in-flight REST requests.
//   - Seed: register demo users with sample records at startup.
type Config struct {
	EndpointAddrHTTP   string
	EndpointAddrGRPC   string
	SecretKey          string
	TokenFormat        string
	SessionTTL         time.Duration
	Hasher             string
	CORSAllowedOrigins []string
	LogLevel           string
	ShutdownTimeout    time.Duration
	Seed               bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.SecretKey = ""
	c.TokenFormat = auth.TokenFormatOpaque
	c.SessionTTL = 0
	c.Hasher = auth.HasherSHA256
	c.CORSAllowedOrigins = []string{"*"}
	c.LogLevel = "info"
	c.ShutdownTimeout = 10 * time.Second
	c.Seed = false
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.TokenFormat {
	case auth.TokenFormatOpaque:
	case auth.TokenFormatJWT:
		if c.SecretKey == "" {
			return fmt.Errorf("token format %q requires a secret key", c.TokenFormat)
		}
	default:
		return fmt.Errorf("unknown token format %q", c.TokenFormat)
	}

	switch c.Hasher {
	case auth.HasherSHA256, auth.HasherArgon2id:
	default:
		return fmt.Errorf("unknown hasher %q", c.Hasher)
	}

	if c.SessionTTL < 0 {
		return fmt.Errorf("session ttl must not be negative, got %s", c.SessionTTL)
	}
	return nil
}

// Load builds a Config from args (without the program name) and the process
// environment.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	lookup, err := withEnvFile(os.LookupEnv)
	if err != nil {
		return nil, fmt.Errorf("error reading env file: %w", err)
	}
	if err := parseEnv(cfg, lookup); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args; it panics on an unusable configuration.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
