package config

import (
	"errors"
	"io/fs"
	"strconv"
	"time"

	"github.com/dmitrijs2005/passvault/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvFile               = "PASSVAULT_ENV_FILE"
	EnvHTTPAddr           = "PASSVAULT_HTTP_ADDR"
	EnvGRPCAddr           = "PASSVAULT_GRPC_ADDR"
	EnvSecretKey          = "PASSVAULT_SECRET_KEY"
	EnvTokenFormat        = "PASSVAULT_TOKEN_FORMAT"
	EnvSessionTTL         = "PASSVAULT_SESSION_TTL"
	EnvHasher             = "PASSVAULT_HASHER"
	EnvCORSAllowedOrigins = "PASSVAULT_CORS_ALLOWED_ORIGINS"
	EnvLogLevel           = "PASSVAULT_LOG_LEVEL"
	EnvShutdownTimeout    = "PASSVAULT_SHUTDOWN_TIMEOUT"
	EnvSeed               = "PASSVAULT_SEED"
)

// withEnvFile returns a lookup that consults lookup first and falls back to
// the .env file it names in PASSVAULT_ENV_FILE (default ".env"). A missing
// file is not an error. The process environment is left untouched.
func withEnvFile(lookup func(string) (string, bool)) (func(string) (string, bool), error) {
	path, ok := lookup(EnvFile)
	if !ok || path == "" {
		path = ".env"
	}

	file, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return lookup, nil
		}
		return nil, err
	}

	return func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}, nil
}

// parseEnv overlays PASSVAULT_* variables read through lookup.
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(key)
		if !ok || v == "" {
			return nil
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*dst = d
		return nil
	}

	str(EnvHTTPAddr, &config.EndpointAddrHTTP)
	str(EnvGRPCAddr, &config.EndpointAddrGRPC)
	str(EnvSecretKey, &config.SecretKey)
	str(EnvTokenFormat, &config.TokenFormat)
	str(EnvHasher, &config.Hasher)
	str(EnvLogLevel, &config.LogLevel)

	if v, ok := lookup(EnvCORSAllowedOrigins); ok && v != "" {
		config.CORSAllowedOrigins = flagx.SplitList(v)
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		config.Seed = seed
	}

	if err := dur(EnvSessionTTL, &config.SessionTTL); err != nil {
		return err
	}
	return dur(EnvShutdownTimeout, &config.ShutdownTimeout)
}
