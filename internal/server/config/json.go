package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/passvault/internal/flagx"
	"github.com/dmitrijs2005/passvault/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell
// "absent" apart from "zero", so the file only overrides what it mentions.
// Durations accept "24h" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP   *string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC   *string         `json:"endpoint_addr_grpc"`
	SecretKey          *string         `json:"secret_key"`
	TokenFormat        *string         `json:"token_format"`
	SessionTTL         *timex.Duration `json:"session_ttl"`
	Hasher             *string         `json:"hasher"`
	CORSAllowedOrigins []string        `json:"cors_allowed_origins"`
	LogLevel           *string         `json:"log_level"`
	ShutdownTimeout    *timex.Duration `json:"shutdown_timeout"`
	Seed               *bool           `json:"seed"`
}

// parseJson loads the file named by -c/-config in args, if any.
func parseJson(config *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	c.apply(config)
	return nil
}

func (c *JsonConfig) apply(config *Config) {
	set := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(c.EndpointAddrHTTP, &config.EndpointAddrHTTP)
	set(c.EndpointAddrGRPC, &config.EndpointAddrGRPC)
	set(c.SecretKey, &config.SecretKey)
	set(c.TokenFormat, &config.TokenFormat)
	set(c.Hasher, &config.Hasher)
	set(c.LogLevel, &config.LogLevel)

	if c.CORSAllowedOrigins != nil {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.SessionTTL != nil {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.Seed != nil {
		config.Seed = *c.Seed
	}
}
