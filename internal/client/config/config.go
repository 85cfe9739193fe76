// Package config handles configuration for the interactive client:
// defaults, then an optional JSON file (-c/-config), then flags.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds runtime settings for the passvault client.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults points the client at a local server.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 5 * time.Second
}

// Load builds a Config from args (without the program name).
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args; it panics on error.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
