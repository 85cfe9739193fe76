package config

import (
	"flag"
	"io"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/flagx"
)

// parseFlags overlays command-line flags.
//
// Supported flags (short forms):
//
//	-a string     REST bind address (e.g., ":8080")
//	-g string     gRPC bind address (e.g., ":50051")
//	-s string     JWT HMAC secret key
//	-f string     session token format: opaque | jwt
//	-t duration   session lifetime (e.g., "24h"); 0 disables expiry
//	-m string     password hasher: sha256 | argon2id
//	-o string     comma separated CORS origins
//	-l string     log level
//	-seed         register demo users and records at startup
//
// Only these flags are considered; anything else in args (such as -c) is
// filtered out by flagx.FilterArgs first.
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-s", "-f", "-t", "-m", "-o", "-l", "-seed"})

	fs := flag.NewFlagSet("passvault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run REST server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "address and port to run gRPC server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.TokenFormat, "f", config.TokenFormat, "session token format (opaque|jwt)")
	fs.DurationVar(&config.SessionTTL, "t", config.SessionTTL, "session lifetime, 0 for none")
	fs.StringVar(&config.Hasher, "m", config.Hasher, "password hasher (sha256|argon2id)")
	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "comma separated CORS origins")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.BoolVar(&config.Seed, "seed", config.Seed, "seed demo data")

	if err := fs.Parse(args); err != nil {
		return err
	}

	config.CORSAllowedOrigins = flagx.SplitList(*origins)
	return nil
}
