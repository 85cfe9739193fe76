package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/passvault/internal/flagx"
)

// parseFlags understands -a (server address) and -r (per request timeout,
// e.g. "5s").
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-r"})

	fs := flag.NewFlagSet("passvault-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "r", cfg.RequestTimeout, "timeout for a single request")

	return fs.Parse(args)
}
