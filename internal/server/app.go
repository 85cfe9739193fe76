// Package server assembles the passvault server: stores, vault service,
// REST and gRPC transports. It runs them side by side and shuts both down
// on SIGINT/SIGTERM or when the parent context ends.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/config"
	"github.com/dmitrijs2005/passvault/internal/server/metrics"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passvault/internal/server/rest"
	"github.com/dmitrijs2005/passvault/internal/server/services"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/passvault/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	vault   *services.VaultService
	metrics *metrics.Metrics
	rest    *rest.Server
	grpc    *gs.GRPCServer
}

// NewApp wires the application with a JSON logger on stdout.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, logging.NewJSONLogger(os.Stdout, c.LogLevel))
}

func newApp(c *config.Config, logger logging.Logger) (*App, error) {
	hasher, err := auth.NewHasher(c.Hasher)
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	tokens, err := auth.NewTokenGenerator(c.TokenFormat, []byte(c.SecretKey), c.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("token generator init error: %w", err)
	}

	m := metrics.New()
	rm := repomanager.NewInMemoryRepositoryManager(tokens, c.SessionTTL)
	vs := services.NewVaultService(rm, hasher, logger, m)

	if c.Seed {
		if _, err := vs.SeedDemoData(context.Background()); err != nil {
			return nil, fmt.Errorf("seeding demo data: %w", err)
		}
	}

	router := rest.NewRouter(vs, logger, rest.RouterOptions{
		AllowedOrigins: c.CORSAllowedOrigins,
		Observer:       m,
		Metrics:        m.Handler(),
	})

	return &App{
		config:  c,
		logger:  logger,
		vault:   vs,
		metrics: m,
		rest:    rest.NewServer(c.EndpointAddrHTTP, router, logger, c.ShutdownTimeout),
		grpc:    gs.NewGRPCServer(c.EndpointAddrGRPC, logger, vs),
	}, nil
}

// Run blocks until ctx is canceled, a termination signal arrives or one of
// the servers fails. The first server error is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...",
		"http", app.config.EndpointAddrHTTP,
		"grpc", app.config.EndpointAddrGRPC,
		"token_format", app.config.TokenFormat,
		"hasher", app.config.Hasher,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return app.rest.Run(ctx) })
	g.Go(func() error { return app.grpc.Run(ctx) })

	if app.config.SessionTTL > 0 {
		g.Go(func() error {
			app.purgeSessions(ctx, purgeInterval(app.config.SessionTTL))
			return nil
		})
	}

	err := g.Wait()
	app.logger.Info(context.Background(), "App stopped")
	return err
}

// purgeInterval checks a few times per TTL, but no more than once a second.
func purgeInterval(ttl time.Duration) time.Duration {
	return max(ttl/4, time.Second)
}

func (app *App) purgeSessions(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.vault.PurgeExpiredSessions(ctx)
		}
	}
}
