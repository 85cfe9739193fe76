// Package rest serves the vault over JSON/HTTP. Routes, header names and
// response envelopes follow the browser client's expectations.
package rest

import (
	"net/http"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	"github.com/rs/cors"
)

// RouterOptions carries the optional pieces of the router.
type RouterOptions struct {
	// AllowedOrigins for CORS; empty means any origin.
	AllowedOrigins []string
	// Observer receives per-route latency; nil disables it.
	Observer HTTPObserver
	// Metrics, when set, is served at /metrics.
	Metrics http.Handler
}

// NewRouter builds the full handler chain: CORS, logging, recovery, routes.
func NewRouter(svc VaultService, l logging.Logger, opts RouterOptions) http.Handler {
	l = l.With("module", "rest")
	h := &handlers{svc: svc, logger: l}

	mux := http.NewServeMux()
	handle := func(pattern, route string, fn http.HandlerFunc) {
		mux.Handle(pattern, withMetrics(opts.Observer, route, fn))
	}

	handle("GET /api/health", "/api/health", h.health)
	handle("POST /api/register", "/api/register", h.register)
	handle("POST /api/login", "/api/login", h.login)
	handle("POST /api/logout", "/api/logout", h.logout)
	handle("GET /api/passwords", "/api/passwords", h.listPasswords)
	handle("POST /api/passwords", "/api/passwords", h.addPassword)
	handle("PUT /api/passwords/{id}", "/api/passwords/{id}", h.updatePassword)
	handle("DELETE /api/passwords/{id}", "/api/passwords/{id}", h.deletePassword)
	if opts.Metrics != nil {
		mux.Handle("GET /metrics", opts.Metrics)
	}
	mux.HandleFunc("/", h.notFound)

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", common.AuthorizationHeaderName, common.UsernameHeaderName},
		ExposedHeaders: []string{RequestIDHeader},
	})

	var handler http.Handler = mux
	handler = withRecovery(l, handler)
	handler = c.Handler(handler)
	handler = withLogging(l, handler)
	return handler
}
