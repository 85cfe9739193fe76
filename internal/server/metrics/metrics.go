// Package metrics exposes Prometheus collectors for vault operations and
// HTTP traffic, registered on a private registry so tests can build as many
// instances as they like.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "passvault"

// Outcome labels recorded for every vault operation.
const (
	OutcomeOK           = "ok"
	OutcomeInvalid      = "invalid"
	OutcomeExists       = "exists"
	OutcomeUnauthorized = "unauthorized"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

// Metrics owns the registry and the collectors registered on it.
type Metrics struct {
	registry *prometheus.Registry

	operations   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New builds a Metrics with Go runtime and process collectors attached.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vault_operations_total",
			Help:      "Vault service operations by outcome.",
		}, []string{"operation", "outcome"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "REST request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	m.registry.MustRegister(
		m.operations,
		m.httpDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOperation counts one finished vault operation.
func (m *Metrics) ObserveOperation(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// ObserveHTTP records the latency of one REST request.
func (m *Metrics) ObserveHTTP(method, route string, code int, d time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Operations returns the operation counter for assertions in tests.
func (m *Metrics) Operations() *prometheus.CounterVec {
	return m.operations
}
