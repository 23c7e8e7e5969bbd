package metrics

import (
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the catalog service collectors. A nil *Metrics is valid and
// records nothing, which keeps tests and tools free of registry setup.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBOperationDuration *prometheus.HistogramVec
	CatalogOperations   *prometheus.CounterVec
	SeedRowsCreated     *prometheus.CounterVec
	AuthAttempts        *prometheus.CounterVec
	RateLimited         *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// New registers the collectors on reg under the given name prefix
func New(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	name := func(s string) string {
		if prefix == "" {
			return s
		}
		return sanitize(prefix) + "_" + s
	}

	m := &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: name("http_requests_total"),
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name("http_request_duration_seconds"),
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		DBOperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    name("db_operation_duration_seconds"),
				Help:    "Duration of database operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		CatalogOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: name("catalog_operations_total"),
				Help: "Total number of successful catalog write operations",
			},
			[]string{"entity", "operation"},
		),
		SeedRowsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: name("seed_rows_created_total"),
				Help: "Rows inserted by the seed routine",
			},
			[]string{"entity"},
		),
		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: name("auth_attempts_total"),
				Help: "Admin login attempts by result",
			},
			[]string{"result"},
		),
		RateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: name("rate_limited_total"),
				Help: "Requests rejected by the rate limiter",
			},
			[]string{"scope"},
		),
	}

	if g, ok := reg.(prometheus.Gatherer); ok {
		m.gatherer = g
	}
	return m
}

// ObserveHTTP records one served request
func (m *Metrics) ObserveHTTP(method, path, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

// TrackDBOperation starts a timer; call the returned func when the operation ends
func (m *Metrics) TrackDBOperation(operation string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.DBOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}
}

// RecordCatalogOperation counts a successful write on an entity
func (m *Metrics) RecordCatalogOperation(entity, operation string) {
	if m == nil {
		return
	}
	m.CatalogOperations.WithLabelValues(entity, operation).Inc()
}

// RecordSeed counts rows created by one seed run
func (m *Metrics) RecordSeed(categories, products, links int) {
	if m == nil {
		return
	}
	m.SeedRowsCreated.WithLabelValues("category").Add(float64(categories))
	m.SeedRowsCreated.WithLabelValues("product").Add(float64(products))
	m.SeedRowsCreated.WithLabelValues("platform_link").Add(float64(links))
}

// RecordAuthAttempt counts a login attempt with result "success" or "failure"
func (m *Metrics) RecordAuthAttempt(result string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(result).Inc()
}

// RecordRateLimited counts a rejected request
func (m *Metrics) RecordRateLimited(scope string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(scope).Inc()
}

// Handler exposes the registry the metrics were registered on
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func sanitize(prefix string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		}
		return '_'
	}, prefix)
}
