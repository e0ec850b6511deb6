// Package metrics provides Prometheus metrics for the TalentLink client.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the client's Prometheus metrics.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	// Gateway metrics
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authFailures    prometheus.Counter
	multipartBytes  prometheus.Counter

	// Session metrics
	sessionChanges prometheus.Counter
	sessionClears  prometheus.Counter

	// Reference cache metrics
	cacheHits   *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager. Metrics register on the manager's own
// registry so the default Go collectors never pollute a client's /metrics.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "talentlink",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "requests_total",
		Help:      "Total API requests by resource, method, and status code",
	}, []string{"resource", "method", "status"})

	m.requestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "request_duration_milliseconds",
		Help:      "API request latency in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"resource", "method"})

	m.authFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "auth_failures_total",
		Help:      "Total 401 responses that forced a logout",
	})

	m.multipartBytes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "multipart_bytes_total",
		Help:      "Total bytes uploaded in multipart requests",
	})

	m.sessionChanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "session_changes_total",
		Help:      "Total session replacements (login/registration)",
	})

	m.sessionClears = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "session_clears_total",
		Help:      "Total session clears (logout or forced by 401)",
	})

	m.cacheHits = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "reference_cache_hits_total",
		Help:      "Reference list cache hits by list kind",
	}, []string{"kind"})

	m.cacheMisses = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "reference_cache_misses_total",
		Help:      "Reference list cache misses by list kind",
	}, []string{"kind"})
}

// Handler returns an HTTP handler exposing the manager's registry.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package-level helpers against the global manager.

// RecordRequest counts one API request.
func RecordRequest(resource, method, status string) {
	if globalManager.enabled {
		globalManager.requests.WithLabelValues(resource, method, status).Inc()
	}
}

// RecordRequestDuration observes one API request's latency.
func RecordRequestDuration(resource, method string, latencyMs float64) {
	if globalManager.enabled {
		globalManager.requestDuration.WithLabelValues(resource, method).Observe(latencyMs)
	}
}

// RecordAuthFailure counts a 401 that forced a logout.
func RecordAuthFailure() {
	if globalManager.enabled {
		globalManager.authFailures.Inc()
	}
}

// RecordMultipartBytes counts uploaded multipart payload bytes.
func RecordMultipartBytes(n int) {
	if globalManager.enabled && n > 0 {
		globalManager.multipartBytes.Add(float64(n))
	}
}

// RecordSessionChange counts a session replacement.
func RecordSessionChange() {
	if globalManager.enabled {
		globalManager.sessionChanges.Inc()
	}
}

// RecordSessionClear counts a session clear.
func RecordSessionClear() {
	if globalManager.enabled {
		globalManager.sessionClears.Inc()
	}
}

// RecordCacheHit counts a reference cache hit for a list kind.
func RecordCacheHit(kind string) {
	if globalManager.enabled {
		globalManager.cacheHits.WithLabelValues(kind).Inc()
	}
}

// RecordCacheMiss counts a reference cache miss for a list kind.
func RecordCacheMiss(kind string) {
	if globalManager.enabled {
		globalManager.cacheMisses.WithLabelValues(kind).Inc()
	}
}

// Handler exposes the global manager's registry.
func Handler() http.Handler {
	return globalManager.Handler()
}
