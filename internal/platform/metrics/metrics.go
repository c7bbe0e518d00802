// Package metrics exposes the service's Prometheus metrics. A nil *Manager is
// valid and records nothing, so callers never branch on whether metrics are
// enabled.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Skip kinds reported by the aggregation engine.
const (
	SkipOwnGoal       = "own_goal"
	SkipUnattributed  = "unattributed"
	SkipForeignMatch  = "foreign_match"
	SkipUnknownPlayer = "unknown_player"
	SkipUnknownTeam   = "unknown_team"
)

type Manager struct {
	namespace         string
	histogramBuckets  []float64
	constLabels       prometheus.Labels
	registry          *prometheus.Registry
	runtimeCollectors bool

	aggregationSkipped  *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	recomputeRuns       *prometheus.CounterVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	cacheLookups *prometheus.CounterVec
	breakerState *prometheus.GaugeVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "league_dashboard",
		histogramBuckets: prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	if m.runtimeCollectors {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.aggregationSkipped = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "aggregation_skipped_total",
		Help:        "Records left out of an aggregate, by aggregate and reason",
		ConstLabels: m.constLabels,
	}, []string{"aggregate", "kind"})

	m.aggregationDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Name:        "aggregation_duration_seconds",
		Help:        "Time spent loading and computing an aggregate",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"aggregate"})

	m.recomputeRuns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "recompute_divisions_total",
		Help:        "Division recomputations run by the internal job, by result",
		ConstLabels: m.constLabels,
	}, []string{"result"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "http_requests_total",
		Help:        "HTTP requests by route pattern, method and status code",
		ConstLabels: m.constLabels,
	}, []string{"route", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request duration by route pattern and method",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"route", "method"})

	m.cacheLookups = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Name:        "cache_lookups_total",
		Help:        "Read-through cache lookups by store and result",
		ConstLabels: m.constLabels,
	}, []string{"store", "result"})

	m.breakerState = auto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Name:        "circuit_breaker_state",
		Help:        "Circuit breaker state: 0 closed, 1 half open, 2 open",
		ConstLabels: m.constLabels,
	}, []string{"name"})
}

// RecordSkipped adds n skipped records of kind to aggregate. Zero is a no-op.
func (m *Manager) RecordSkipped(aggregate, kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.aggregationSkipped.WithLabelValues(aggregate, kind).Add(float64(n))
}

func (m *Manager) ObserveAggregation(aggregate string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.aggregationDuration.WithLabelValues(aggregate).Observe(elapsed.Seconds())
}

func (m *Manager) RecordRecompute(success bool) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.recomputeRuns.WithLabelValues(result).Inc()
}

func (m *Manager) RecordHTTPRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

func (m *Manager) RecordCacheLookup(store string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(store, result).Inc()
}

// SetBreakerState accepts the breaker's state names.
func (m *Manager) SetBreakerState(name, state string) {
	if m == nil {
		return
	}
	value := 0.0
	switch state {
	case "half_open":
		value = 1
	case "open":
		value = 2
	}
	m.breakerState.WithLabelValues(name).Set(value)
}

// Handler serves the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}
