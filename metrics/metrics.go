// Package metrics collects import run metrics.
//
// All methods are safe to call on a nil *Metrics, in which case nothing is
// recorded.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "confimport"

// Metrics holds the metrics of a single import run.
type Metrics struct {
	registry *prometheus.Registry

	operations      *prometheus.CounterVec
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	phaseDuration   *prometheus.HistogramVec
}

// New creates metrics registered to a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Operations applied, by type.",
		}, []string{"type"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "requests_total",
			Help:      "Repository requests, by method and result.",
		}, []string{"method", "result"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "repository",
			Name:      "request_duration_seconds",
			Help:      "Repository request duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}, []string{"method"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "lookups_total",
			Help:      "Repository cache lookups, by result.",
		}, []string{"result"}),
		phaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "phase_duration_seconds",
			Help:      "Duration of import phases in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"phase"}),
	}
	m.registry.MustRegister(m.operations, m.requests, m.requestDuration, m.cacheLookups, m.phaseDuration)
	return m
}

// Registry returns the registry the metrics are registered to.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Operation counts an applied operation of the given type.
func (m *Metrics) Operation(opType string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(opType).Inc()
}

// Request records a repository request that started at start.
func (m *Metrics) Request(method string, start time.Time, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	m.requests.WithLabelValues(method, result).Inc()
	m.requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// CacheLookup counts a cache hit or miss.
func (m *Metrics) CacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// Phase returns a function that records the duration of a phase when
// called.
//
//	defer m.Phase("validate")()
func (m *Metrics) Phase(name string) func() {
	if m == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		m.phaseDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	}
}

// WriteFile writes all metrics to file in the text exposition format.
func (m *Metrics) WriteFile(file string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(file, m.registry); err != nil {
		return errors.Wrap(err, "write metrics")
	}
	return nil
}
