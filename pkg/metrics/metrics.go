// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the calendar collectors. A nil *Metrics is valid and records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	DaysComputed  prometheus.Counter
	MonthDuration prometheus.Histogram
	CacheLookups  *prometheus.CounterVec
	AlertsQueued  *prometheus.CounterVec
}

// New registers all collectors on a fresh registry, along with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		DaysComputed: factory.NewCounter(prometheus.CounterOpts{
			Name: "cosmic_days_computed_total",
			Help: "Total cosmic days computed, excluding cache hits",
		}),
		MonthDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "cosmic_month_duration_seconds",
			Help:    "Time to compute a full month of cosmic days",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
		CacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmic_cache_lookups_total",
			Help: "Month cache lookups by result (hit, miss, error)",
		}, []string{"result"}),
		AlertsQueued: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "cosmic_alerts_enqueued_total",
			Help: "Alert jobs enqueued by event type",
		}, []string{"type"}),
	}
}

// Handler serves the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry for tests and extra collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveDays(n int) {
	if m == nil {
		return
	}
	m.DaysComputed.Add(float64(n))
}

func (m *Metrics) ObserveMonth(d time.Duration) {
	if m == nil {
		return
	}
	m.MonthDuration.Observe(d.Seconds())
}

// ObserveCache records a lookup result: "hit", "miss" or "error".
func (m *Metrics) ObserveCache(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveAlert(eventType string) {
	if m == nil {
		return
	}
	m.AlertsQueued.WithLabelValues(eventType).Inc()
}
