package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "someday"

// Metrics owns a private registry so that independent instances (one per
// test, for example) never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	HolidayFetches       *prometheus.CounterVec
	HolidayShared        prometheus.Counter
	BoardPersistFailures prometheus.Counter
	AttachmentWrites     *prometheus.CounterVec
	RateLimited          prometheus.Counter
}

// New creates and registers every collector.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HolidayFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holiday_fetch_total",
			Help:      "Remote holiday lookups by provider and result.",
		}, []string{"provider", "result"}),
		HolidayShared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holiday_singleflight_shared_total",
			Help:      "Holiday year lookups whose remote request was shared with another caller.",
		}),
		BoardPersistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "board_persist_failures_total",
			Help:      "Board mutations whose persist step failed.",
		}),
		AttachmentWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attachment_writes_total",
			Help:      "Attachment add attempts by result.",
		}, []string{"result"}),
		RateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_rate_limited_total",
			Help:      "Requests rejected by the per-client rate limiter.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HolidayFetches,
		m.HolidayShared,
		m.BoardPersistFailures,
		m.AttachmentWrites,
		m.RateLimited,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mostly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
