// ABOUTME: Prometheus implementation of the engine Metrics interface
// ABOUTME: Counts dispatched, discarded and failed fetches, dropped records and section failures

package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"course-search-api/core/domain"
)

// Metrics implements interfaces.Metrics
type Metrics struct {
	registry *prometheus.Registry

	dispatched     *prometheus.CounterVec
	discarded      *prometheus.CounterVec
	failed         *prometheus.CounterVec
	dropped        prometheus.Counter
	sectionsFailed *prometheus.CounterVec
	sessions       prometheus.Gauge
}

// New registers every collector on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		dispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "course_search_fetches_dispatched_total",
			Help: "Catalog fetches dispatched, by mode",
		}, []string{"mode"}),
		discarded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "course_search_fetches_discarded_total",
			Help: "Responses discarded because a newer fetch was issued",
		}, []string{"mode"}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "course_search_fetches_failed_total",
			Help: "Failed catalog fetches, by mode and error kind",
		}, []string{"mode", "kind"}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "course_search_records_dropped_total",
			Help: "Raw course records dropped during normalization",
		}),
		sectionsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "course_search_section_failures_total",
			Help: "Curated section loads that failed",
		}, []string{"section"}),
		sessions: factory.NewGauge(prometheus.GaugeOpts{
			Name: "course_search_sessions_active",
			Help: "Search sessions held by this instance",
		}),
	}
}

// FetchDispatched counts a dispatched fetch
func (m *Metrics) FetchDispatched(mode domain.SearchMode) {
	m.dispatched.WithLabelValues(string(mode)).Inc()
}

// FetchDiscarded counts a stale response
func (m *Metrics) FetchDiscarded(mode domain.SearchMode) {
	m.discarded.WithLabelValues(string(mode)).Inc()
}

// FetchFailed counts a failed fetch
func (m *Metrics) FetchFailed(mode domain.SearchMode, kind string) {
	m.failed.WithLabelValues(string(mode), kind).Inc()
}

// ItemsDropped counts records dropped by the normalizer
func (m *Metrics) ItemsDropped(count int) {
	m.dropped.Add(float64(count))
}

// SectionFailed counts a failed section load
func (m *Metrics) SectionFailed(section domain.SectionKey) {
	m.sectionsFailed.WithLabelValues(string(section)).Inc()
}

// SetSessions records the number of live sessions
func (m *Metrics) SetSessions(n int) {
	m.sessions.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
