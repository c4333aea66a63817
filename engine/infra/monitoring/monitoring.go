// Package monitoring exposes prometheus metrics for the locator and
// redirect subsystems.
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcome labels.
const (
	OutcomeResolved = "resolved"
	OutcomeFuzzy    = "fuzzy"
	OutcomeNumeric  = "numeric"
	OutcomeNotFound = "not_found"
)

// Service owns the metrics registry and the subsystem counters.
type Service struct {
	registry *prometheus.Registry

	lookups   *prometheus.CounterVec
	redirects *prometheus.CounterVec
	rebuilds  prometheus.Counter
	indexSize prometheus.Gauge
}

// NewService builds a registry with process/go collectors and the
// directory-specific counters.
func NewService() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	s := &Service{
		registry: registry,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "indiepages_locator_lookups_total",
			Help: "Locator resolutions by outcome.",
		}, []string{"outcome"}),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "indiepages_redirects_total",
			Help: "Permanent redirects issued, by matched rule.",
		}, []string{"rule"}),
		rebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "indiepages_index_rebuilds_total",
			Help: "Canonical index rebuilds.",
		}),
		indexSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "indiepages_index_slugs",
			Help: "Slugs covered by the current index snapshot.",
		}),
	}
	registry.MustRegister(s.lookups, s.redirects, s.rebuilds, s.indexSize)
	return s
}

// RecordLookup counts a locator resolution outcome.
func (s *Service) RecordLookup(outcome string) {
	s.lookups.WithLabelValues(outcome).Inc()
}

// RecordRedirect counts a redirect by rule name.
func (s *Service) RecordRedirect(rule string) {
	s.redirects.WithLabelValues(rule).Inc()
}

// RecordRebuild counts an index rebuild and updates the size gauge.
func (s *Service) RecordRebuild(size int) {
	s.rebuilds.Inc()
	s.indexSize.Set(float64(size))
}

// Handler returns the /metrics HTTP handler.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
