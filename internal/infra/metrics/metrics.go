// Package metrics provides Prometheus metrics collection for the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus collectors behind a private
// registry, keeping default global state out of tests.
type Metrics struct {
	registry *prometheus.Registry

	RecycleEventsTotal *prometheus.CounterVec
	PointsAwardedTotal prometheus.Counter
	CO2SavedKgTotal    prometheus.Counter
	FacilitySearches   *prometheus.CounterVec
	HTTPRequestsTotal  *prometheus.CounterVec
}

// New creates and registers the application metrics.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		RecycleEventsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecycle",
				Subsystem: "recycling",
				Name:      "events_total",
				Help:      "Total number of recycle actions",
			},
			[]string{"device_type"},
		),
		PointsAwardedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ecycle",
				Subsystem: "recycling",
				Name:      "points_awarded_total",
				Help:      "Total points awarded across all recycle actions",
			},
		),
		CO2SavedKgTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "ecycle",
				Subsystem: "recycling",
				Name:      "co2_saved_kg_total",
				Help:      "Total CO2 savings in kilograms across all recycle actions",
			},
		),
		FacilitySearches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecycle",
				Subsystem: "locator",
				Name:      "searches_total",
				Help:      "Total facility searches by search mode",
			},
			[]string{"mode"},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ecycle",
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
	}

	registry.MustRegister(
		m.RecycleEventsTotal,
		m.PointsAwardedTotal,
		m.CO2SavedKgTotal,
		m.FacilitySearches,
		m.HTTPRequestsTotal,
	)

	return m
}

// Handler returns an HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
