// Package metrics exposes Prometheus instrumentation for the HTTP server.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry        *prometheus.Registry
	requestDuration *prometheus.HistogramVec
	requestsTotal   *prometheus.CounterVec
	cacheLookups    *prometheus.CounterVec
	readingsTotal   *prometheus.CounterVec
}

func NewCollector() *Collector {
	m := &Collector{
		registry: prometheus.NewRegistry(),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astro_request_duration_seconds",
				Help:    "Time spent processing request",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astro_requests_total",
				Help: "Total number of requests",
			},
			[]string{"route", "method", "status"},
		),
		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astro_response_cache_lookups_total",
				Help: "Response cache lookups by result",
			},
			[]string{"result"},
		),
		readingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astro_readings_computed_total",
				Help: "Readings computed by calculator mode and zodiac",
			},
			[]string{"mode", "zodiac"},
		),
	}

	m.registry.MustRegister(
		m.requestDuration,
		m.requestsTotal,
		m.cacheLookups,
		m.readingsTotal,
	)

	return m
}

func (m *Collector) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
	m.requestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

func (m *Collector) RecordCacheLookup(hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

func (m *Collector) RecordReading(mode, zodiac string) {
	if m == nil {
		return
	}
	m.readingsTotal.WithLabelValues(mode, zodiac).Inc()
}

// Handler serves the collector's registry in the Prometheus text format.
func (m *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
