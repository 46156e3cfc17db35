// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsCollector is the metrics interface used by services and middleware
type MetricsCollector interface {
	RecordResidentCreated()
	RecordValidationFailure(field string)
	RecordHTTPRequest(method, route string, status int, duration time.Duration)
}

// Collector is the Prometheus implementation of MetricsCollector
type Collector struct {
	residentsCreated   prometheus.Counter
	validationFailures *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics on reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		residentsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "villa_residents_created_total",
			Help: "Total number of residents created",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "villa_resident_validation_failures_total",
			Help: "Total number of rejected resident create requests by field",
		}, []string{"field"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "villa_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "villa_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.residentsCreated,
		c.validationFailures,
		c.httpRequests,
		c.httpDuration,
	)

	return c
}

// RecordResidentCreated counts a persisted resident
func (c *Collector) RecordResidentCreated() {
	c.residentsCreated.Inc()
}

// RecordValidationFailure counts a create request rejected on field
func (c *Collector) RecordValidationFailure(field string) {
	c.validationFailures.WithLabelValues(field).Inc()
}

// RecordHTTPRequest counts a served request and observes its latency
func (c *Collector) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NopCollector discards every measurement
type NopCollector struct{}

func (NopCollector) RecordResidentCreated()                               {}
func (NopCollector) RecordValidationFailure(string)                       {}
func (NopCollector) RecordHTTPRequest(string, string, int, time.Duration) {}
