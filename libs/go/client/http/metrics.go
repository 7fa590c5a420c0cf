package http

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusCollector records outbound request metrics.
type PrometheusCollector struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// NewPrometheusCollector registers the outbound metrics on reg.
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	c := &PrometheusCollector{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "handyline",
			Subsystem: "http_client",
			Name:      "request_duration_seconds",
			Help:      "Duration of outbound HTTP requests, retries included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"client", "method", "status"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "handyline",
			Subsystem: "http_client",
			Name:      "request_errors_total",
			Help:      "Outbound HTTP requests that failed or returned an error status.",
		}, []string{"client", "method"}),
	}
	reg.MustRegister(c.duration, c.errors)
	return c
}

func (c *PrometheusCollector) RecordRequestDuration(client, method string, statusCode int, duration time.Duration) {
	c.duration.WithLabelValues(client, method, strconv.Itoa(statusCode)).Observe(duration.Seconds())
}

func (c *PrometheusCollector) RecordRequestError(client, method string) {
	c.errors.WithLabelValues(client, method).Inc()
}
