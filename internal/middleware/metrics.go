package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swarna",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "swarna",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	finalizeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "swarna",
			Name:      "document_finalize_total",
			Help:      "Finalize attempts by document type and outcome",
		},
		[]string{"document_type", "outcome"},
	)
)

// ObserveFinalize records a finalize attempt outcome ("finalized",
// "validation_failed", "conflict", "partial_failure", "rollback_failed").
func ObserveFinalize(documentType, outcome string) {
	finalizeTotal.WithLabelValues(documentType, outcome).Inc()
}

// Metrics creates a Gin middleware recording request counts and latencies.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		// FullPath is the route template, keeping label cardinality bounded.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
	}
}
