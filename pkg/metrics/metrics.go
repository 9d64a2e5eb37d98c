// Package metrics provides the Prometheus registry reference for the Zoom
// client. The metrics themselves are defined next to the code they observe
// (pkg/client) and registered via promauto.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the Zoom client.
// All metrics are automatically registered via promauto in pkg/client.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/client):
//   - zoom_requests_total{endpoint, status} (Counter): Total requests by endpoint and HTTP status
//   - zoom_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - zoom_errors_total{kind} (Counter): Vendor errors by kind (bad_request, not_authorized, not_found, not_allowed, conflict, generic)
//
// Example Prometheus Queries:
//
//   # Request Error Rate
//   rate(zoom_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(zoom_request_duration_seconds_bucket[5m]))
//
//   # Auth Failures
//   rate(zoom_errors_total{kind="not_authorized"}[5m])
