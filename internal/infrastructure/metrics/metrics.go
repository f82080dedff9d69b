package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "server",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "devhub",
			Subsystem: "server",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	// Upload counters
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "gallery",
			Name:      "uploads_total",
			Help:      "Total file uploads",
		},
		[]string{"content_type", "status"},
	)

	UploadBytesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "gallery",
			Name:      "upload_bytes_total",
			Help:      "Total bytes uploaded",
		},
		[]string{"content_type"},
	)

	// Object storage operations
	StorageOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "gallery",
			Name:      "storage_operations_total",
			Help:      "Total object storage operations",
		},
		[]string{"operation", "status"},
	)

	StorageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "devhub",
			Subsystem: "gallery",
			Name:      "storage_duration_seconds",
			Help:      "Object storage operation duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation"},
	)

	// News fetches
	NewsFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "news",
			Name:      "fetches_total",
			Help:      "Total outbound news fetches",
		},
		[]string{"source", "status"},
	)

	NewsCacheHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "news",
			Name:      "cache_hits_total",
			Help:      "News responses served from the TTL cache",
		},
	)

	// Assistant calls
	AssistantCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "devhub",
			Subsystem: "assistant",
			Name:      "calls_total",
			Help:      "Total generative model calls",
		},
		[]string{"feature", "status"},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordUpload records a file upload
func RecordUpload(contentType, status string, bytes int64) {
	UploadsTotal.WithLabelValues(contentType, status).Inc()
	if status == "success" {
		UploadBytesTotal.WithLabelValues(contentType).Add(float64(bytes))
	}
}

// RecordStorageOperation records an object storage operation
func RecordStorageOperation(operation, status string, durationSec float64) {
	StorageOperationsTotal.WithLabelValues(operation, status).Inc()
	StorageDuration.WithLabelValues(operation).Observe(durationSec)
}

// RecordNewsFetch records an outbound news fetch
func RecordNewsFetch(source, status string) {
	NewsFetchesTotal.WithLabelValues(source, status).Inc()
}

// RecordAssistantCall records a generative model call
func RecordAssistantCall(feature, status string) {
	AssistantCallsTotal.WithLabelValues(feature, status).Inc()
}
