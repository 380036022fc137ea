// Package metrics provides Prometheus metrics for the movie fetch service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequestsTotal counts calls to the movie provider.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "moviefetch",
			Name:      "upstream_requests_total",
			Help:      "Total number of requests sent to the movie provider",
		},
		[]string{"endpoint", "status"},
	)

	// UpstreamRequestDuration measures provider round trips.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "moviefetch",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of movie provider requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// CatalogImportedTotal counts movies upserted into the local catalog.
	CatalogImportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "moviefetch",
			Name:      "catalog_imported_total",
			Help:      "Total number of movies written to the catalog",
		},
	)
)

// RecordUpstream records one provider request.
func RecordUpstream(endpoint, status string, duration float64) {
	UpstreamRequestsTotal.WithLabelValues(endpoint, status).Inc()
	UpstreamRequestDuration.WithLabelValues(endpoint).Observe(duration)
}

// RecordImported records n movies written to the catalog.
func RecordImported(n int) {
	CatalogImportedTotal.Add(float64(n))
}
