package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus metrics for the identity collaborator.
type Metrics struct {
	// OwnerLookups counts identity lookups by result (found, not_found, error).
	OwnerLookups *prometheus.CounterVec

	// OwnerLookupDuration observes identity lookup round-trip time.
	OwnerLookupDuration prometheus.Histogram
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		OwnerLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "accountsvc_owner_lookups_total",
				Help: "Total identity service owner lookups by result",
			},
			[]string{"result"},
		),
		OwnerLookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "accountsvc_owner_lookup_duration_seconds",
			Help:    "Duration of identity service owner lookups",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
