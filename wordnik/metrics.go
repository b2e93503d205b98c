package wordnik

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordnik_client",
			Name:      "requests_total",
			Help:      "Wordnik API calls by operation and HTTP status (\"error\" for transport failures).",
		},
		[]string{"operation", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wordnik_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of a single Wordnik API round trip.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observeRequest(op, code string, elapsed time.Duration) {
	requestsTotal.WithLabelValues(op, code).Inc()
	requestDuration.WithLabelValues(op).Observe(elapsed.Seconds())
}
