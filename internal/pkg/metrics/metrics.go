package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "repairbook",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "repairbook",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	bookingsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "repairbook",
			Name:      "bookings_created_total",
			Help:      "Successfully committed appointments.",
		},
	)

	bookingsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "repairbook",
			Name:      "bookings_rejected_total",
			Help:      "Rejected booking attempts by reason.",
		},
		[]string{"reason"},
	)

	redemptionsCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "repairbook",
			Name:      "redemptions_created_total",
			Help:      "Referral redemptions created by kind (earning/consumption).",
		},
		[]string{"kind"},
	)

	creditConsumedCents = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "repairbook",
			Name:      "credit_consumed_cents_total",
			Help:      "Partner credit consumed against bookings, in cents.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			bookingsCreated,
			bookingsRejected,
			redemptionsCreated,
			creditConsumedCents,
		)
	})
}

func ObserveHTTP(method, path, status string, seconds float64) {
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

func IncBookingCreated() {
	bookingsCreated.Inc()
}

func IncBookingRejected(reason string) {
	bookingsRejected.WithLabelValues(reason).Inc()
}

func IncRedemptionCreated(kind string) {
	redemptionsCreated.WithLabelValues(kind).Inc()
}

func AddCreditConsumed(cents int64) {
	if cents > 0 {
		creditConsumedCents.Add(float64(cents))
	}
}
