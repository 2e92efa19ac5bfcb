package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_http_requests_total",
			Help: "Total number of HTTP requests by method and status code",
		},
		[]string{"method", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reviews_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	ReviewsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_created_total",
			Help: "Total number of reviews stored",
		},
		[]string{"entity"}, // "user_review", "publication_review"
	)

	ReviewConflicts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_conflicts_total",
			Help: "Total number of rejected duplicate reviews",
		},
		[]string{"entity"},
	)

	TokenVerifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_token_verifications_total",
			Help: "Inbound token verification outcomes",
		},
		[]string{"result"}, // "valid", "invalid", "unavailable", "rejected"
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "reviews_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// RecordHTTPRequest records one served request.
func RecordHTTPRequest(method string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func RecordReviewCreated(entity string) {
	ReviewsCreated.WithLabelValues(entity).Inc()
}

func RecordReviewConflict(entity string) {
	ReviewConflicts.WithLabelValues(entity).Inc()
}

func RecordTokenVerification(result string) {
	TokenVerifications.WithLabelValues(result).Inc()
}
