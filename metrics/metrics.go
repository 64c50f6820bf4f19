package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status_code"},
	)

	// Business metrics
	bookingsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of bookings created",
		},
	)

	bookingTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_status_transitions_total",
			Help: "Total number of booking status transitions",
		},
		[]string{"to_status"},
	)

	paymentChargesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_charges_total",
			Help: "Total number of simulated payment charges",
		},
		[]string{"status"},
	)

	contactMessagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "contact_messages_total",
			Help: "Total number of contact messages received",
		},
	)
)

// Handler returns the /metrics endpoint handler.
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// Middleware records request counts and latencies per route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, endpoint, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, endpoint, status).
			Observe(time.Since(start).Seconds())
	}
}

func RecordBookingCreated()             { bookingsCreatedTotal.Inc() }
func RecordBookingTransition(to string) { bookingTransitionsTotal.WithLabelValues(to).Inc() }
func RecordPaymentCharge(status string) { paymentChargesTotal.WithLabelValues(status).Inc() }
func RecordContactMessage()             { contactMessagesTotal.Inc() }
