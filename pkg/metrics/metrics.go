package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_http_requests_total",
		Help: "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "app_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// Domain metrics
	PropertiesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_properties_created_total",
		Help: "Total number of property listings created.",
	})
	RequirementsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_requirements_created_total",
		Help: "Total number of client requirements created.",
	})
	MatchAlertsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_match_alerts_sent_total",
		Help: "Total number of requirement match alerts delivered.",
	})
	MediaUploadedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_media_uploaded_total",
		Help: "Total number of media files uploaded to buckets.",
	})
	OTPIssuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "app_otp_issued_total",
		Help: "Total number of one-time codes issued.",
	})
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "app_login_attempts_total",
		Help: "Total number of login attempts (successful and failed).",
	}, []string{"status"})
)
