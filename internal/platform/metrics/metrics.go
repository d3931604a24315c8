package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CareEventsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_care_events_recorded_total",
			Help: "Total number of care events recorded",
		},
		[]string{"kind"},
	)

	RemindersComputed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_reminders_computed_total",
			Help: "Due items produced by reminder computations",
		},
		[]string{"kind", "status"},
	)

	ActivityReportsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shelter_activity_reports_generated_total",
			Help: "Total number of monthly activity reports generated",
		},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shelter_http_requests_total",
			Help: "HTTP requests by route pattern and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shelter_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)
