package http

import (
	"log-reader/internal/shared/metrics"
)

// Scrapes and probes of the status server. Only GET routes exist, so the method is not a label.
var (
	metricStatusRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "requests_total",
		},
		[]string{"route", "status", metrics.FieldErrorCode},
	)

	metricStatusRequestDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubHTTP,
			Name:      "request_duration_seconds",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5},
		},
		[]string{"route"},
	)
)
