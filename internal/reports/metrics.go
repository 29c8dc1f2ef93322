package reports

import (
	"log-reader/internal/shared/metrics"
)

var (
	// metricRunTotal counts report runs by error code; a successful run has the empty code.
	metricRunTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "run_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricRunDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "run_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	).WithLabelValues()

	// metricFilesInFlight is the number of files of the batch currently being processed.
	metricFilesInFlight = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "files_in_flight",
		},
	)
)
