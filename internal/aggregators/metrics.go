package aggregators

import (
	"log-reader/internal/shared/metrics"
)

// metricFileAggregatedTotal counts log files a worker finished with, labelled by error code.
// A file read to the end carries the empty error code even when some of its lines were skipped.
//
// Example: a file that vanished between the directory scan and the worker opening it is counted
// with error_code="AGG_9000"; a file cut short by the worker timeout with error_code="AGG_9002".
var (
	metricFileAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "file_aggregated_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	// metricLineProcessedTotal counts lines by outcome: counted, blank, decode_failed,
	// query_rejected or unknown_event_type.
	metricLineProcessedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "line_processed_total",
		},
		[]string{"outcome"},
	)

	metricRecordCountedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "record_counted_total",
		},
		[]string{"validity", "event_type"},
	)

	metricFileAggregationDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "file_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	).WithLabelValues()
)
