package dispatchers

import (
	"log-reader/internal/shared/metrics"
)

var (
	// metricFileDispatchedTotal counts files by the outcome their worker reported.
	//
	// A file whose aggregation hit the worker timeout reports error_code="AGG_9002"; a worker
	// that did not report at all before the batch deadline is counted as error_code="DSP_9001";
	// a recovered panic as error_code="SYS_9000".
	metricFileDispatchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDispatch,
			Name:      "file_dispatched_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBatchDispatchedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDispatch,
			Name:      "batch_dispatched_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricBatchDuration = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDispatch,
			Name:      "batch_duration_seconds",
			Buckets:   metrics.DefBuckets,
		},
		[]string{},
	).WithLabelValues()

	// metricWorkerAbandonedTotal counts batches that returned while some workers were still running.
	metricWorkerAbandonedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubDispatch,
			Name:      "worker_abandoned_total",
		},
		[]string{},
	).WithLabelValues()
)
