package scanners

import (
	"log-reader/internal/shared/metrics"
)

var (
	metricLogFileDiscoveredTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "log_file_discovered_total",
		},
		[]string{},
	).WithLabelValues()

	// metricEntrySkippedTotal counts directory entries that are not day logs, e.g. "notes.txt",
	// "1.log.bak" or a subdirectory named "3.log".
	metricEntrySkippedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScan,
			Name:      "entry_skipped_total",
		},
		[]string{},
	).WithLabelValues()
)
