package reports

import (
	"testing"
	"time"

	"log-reader/internal/aggregators"
	"log-reader/internal/dispatchers"
	"log-reader/internal/records"
	"log-reader/internal/scanners"
	"log-reader/internal/shared/filestorages"
	"log-reader/internal/stores"

	"github.com/stretchr/testify/require"
)

func newRealService(t *testing.T, outDir string, batchSize int) ReportService {
	t.Helper()

	fileStorage, err := filestorages.NewFileStorage(outDir)
	require.NoError(t, err)

	fileAggregator := aggregators.NewFileAggregator(records.NewRecordDecoder(), records.NewRecordValidator())
	workerDispatcher := dispatchers.NewWorkerDispatcher(fileAggregator, dispatchers.Options{
		WorkerTimeout: 10 * time.Second,
		CollectGrace:  time.Second,
		FailurePolicy: dispatchers.FailurePolicyFail,
	})

	return NewReportService(
		scanners.NewDirectoryScanner(2),
		workerDispatcher,
		aggregators.NewResultMerger(),
		stores.NewReportStore(fileStorage, "output.txt", true),
		NewProgressTracker(),
		batchSize,
	)
}
