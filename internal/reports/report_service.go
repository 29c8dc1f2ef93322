package reports

import (
	"context"
	"errors"
	"time"

	"log-reader/internal/aggregators"
	"log-reader/internal/dispatchers"
	"log-reader/internal/models"
	"log-reader/internal/scanners"
	"log-reader/internal/shared/loggers"
	"log-reader/internal/shared/metrics"
	"log-reader/internal/shared/svcerrors"
	"log-reader/internal/stores"
)

type ReportService interface {
	// Generate aggregates every log file in directory and saves the merged report.
	// Files are processed in batches of the configured size; a batch starts only after the
	// previous one has been merged. Nothing is written when the run fails.
	Generate(ctx context.Context, directory string) (models.Progress, error)
}

type reportService struct {
	directoryScanner scanners.DirectoryScanner
	workerDispatcher dispatchers.WorkerDispatcher
	resultMerger     aggregators.ResultMerger
	reportStore      stores.ReportStore
	progressTracker  *ProgressTracker
	batchSize        int
}

func NewReportService(
	directoryScanner scanners.DirectoryScanner,
	workerDispatcher dispatchers.WorkerDispatcher,
	resultMerger aggregators.ResultMerger,
	reportStore stores.ReportStore,
	progressTracker *ProgressTracker,
	batchSize int,
) ReportService {
	return &reportService{
		directoryScanner: directoryScanner,
		workerDispatcher: workerDispatcher,
		resultMerger:     resultMerger,
		reportStore:      reportStore,
		progressTracker:  progressTracker,
		batchSize:        batchSize,
	}
}

func (s *reportService) Generate(ctx context.Context, directory string) (models.Progress, error) {
	logger := loggers.Ctx(ctx)
	start := time.Now()
	s.progressTracker.start(directory)

	statistic, err := s.generate(ctx, directory)
	progress := s.progressTracker.finish(err)
	metricRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		metricRunTotal.WithLabelValues(svcErr.Code).Inc()
		return progress, err
	}

	metricRunTotal.WithLabelValues(metrics.ValueNoError).Inc()
	valid := statistic.Totals(models.Valid)
	nonValid := statistic.Totals(models.NonValid)
	logger.Info().
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Int("files_succeeded", progress.FilesSucceeded).
		Int("files_failed", progress.FilesFailed).
		Int("batches", progress.BatchesCompleted).
		Int64("valid_events", valid.Total()).
		Int64("non_valid_events", nonValid.Total()).
		Msg("report generated")
	return progress, nil
}

func (s *reportService) generate(ctx context.Context, directory string) (models.StatisticMap, error) {
	if err := s.reportStore.CheckWritable(ctx); err != nil {
		return nil, errReportStoreFailed(err)
	}

	var statistic models.StatisticMap
	for batch, err := range dispatchers.Batches(s.directoryScanner.Scan(ctx, directory), s.batchSize) {
		if err != nil {
			if ctx.Err() != nil {
				return nil, errInternalRunCancelled(ctx.Err())
			}
			return nil, errInternalScanFailed(err)
		}

		s.progressTracker.batchDispatched(len(batch.Files))
		metricFilesInFlight.Add(float64(len(batch.Files)))
		statistics, err := s.workerDispatcher.ProcessBatch(ctx, batch)
		metricFilesInFlight.Sub(float64(len(batch.Files)))
		if err != nil {
			return nil, err
		}

		for _, partial := range statistics {
			statistic = s.resultMerger.Merge(statistic, partial)
		}
		s.progressTracker.batchCompleted(len(batch.Files), len(statistics))
	}

	if err := ctx.Err(); err != nil {
		return nil, errInternalRunCancelled(err)
	}
	if err := s.reportStore.Save(ctx, statistic); err != nil {
		return nil, errReportStoreFailed(err)
	}
	return statistic, nil
}

// errReportStoreFailed tells a refused overwrite apart from a storage failure.
func errReportStoreFailed(err error) *svcerrors.ServiceError {
	if errors.Is(err, stores.ErrReportAlreadyExists) {
		return errReportAlreadyExists(err)
	}
	return errInternalReportSaveFailed(err)
}
