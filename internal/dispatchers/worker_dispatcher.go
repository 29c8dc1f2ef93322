package dispatchers

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"log-reader/internal/aggregators"
	"log-reader/internal/models"
	"log-reader/internal/shared/loggers"
	"log-reader/internal/shared/metrics"
	"log-reader/internal/shared/svcerrors"
)

const (
	FailurePolicySkip = "skip"
	FailurePolicyFail = "fail"

	defaultWorkerTimeout = 5 * time.Minute
)

// Options tunes how a batch is run.
type Options struct {
	// WorkerTimeout bounds a single file. The worker's context expires after it.
	WorkerTimeout time.Duration
	// CollectGrace is how long past WorkerTimeout the batch keeps waiting for results, and how
	// long it then waits for cancelled workers to return.
	CollectGrace time.Duration
	// FailurePolicy is FailurePolicySkip or FailurePolicyFail.
	FailurePolicy string
}

//go:generate mockgen -source=worker_dispatcher.go -destination=./mocks/worker_dispatcher_mock.go -package=mocks
type WorkerDispatcher interface {
	// ProcessBatch aggregates every file of batch on its own goroutine and returns the
	// statistics of the files that succeeded, in batch order. The call returns only once every
	// worker has reported or has been given up on.
	//
	// Under FailurePolicySkip failed and timed out files are logged and left out. Under
	// FailurePolicyFail any such file fails the whole batch. Cancellation of ctx always does.
	ProcessBatch(ctx context.Context, batch models.Batch) ([]models.StatisticMap, error)
}

type workerDispatcher struct {
	fileAggregator aggregators.FileAggregator
	opts           Options
}

func NewWorkerDispatcher(fileAggregator aggregators.FileAggregator, opts Options) WorkerDispatcher {
	if opts.WorkerTimeout <= 0 {
		opts.WorkerTimeout = defaultWorkerTimeout
	}
	if opts.CollectGrace < 0 {
		opts.CollectGrace = 0
	}
	if opts.FailurePolicy == "" {
		opts.FailurePolicy = FailurePolicySkip
	}
	return &workerDispatcher{fileAggregator: fileAggregator, opts: opts}
}

func (d *workerDispatcher) ProcessBatch(ctx context.Context, batch models.Batch) ([]models.StatisticMap, error) {
	logger := loggers.Ctx(ctx).With().
		Int(loggers.FieldBatch, batch.Index).
		Int(loggers.FieldBatchSize, len(batch.Files)).
		Logger()
	ctx = logger.WithContext(ctx)
	start := time.Now()
	logger.Debug().Msg("dispatching batch")

	workerCtx, cancelWorkers := context.WithCancel(ctx)
	defer cancelWorkers()

	// Buffered so that a worker never blocks on send, even after collection gave up on it.
	results := make(chan models.FileResult, len(batch.Files))
	var workers errgroup.Group
	for _, filename := range batch.Files {
		workers.Go(func() error {
			d.runWorker(workerCtx, filename, results)
			return nil
		})
	}

	received := d.collect(ctx, &logger, len(batch.Files), results)
	cancelWorkers()
	d.join(&logger, &workers, len(received) == len(batch.Files))

	if err := ctx.Err(); err != nil {
		metricBatchDispatchedTotal.WithLabelValues(codeInternalBatchCancelled).Inc()
		return nil, errInternalBatchCancelled(batch.Index, err)
	}

	statistics := make([]models.StatisticMap, 0, len(batch.Files))
	var failures []error
	for _, filename := range batch.Files {
		result, ok := received[filename]
		if !ok {
			result = models.FileResult{Filename: filename, Err: errInternalWorkerTimedOut(filename)}
		}
		if result.Err != nil {
			code := errorCode(result.Err)
			metricFileDispatchedTotal.WithLabelValues(code).Inc()
			logger.Error().
				Err(result.Err).
				Str(loggers.FieldFile, filename).
				Str(loggers.FieldErrorCode, code).
				Str("failure_policy", d.opts.FailurePolicy).
				Msg("file failed")
			failures = append(failures, result.Err)
			continue
		}
		metricFileDispatchedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		statistics = append(statistics, result.Statistic)
	}

	metricBatchDuration.Observe(time.Since(start).Seconds())
	if len(failures) > 0 && d.opts.FailurePolicy == FailurePolicyFail {
		metricBatchDispatchedTotal.WithLabelValues(codeInternalBatchFailed).Inc()
		return nil, errInternalBatchFailed(batch.Index, errors.Join(failures...))
	}

	metricBatchDispatchedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
		Int("files_ok", len(statistics)).
		Int("files_failed", len(failures)).
		Msg("batch completed")
	return statistics, nil
}

// runWorker aggregates one file and sends exactly one FileResult, panics included.
func (d *workerDispatcher) runWorker(ctx context.Context, filename string, results chan<- models.FileResult) {
	result := models.FileResult{Filename: filename}
	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldFile, filename).
				Msg("worker panic recovered")
			result = models.FileResult{Filename: filename, Err: svcerrors.PanicError(r)}
		}
		results <- result
	}()

	fileCtx, cancel := context.WithTimeout(ctx, d.opts.WorkerTimeout)
	defer cancel()
	result.Statistic, result.Err = d.fileAggregator.Run(fileCtx, filename)
}

// collect receives results until every worker reported, the batch deadline passed or ctx ended.
func (d *workerDispatcher) collect(ctx context.Context, logger *zerolog.Logger, expected int, results <-chan models.FileResult) map[string]models.FileResult {
	received := make(map[string]models.FileResult, expected)
	deadline := time.NewTimer(d.opts.WorkerTimeout + d.opts.CollectGrace)
	defer deadline.Stop()

	for len(received) < expected {
		select {
		case result := <-results:
			received[result.Filename] = result
		case <-deadline.C:
			logger.Error().
				Int("received", len(received)).
				Int("expected", expected).
				Msg("batch deadline reached before every worker reported")
			return received
		case <-ctx.Done():
			return received
		}
	}
	return received
}

// join waits for the workers to return. Workers that already reported are about to return, so
// the wait is only bounded when some of them never reported.
func (d *workerDispatcher) join(logger *zerolog.Logger, workers *errgroup.Group, allReported bool) {
	if allReported {
		_ = workers.Wait()
		return
	}

	done := make(chan struct{})
	go func() {
		_ = workers.Wait()
		close(done)
	}()

	grace := time.NewTimer(d.opts.CollectGrace)
	defer grace.Stop()
	select {
	case <-done:
	case <-grace.C:
		metricWorkerAbandonedTotal.Inc()
		logger.Warn().Msg("abandoning workers that ignored cancellation")
	}
}

func errorCode(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Code
	}
	return svcerrors.NewInternalErrorUndefined(err).Code
}
