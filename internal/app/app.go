package app

import (
	"context"
	"io"
	"time"

	"log-reader/internal/aggregators"
	"log-reader/internal/dispatchers"
	internalhttp "log-reader/internal/http"
	"log-reader/internal/records"
	"log-reader/internal/reports"
	"log-reader/internal/scanners"
	"log-reader/internal/shared/configs"
	"log-reader/internal/shared/filestorages"
	"log-reader/internal/shared/loggers"
	"log-reader/internal/shared/metrics"
	"log-reader/internal/shared/ulid"
	"log-reader/internal/stores"
)

const (
	appName         = "log-reader"
	shutdownTimeout = 5 * time.Second
)

// App holds all application dependencies of one reader run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger

	reportService   reports.ReportService
	progressTracker *reports.ProgressTracker
	statusServer    *internalhttp.StatusServer
}

// New wires a run from config. Logs go to logOutput.
func New(config *configs.Config, logOutput io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.Format, logOutput)
	if err != nil {
		return nil, errInvalidLogger(err)
	}
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldRunID, ulid.NewRunID()).
		Logger()

	rootDir, key, err := filestorages.SplitPath(config.Output.Path)
	if err != nil {
		return nil, errInvalidOutputPath(config.Output.Path, err)
	}
	fileStorage, err := filestorages.NewFileStorage(rootDir)
	if err != nil {
		return nil, errInvalidOutputPath(config.Output.Path, err)
	}
	reportStore := stores.NewReportStore(fileStorage, key, config.Output.Overwrite)

	fileAggregator := aggregators.NewFileAggregator(records.NewRecordDecoder(), records.NewRecordValidator())
	workerDispatcher := dispatchers.NewWorkerDispatcher(fileAggregator, dispatchers.Options{
		WorkerTimeout: config.Worker.TimeoutDuration(),
		CollectGrace:  config.Worker.CollectGraceDuration(),
		FailurePolicy: config.Worker.FailurePolicy,
	})
	progressTracker := reports.NewProgressTracker()
	reportService := reports.NewReportService(
		scanners.NewDirectoryScanner(config.Scan.ReadChunk),
		workerDispatcher,
		aggregators.NewResultMerger(),
		reportStore,
		progressTracker,
		config.Worker.Count,
	)

	var statusServer *internalhttp.StatusServer
	if config.Metrics.ListenAddr != "" {
		httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
		statusServer = internalhttp.NewStatusServer(internalhttp.NewRouter(progressTracker, httpLogger), httpLogger)
	}

	return &App{
		config:          config,
		appLogger:       appLogger,
		reportService:   reportService,
		progressTracker: progressTracker,
		statusServer:    statusServer,
	}, nil
}

// Run generates the report and blocks until it is written or the run fails.
// Cancelling ctx aborts the run without writing the report.
func (app *App) Run(ctx context.Context) error {
	ctx = app.appLogger.WithContext(ctx)
	app.appLogger.Info().
		Msgf("Starting %s (directory=%s, output=%s, workers=%d, worker_timeout=%ds, failure_policy=%s)",
			appName,
			app.config.Scan.Directory,
			app.config.Output.Path,
			app.config.Worker.Count,
			app.config.Worker.Timeout,
			app.config.Worker.FailurePolicy)

	if app.statusServer != nil {
		if _, err := app.statusServer.Start(app.config.Metrics.ListenAddr); err != nil {
			return errInternalStatusServerFailed(err)
		}
		defer app.shutdownStatusServer()
	}

	_, err := app.reportService.Generate(ctx, app.config.Scan.Directory)
	app.writeMetricsTextfile()
	if err != nil {
		app.appLogger.Error().Err(err).Msg("run failed")
		return err
	}

	app.appLogger.Info().Msgf("report written to %s", app.config.Output.Path)
	return nil
}

func (app *App) shutdownStatusServer() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.statusServer.Shutdown(ctx); err != nil {
		app.appLogger.Warn().Err(err).Msg("status server did not stop cleanly")
	}
}

// writeMetricsTextfile snapshots the registry for the node_exporter textfile collector. A failed
// snapshot is reported but never fails the run.
func (app *App) writeMetricsTextfile() {
	path := app.config.Metrics.TextfilePath
	if path == "" {
		return
	}
	if err := metrics.WriteTextfile(path); err != nil {
		app.appLogger.Warn().Err(err).Str(loggers.FieldFile, path).Msg("failed to write metrics textfile")
		return
	}
	app.appLogger.Debug().Str(loggers.FieldFile, path).Msg("metrics textfile written")
}
