package reports

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"log-reader/internal/aggregators"
	dispatchermocks "log-reader/internal/dispatchers/mocks"
	"log-reader/internal/models"
	scannermocks "log-reader/internal/scanners/mocks"
	"log-reader/internal/shared/svcerrors"
	"log-reader/internal/stores"
	storemocks "log-reader/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func filesOf(names ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, name := range names {
			if !yield(name, nil) {
				return
			}
		}
	}
}

func failingFiles(err error, names ...string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, name := range names {
			if !yield(name, nil) {
				return
			}
		}
		yield("", err)
	}
}

func createsOn(day models.DayKey, creates int64) models.StatisticMap {
	statistic := models.NewStatisticMap()
	statistic.Counters(models.Valid, day).Create = creates
	return statistic
}

type serviceMocks struct {
	scanner    *scannermocks.MockDirectoryScanner
	dispatcher *dispatchermocks.MockWorkerDispatcher
	store      *storemocks.MockReportStore
	tracker    *ProgressTracker
}

func newMockedService(t *testing.T, batchSize int) (ReportService, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		scanner:    scannermocks.NewMockDirectoryScanner(ctrl),
		dispatcher: dispatchermocks.NewMockWorkerDispatcher(ctrl),
		store:      storemocks.NewMockReportStore(ctrl),
		tracker:    NewProgressTracker(),
	}
	service := NewReportService(m.scanner, m.dispatcher, aggregators.NewResultMerger(), m.store, m.tracker, batchSize)
	return service, m
}

func TestGenerate_MergesBatchesInOrder(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 2)
	ctx := context.Background()

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(filesOf("1.log", "2.log", "3.log"))
	gomock.InOrder(
		m.dispatcher.EXPECT().
			ProcessBatch(gomock.Any(), models.Batch{Index: 0, Files: []string{"1.log", "2.log"}}).
			Return([]models.StatisticMap{createsOn(0, 1), createsOn(86400, 2)}, nil),
		m.dispatcher.EXPECT().
			ProcessBatch(gomock.Any(), models.Batch{Index: 1, Files: []string{"3.log"}}).
			Return([]models.StatisticMap{createsOn(0, 4)}, nil),
	)
	m.store.EXPECT().Save(gomock.Any(), models.StatisticMap{
		models.Valid:    {0: {Create: 5}, 86400: {Create: 2}},
		models.NonValid: {},
	}).Return(nil)

	progress, err := service.Generate(ctx, "/logs")

	require.NoError(t, err)
	assert.Equal(t, models.RunStateSucceeded, progress.State)
	assert.Equal(t, "/logs", progress.Directory)
	assert.Equal(t, 3, progress.FilesDispatched)
	assert.Equal(t, 3, progress.FilesSucceeded)
	assert.Equal(t, 0, progress.FilesFailed)
	assert.Equal(t, 2, progress.BatchesCompleted)
	require.NotNil(t, progress.StartedAt)
	require.NotNil(t, progress.FinishedAt)
	assert.Equal(t, progress, m.tracker.Snapshot())
}

func TestGenerate_SkippedFilesCountAsFailed(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 3)

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(filesOf("1.log", "2.log", "3.log"))
	m.dispatcher.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return([]models.StatisticMap{createsOn(0, 1)}, nil)
	m.store.EXPECT().Save(gomock.Any(), createsOn(0, 1)).Return(nil)

	progress, err := service.Generate(context.Background(), "/logs")

	require.NoError(t, err)
	assert.Equal(t, 1, progress.FilesSucceeded)
	assert.Equal(t, 2, progress.FilesFailed)
}

func TestGenerate_EmptyDirectorySavesNil(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 4)

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(filesOf())
	m.store.EXPECT().Save(gomock.Any(), models.StatisticMap(nil)).Return(nil)

	progress, err := service.Generate(context.Background(), "/logs")

	require.NoError(t, err)
	assert.Equal(t, 0, progress.BatchesCompleted)
}

func TestGenerate_ReportAlreadyExists(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 4)

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(fmt.Errorf("%w: output.txt", stores.ErrReportAlreadyExists))

	progress, err := service.Generate(context.Background(), "/logs")

	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "RPT_1000", svcErr.Code)
	assert.Equal(t, "resource_conflict", svcErr.Category)
	assert.Equal(t, svcerrors.ExitCodeInvalidArgument, svcerrors.ExitCode(err))
	assert.Equal(t, models.RunStateFailed, progress.State)
	assert.NotEmpty(t, progress.Error)
}

func TestGenerate_ScanFailed(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 2)
	scanErr := errors.New("directory vanished")

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(failingFiles(scanErr, "1.log", "2.log", "3.log"))
	m.dispatcher.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return([]models.StatisticMap{createsOn(0, 1)}, nil)

	_, err := service.Generate(context.Background(), "/logs")

	assert.ErrorIs(t, err, scanErr)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "RPT_9000", svcErr.Code)
}

func TestGenerate_DispatchFailedIsPassedThrough(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 2)
	batchErr := svcerrors.NewInternalError("DSP_9000", errors.New("batch failed"))

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(filesOf("1.log", "2.log", "3.log"))
	m.dispatcher.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).Return(nil, batchErr)

	progress, err := service.Generate(context.Background(), "/logs")

	assert.Same(t, batchErr, err)
	assert.Equal(t, models.RunStateFailed, progress.State)
	assert.Equal(t, 0, progress.BatchesCompleted)
}

func TestGenerate_SaveFailed(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 2)
	saveErr := errors.New("disk full")

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(filesOf())
	m.store.EXPECT().Save(gomock.Any(), gomock.Any()).Return(saveErr)

	_, err := service.Generate(context.Background(), "/logs")

	assert.ErrorIs(t, err, saveErr)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "RPT_9001", svcErr.Code)
}

func TestGenerate_Cancelled(t *testing.T) {
	t.Parallel()

	service, m := newMockedService(t, 2)
	ctx, cancel := context.WithCancel(context.Background())

	m.store.EXPECT().CheckWritable(gomock.Any()).Return(nil)
	m.scanner.EXPECT().Scan(gomock.Any(), "/logs").Return(filesOf("1.log"))
	m.dispatcher.EXPECT().ProcessBatch(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, models.Batch) ([]models.StatisticMap, error) {
		cancel()
		return []models.StatisticMap{createsOn(0, 1)}, nil
	})

	_, err := service.Generate(ctx, "/logs")

	assert.ErrorIs(t, err, context.Canceled)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "RPT_9002", svcErr.Code)
}

func TestProgressTracker_Lifecycle(t *testing.T) {
	t.Parallel()

	tracker := NewProgressTracker()
	clock := time.Date(2018, 5, 1, 12, 0, 0, 0, time.UTC)
	tracker.now = func() time.Time { return clock }

	assert.Equal(t, models.Progress{State: models.RunStatePending}, tracker.Snapshot())

	tracker.start("/logs")
	tracker.batchDispatched(4)
	tracker.batchCompleted(4, 3)
	snapshot := tracker.Snapshot()
	assert.Equal(t, models.RunStateRunning, snapshot.State)
	assert.Equal(t, 4, snapshot.FilesDispatched)
	assert.Equal(t, 3, snapshot.FilesSucceeded)
	assert.Equal(t, 1, snapshot.FilesFailed)
	assert.Nil(t, snapshot.FinishedAt)

	clock = clock.Add(time.Minute)
	final := tracker.finish(errors.New("boom"))
	assert.Equal(t, models.RunStateFailed, final.State)
	assert.Equal(t, "boom", final.Error)
	assert.Equal(t, time.Date(2018, 5, 1, 12, 1, 0, 0, time.UTC), *final.FinishedAt)
	assert.Equal(t, time.Date(2018, 5, 1, 12, 0, 0, 0, time.UTC), *final.StartedAt)
}

func TestGenerate_EndToEnd_BatchSizeDoesNotChangeReport(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for i := 0; i < 7; i++ {
		var lines []string
		for j := 0; j <= i; j++ {
			ts := 1525132800 + int64(i*86400) + int64(j*60)
			lines = append(lines,
				fmt.Sprintf(`{"timestamp": %d, "event_type": "create", "ids": [%d], "query_string": "id=%d"}`, ts, j, j),
				fmt.Sprintf(`{"timestamp": %d, "event_type": "update", "ids": [%d, 1000], "query_string": "id=%d"}`, ts, j, j),
				fmt.Sprintf(`{"timestamp": %d, "event_type": "delete", "ids": [%d], "query_string": "id=%d"}`, 1525132800, i, i),
			)
		}
		path := filepath.Join(dir, fmt.Sprintf("%d.log", i))
		require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("not a log"), 0o644))

	var reports []string
	for _, batchSize := range []int{1, 2, 3, 100} {
		outDir := t.TempDir()
		service := newRealService(t, outDir, batchSize)

		_, err := service.Generate(context.Background(), dir)
		require.NoError(t, err, "batch size %d", batchSize)

		data, err := os.ReadFile(filepath.Join(outDir, "output.txt"))
		require.NoError(t, err)
		reports = append(reports, string(data))
	}

	for _, report := range reports[1:] {
		assert.Equal(t, reports[0], report)
	}
	assert.Contains(t, reports[0], `"non_valid"`)
	assert.Contains(t, reports[0], `"valid"`)
}

func TestGenerate_EndToEnd_EmptyDirectory(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	service := newRealService(t, outDir, 4)

	_, err := service.Generate(context.Background(), t.TempDir())
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "output.txt"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
