package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"log-reader/internal/models"
	"log-reader/internal/shared/configs"
	"log-reader/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `{"timestamp": 1525208713, "event_type": "create", "ids": [4, 5, 7, 1, 10, 8, 3, 2],"query_string": "id=12&lzbnn=lzbnn&id=11&yfxxu=yfxxu&ffgtx=ffgtx&id=13&id=17&id=14&id=20&tmghs=tmghs"}
{"timestamp": 1525139146, "event_type": "delete", "ids": [2, 10, 7, 1, 9, 8, 5], "query_string": "id=9&culyr=culyr&id=2&id=10&thvgj=thvgj&id=7&lbyjz=lbyjz&id=1&tdiob=tdiob&wryji=wryji"}
{"timestamp": 1525164213, "event_type": "delete", "ids": [7, 1, 2, 6, 3, 5, 4], "query_string": "id=6&rjtdw=rjtdw&id=7&id=5&id=3&id=4&id=1&id=2"}
`

const expectedReport = `{
    "non_valid": {
        "1525132800": {
            "create": 1,
            "delete": 1,
            "update": 0
        }
    },
    "valid": {
        "1525132800": {
            "create": 0,
            "delete": 1,
            "update": 0
        }
    }
}`

func testConfig(t *testing.T, logDir string) *configs.Config {
	t.Helper()
	return &configs.Config{
		Scan:   configs.ScanConfig{Directory: logDir, ReadChunk: 16},
		Output: configs.OutputConfig{Path: filepath.Join(t.TempDir(), "output.txt"), Overwrite: true},
		Worker: configs.WorkerConfig{Count: 2, Timeout: 30, CollectGrace: 1, FailurePolicy: configs.FailurePolicySkip},
		Log:    configs.LogConfig{Level: "debug", Format: "json"},
	}
}

func writeLogs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestApp_Run_SampleDirectory(t *testing.T) {
	t.Parallel()

	logDir := writeLogs(t, map[string]string{
		"1.log":      sampleLog,
		"notes.txt":  "ignored",
		"2.log.gz":   "ignored",
		"0000.log":   "",
		"broken.log": "ignored, not a day log",
	})
	cfg := testConfig(t, logDir)

	var logs bytes.Buffer
	application, err := New(cfg, &logs)
	require.NoError(t, err)

	require.NoError(t, application.Run(context.Background()))

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, expectedReport, string(data))

	progress := application.progressTracker.Snapshot()
	assert.Equal(t, models.RunStateSucceeded, progress.State)
	assert.Equal(t, 2, progress.FilesSucceeded)

	assert.Contains(t, logs.String(), `"run_id":"run-`)
	assert.Contains(t, logs.String(), "report generated")
}

func TestApp_Run_EmptyDirectory(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, t.TempDir())
	application, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	require.NoError(t, application.Run(context.Background()))

	data, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestApp_Run_NoOverwrite(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, writeLogs(t, map[string]string{"1.log": sampleLog}))
	cfg.Output.Overwrite = false
	require.NoError(t, os.WriteFile(cfg.Output.Path, []byte("previous"), 0o644))

	application, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, svcerrors.ExitCodeInvalidArgument, svcerrors.ExitCode(err))

	data, readErr := os.ReadFile(cfg.Output.Path)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data), "existing report must be left alone")
}

func TestApp_Run_Cancelled(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, writeLogs(t, map[string]string{"1.log": sampleLog}))
	application, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = application.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, svcerrors.ExitCodeInternal, svcerrors.ExitCode(err))
	assert.NoFileExists(t, cfg.Output.Path)
}

func TestApp_Run_WritesMetricsTextfile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, writeLogs(t, map[string]string{"1.log": sampleLog}))
	cfg.Metrics.TextfilePath = filepath.Join(t.TempDir(), "log_reader.prom")

	application, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NoError(t, application.Run(context.Background()))

	data, err := os.ReadFile(cfg.Metrics.TextfilePath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "log_reader_report_run_total"))
}

func TestApp_Run_WithStatusServer(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, writeLogs(t, map[string]string{"1.log": sampleLog}))
	cfg.Metrics.ListenAddr = "127.0.0.1:0"

	application, err := New(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	require.NotNil(t, application.statusServer)

	require.NoError(t, application.Run(context.Background()))
	assert.FileExists(t, cfg.Output.Path)
}

func TestNew_InvalidLogFormat(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t, t.TempDir())
	cfg.Log.Format = "xml"

	_, err := New(cfg, &bytes.Buffer{})
	require.Error(t, err)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInvalidLogger, svcErr.Code)
}
