package configs

import (
	"os"
	"path/filepath"
	"testing"

	"log-reader/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yml")
	require.NoError(t, err)
	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	logDir := t.TempDir()
	configPath := writeConfigFile(t, `scan:
  directory: `+logDir+`
  read_chunk: 16
output:
  path: /tmp/report.json
  overwrite: false
worker:
  count: 4
  timeout: 30
  collect_grace: 2
  failure_policy: fail
log:
  level: debug
  format: json
metrics:
  listen_addr: ":9102"
  textfile_path: /tmp/reader.prom
`)

	cfg, err := LoadConfig(configPath, nil)
	require.NoError(t, err)
	assert.Equal(t, logDir, cfg.Scan.Directory)
	assert.Equal(t, 16, cfg.Scan.ReadChunk)
	assert.Equal(t, "/tmp/report.json", cfg.Output.Path)
	assert.False(t, cfg.Output.Overwrite)
	assert.Equal(t, 4, cfg.Worker.Count)
	assert.Equal(t, 30, cfg.Worker.Timeout)
	assert.Equal(t, 2, cfg.Worker.CollectGrace)
	assert.Equal(t, FailurePolicyFail, cfg.Worker.FailurePolicy)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, ":9102", cfg.Metrics.ListenAddr)
	assert.Equal(t, "/tmp/reader.prom", cfg.Metrics.TextfilePath)
}

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	logDir := t.TempDir()

	cfg, err := LoadConfig("", Overrides{"scan.directory": logDir})
	require.NoError(t, err)
	assert.Equal(t, logDir, cfg.Scan.Directory)
	assert.Equal(t, 128, cfg.Scan.ReadChunk)
	assert.Equal(t, "output.txt", cfg.Output.Path)
	assert.True(t, cfg.Output.Overwrite)
	assert.Equal(t, 8, cfg.Worker.Count)
	assert.Equal(t, 300, cfg.Worker.Timeout)
	assert.Equal(t, 5, cfg.Worker.CollectGrace)
	assert.Equal(t, FailurePolicySkip, cfg.Worker.FailurePolicy)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Metrics.ListenAddr)
}

func TestLoadConfig_OverridesWinOverFile(t *testing.T) {
	logDir := t.TempDir()
	configPath := writeConfigFile(t, `scan:
  directory: `+logDir+`
worker:
  count: 4
`)

	cfg, err := LoadConfig(configPath, Overrides{"worker.count": 16, "output.path": "out.json"})
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Worker.Count)
	assert.Equal(t, "out.json", cfg.Output.Path)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	logDir := t.TempDir()
	configPath := writeConfigFile(t, `scan:
  directory: `+logDir+`
worker:
  count: 4
`)
	t.Setenv("LOGREADER_WORKER_COUNT", "12")

	cfg, err := LoadConfig(configPath, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Worker.Count)
}

func TestLoadConfig_MissingDirectory(t *testing.T) {
	cfg, err := LoadConfig("", nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "scan.directory (required)")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "CFG_1000", svcErr.Code)
	assert.Equal(t, svcerrors.ExitCodeInvalidArgument, svcErr.ExitCode())
}

func TestLoadConfig_DirectoryDoesNotExist(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	cfg, err := LoadConfig("", Overrides{"scan.directory": missing})
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan.directory (not a directory")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	logDir := t.TempDir()

	tests := []struct {
		name      string
		overrides Overrides
		expected  string
	}{
		{
			name:      "zero workers",
			overrides: Overrides{"worker.count": 0},
			expected:  "worker.count (min=1)",
		},
		{
			name:      "too many workers",
			overrides: Overrides{"worker.count": 5000},
			expected:  "worker.count (max=1024)",
		},
		{
			name:      "unknown failure policy",
			overrides: Overrides{"worker.failure_policy": "retry"},
			expected:  "worker.failure_policy (oneof=skip fail)",
		},
		{
			name:      "unknown log level",
			overrides: Overrides{"log.level": "loud"},
			expected:  "log.level (oneof=trace debug info warn error)",
		},
		{
			name:      "zero timeout",
			overrides: Overrides{"worker.timeout": 0},
			expected:  "worker.timeout (min=1)",
		},
		{
			name:      "malformed metrics address",
			overrides: Overrides{"metrics.listen_addr": "not-an-address"},
			expected:  "metrics.listen_addr (hostname_port)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := Overrides{"scan.directory": logDir}
			for k, v := range tt.overrides {
				overrides[k] = v
			}

			cfg, err := LoadConfig("", overrides)
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestLoadConfig_UnreadableFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"), nil)
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestWorkerConfig_Durations(t *testing.T) {
	cfg := WorkerConfig{Timeout: 30, CollectGrace: 2}
	assert.Equal(t, "30s", cfg.TimeoutDuration().String())
	assert.Equal(t, "2s", cfg.CollectGraceDuration().String())
}
