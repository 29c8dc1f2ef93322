package configs

import "time"

const (
	FailurePolicySkip = "skip"
	FailurePolicyFail = "fail"
)

// Config holds all configuration for the application.
type Config struct {
	Scan    ScanConfig    `mapstructure:"scan"`
	Output  OutputConfig  `mapstructure:"output"`
	Worker  WorkerConfig  `mapstructure:"worker"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ScanConfig holds log directory related configuration.
type ScanConfig struct {
	Directory string `mapstructure:"directory" validate:"required,dir"`
	ReadChunk int    `mapstructure:"read_chunk" validate:"min=1,max=65536"` // directory entries per read
}

// OutputConfig holds report output configuration.
type OutputConfig struct {
	Path      string `mapstructure:"path" validate:"required"`
	Overwrite bool   `mapstructure:"overwrite"`
}

// WorkerConfig holds worker pool configuration.
type WorkerConfig struct {
	Count         int    `mapstructure:"count" validate:"min=1,max=1024"`
	Timeout       int    `mapstructure:"timeout" validate:"min=1"`       // seconds, per file
	CollectGrace  int    `mapstructure:"collect_grace" validate:"min=0"` // seconds past timeout before a batch gives up on a worker
	FailurePolicy string `mapstructure:"failure_policy" validate:"oneof=skip fail"`
}

func (c WorkerConfig) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

func (c WorkerConfig) CollectGraceDuration() time.Duration {
	return time.Duration(c.CollectGrace) * time.Second
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
}

// MetricsConfig holds metrics exposure configuration. Both outputs are optional.
type MetricsConfig struct {
	ListenAddr   string `mapstructure:"listen_addr" validate:"omitempty,hostname_port"`
	TextfilePath string `mapstructure:"textfile_path"`
}
