package cli

import (
	goflags "github.com/jessevdk/go-flags"

	"log-reader/internal/shared/configs"
)

// Options holds the command line. Values left unset fall through to the config file, the
// environment and the built-in defaults, in that order.
type Options struct {
	Directory       string `short:"d" long:"directory" description:"Path to the log directory"`
	Output          string `short:"o" long:"output" description:"Path to the output file (default: output.txt)"`
	Processors      int    `short:"p" long:"processors" description:"Number of files processed concurrently (default: 8)"`
	Config          string `short:"c" long:"config" description:"Path to a YAML config file"`
	LogLevel        string `long:"log-level" description:"Log level" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error"`
	LogFormat       string `long:"log-format" description:"Log format" choice:"console" choice:"json"`
	WorkerTimeout   int    `long:"worker-timeout" description:"Seconds a single file may take (default: 300)"`
	FailurePolicy   string `long:"failure-policy" description:"What a failed file does to the run" choice:"skip" choice:"fail"`
	MetricsAddr     string `long:"metrics-addr" description:"Serve /metrics, /healthz and /progress on this address while running"`
	MetricsTextfile string `long:"metrics-textfile" description:"Write a Prometheus textfile snapshot here when the run ends"`
	NoOverwrite     bool   `long:"no-overwrite" description:"Fail instead of replacing an existing output file"`
	Version         bool   `long:"version" description:"Show version and exit"`
}

// configKeys maps long option names onto the config keys they override.
var configKeys = map[string]string{
	"directory":        "scan.directory",
	"output":           "output.path",
	"processors":       "worker.count",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"worker-timeout":   "worker.timeout",
	"failure-policy":   "worker.failure_policy",
	"metrics-addr":     "metrics.listen_addr",
	"metrics-textfile": "metrics.textfile_path",
}

// overrides collects the options given on the command line.
func overrides(parser *goflags.Parser, opts *Options) configs.Overrides {
	result := make(configs.Overrides)
	for longName, key := range configKeys {
		option := parser.FindOptionByLongName(longName)
		if option != nil && option.IsSet() {
			result[key] = option.Value()
		}
	}
	if opts.NoOverwrite {
		result["output.overwrite"] = false
	}
	return result
}
