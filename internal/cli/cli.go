package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	goflags "github.com/jessevdk/go-flags"

	"log-reader/internal/app"
	"log-reader/internal/shared/configs"
	"log-reader/internal/shared/svcerrors"
)

const codeInvalidArguments = "CLI_1000"

// runApp builds and runs the application. Tests replace it to observe the loaded config.
var runApp = func(ctx context.Context, cfg *configs.Config, logOutput io.Writer) error {
	application, err := app.New(cfg, logOutput)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}

func buildParser(opts *Options) *goflags.Parser {
	parser := goflags.NewParser(opts, goflags.Default)
	parser.Name = "reader"
	parser.LongDescription = "Aggregate queries from log files in the given log directory and write the results to the given output file."
	return parser
}

// Run is the main entry point of the reader using os.Args.
func Run(ctx context.Context, version string) error {
	return RunWithArgs(ctx, version, os.Args[1:], os.Stdout, os.Stderr)
}

// RunWithArgs parses args, loads the configuration and runs one report. Logs go to stderr.
func RunWithArgs(ctx context.Context, version string, args []string, stdout, stderr io.Writer) error {
	var opts Options
	parser := buildParser(&opts)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return svcerrors.NewInvalidArgumentError(codeInvalidArguments, "invalid command line", err)
	}

	if opts.Version {
		fmt.Fprintf(stdout, "reader %s\n", version)
		return nil
	}

	cfg, err := configs.LoadConfig(opts.Config, overrides(parser, &opts))
	if err != nil {
		return err
	}

	return runApp(ctx, cfg, stderr)
}
