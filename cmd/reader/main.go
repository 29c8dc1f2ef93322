package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"log-reader/internal/cli"
	"log-reader/internal/shared/svcerrors"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Interrupt cancels the run; no report is written for a cancelled run.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reader: %v\n", err)
	}
	stop()
	os.Exit(svcerrors.ExitCode(err))
}
