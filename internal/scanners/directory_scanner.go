package scanners

import (
	"context"
	"errors"
	"io"
	"iter"
	"os"
	"path/filepath"

	"log-reader/internal/shared/loggers"
)

const defaultReadChunk = 128

//go:generate mockgen -source=directory_scanner.go -destination=./mocks/directory_scanner_mock.go -package=mocks
type DirectoryScanner interface {
	// Scan lazily yields the paths of the log files directly inside directory, in directory
	// order. Entries are read readChunk at a time so huge directories are never listed in full.
	// The sequence ends after the first error it yields.
	Scan(ctx context.Context, directory string) iter.Seq2[string, error]
}

type directoryScanner struct {
	readChunk int
}

func NewDirectoryScanner(readChunk int) DirectoryScanner {
	if readChunk <= 0 {
		readChunk = defaultReadChunk
	}
	return &directoryScanner{readChunk: readChunk}
}

func (s *directoryScanner) Scan(ctx context.Context, directory string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := loggers.Ctx(ctx)

		dir, err := os.Open(directory)
		if err != nil {
			yield("", errInternalDirectoryOpenFailed(directory, err))
			return
		}
		defer dir.Close()

		for {
			if err := ctx.Err(); err != nil {
				yield("", err)
				return
			}

			entries, readErr := dir.ReadDir(s.readChunk)
			for _, entry := range entries {
				if entry.IsDir() || !IsLogFile(entry.Name()) {
					metricEntrySkippedTotal.Inc()
					logger.Debug().Str(loggers.FieldFile, entry.Name()).Msg("ignoring directory entry")
					continue
				}
				metricLogFileDiscoveredTotal.Inc()
				if !yield(filepath.Join(directory, entry.Name()), nil) {
					return
				}
			}

			if readErr != nil {
				if !errors.Is(readErr, io.EOF) {
					yield("", errInternalDirectoryReadFailed(directory, readErr))
				}
				return
			}
		}
	}
}
