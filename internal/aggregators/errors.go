package aggregators

import (
	"fmt"

	"log-reader/internal/shared/svcerrors"
)

const (
	codeNone                   = ""
	codeInternalFileOpenFailed = "AGG_9000"
	codeInternalFileReadFailed = "AGG_9001"
	codeInternalFileCancelled  = "AGG_9002"
)

// errInternalFileOpenFailed returns an error when a log file cannot be opened.
func errInternalFileOpenFailed(filename string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFileOpenFailed, fmt.Errorf("fileOpenFailed %s: %w", filename, cause))
}

// errInternalFileReadFailed returns an error when reading a log file fails midway.
func errInternalFileReadFailed(filename string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFileReadFailed, fmt.Errorf("fileReadFailed %s: %w", filename, cause))
}

// errInternalFileCancelled returns an error when aggregation stops because its context ended.
// The cause keeps context.DeadlineExceeded or context.Canceled reachable through errors.Is.
func errInternalFileCancelled(filename string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalFileCancelled, fmt.Errorf("fileCancelled %s: %w", filename, cause))
}
