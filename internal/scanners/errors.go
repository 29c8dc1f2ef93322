package scanners

import (
	"fmt"

	"log-reader/internal/shared/svcerrors"
)

const (
	codeInternalDirectoryOpenFailed = "SCN_9000"
	codeInternalDirectoryReadFailed = "SCN_9001"
)

// errInternalDirectoryOpenFailed returns an error when the input directory cannot be opened.
func errInternalDirectoryOpenFailed(directory string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDirectoryOpenFailed, fmt.Errorf("directoryOpenFailed %s: %w", directory, cause))
}

// errInternalDirectoryReadFailed returns an error when listing the input directory fails midway.
func errInternalDirectoryReadFailed(directory string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalDirectoryReadFailed, fmt.Errorf("directoryReadFailed %s: %w", directory, cause))
}
