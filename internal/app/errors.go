package app

import (
	"fmt"

	"log-reader/internal/shared/svcerrors"
)

const (
	codeInvalidLogger              = "APP_1000"
	codeInvalidOutputPath          = "APP_1001"
	codeInternalStatusServerFailed = "APP_9000"
)

// errInvalidLogger returns an error when the configured log level or format is unusable.
func errInvalidLogger(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogger, "invalid log configuration", cause)
}

// errInvalidOutputPath returns an error when the report path cannot be turned into a storage location.
func errInvalidOutputPath(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidOutputPath, fmt.Sprintf("invalid output path %q", path), cause)
}

// errInternalStatusServerFailed returns an error when the status server cannot bind its address.
func errInternalStatusServerFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStatusServerFailed, fmt.Errorf("statusServerFailed: %w", cause))
}
