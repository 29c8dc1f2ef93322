package reports

import (
	"fmt"

	"log-reader/internal/shared/svcerrors"
)

const (
	codeReportAlreadyExists      = "RPT_1000"
	codeInternalScanFailed       = "RPT_9000"
	codeInternalReportSaveFailed = "RPT_9001"
	codeInternalRunCancelled     = "RPT_9002"

	messageReportAlreadyExists = "report already exists and overwriting is disabled"
)

// errReportAlreadyExists returns an error when the output exists and may not be replaced.
func errReportAlreadyExists(cause error) *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeReportAlreadyExists, messageReportAlreadyExists, cause)
}

// errInternalScanFailed returns an error when the log directory cannot be listed.
func errInternalScanFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalScanFailed, fmt.Errorf("scanFailed: %w", cause))
}

// errInternalReportSaveFailed returns an error when the report cannot be written.
func errInternalReportSaveFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportSaveFailed, fmt.Errorf("reportSaveFailed: %w", cause))
}

// errInternalRunCancelled returns an error when the run is interrupted, e.g. by SIGINT.
func errInternalRunCancelled(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRunCancelled, fmt.Errorf("runCancelled: %w", cause))
}
