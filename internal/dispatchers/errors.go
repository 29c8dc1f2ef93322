package dispatchers

import (
	"fmt"

	"log-reader/internal/shared/svcerrors"
)

const (
	codeInternalBatchFailed    = "DSP_9000"
	codeInternalWorkerTimedOut = "DSP_9001"
	codeInternalBatchCancelled = "DSP_9002"
)

// errInternalBatchFailed returns an error when a batch fails under the fail policy.
// cause joins the error of every failed file.
func errInternalBatchFailed(index int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchFailed, fmt.Errorf("batchFailed %d: %w", index, cause))
}

// errInternalWorkerTimedOut returns an error for a file whose worker never reported in time.
func errInternalWorkerTimedOut(filename string) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalWorkerTimedOut, fmt.Errorf("workerTimedOut %s", filename))
}

// errInternalBatchCancelled returns an error when the run is cancelled while a batch is in flight.
func errInternalBatchCancelled(index int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalBatchCancelled, fmt.Errorf("batchCancelled %d: %w", index, cause))
}
