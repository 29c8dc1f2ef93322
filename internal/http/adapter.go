package http

import (
	"encoding/json"
	"net/http"

	"log-reader/internal/shared/loggers"
	"log-reader/internal/shared/svcerrors"
)

// AppHttpHandler is a handler that reports failures as errors instead of writing them itself.
type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// ErrorResponse is the body of every error reply of the status server.
type ErrorResponse struct {
	RequestID        string `json:"requestId"`
	ErrorCategory    string `json:"errorCategory"`
	ErrorCode        string `json:"errorCode"`
	ErrorDescription string `json:"errorDescription"`
}

func errorHandlingAdapter(httpHandler AppHttpHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := httpHandler.Handle(w, r)
		if err == nil {
			return
		}

		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}

		if svcErr.IsInternalError() {
			loggers.Ctx(r.Context()).Error().
				Err(svcErr.Cause).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("internal error in handler")
		}

		writeErrorResponse(w, r, svcErr)
	}
}

// httpStatus maps an error category onto a response status.
func httpStatus(svcErr *svcerrors.ServiceError) int {
	switch {
	case svcErr.IsInternalError():
		return http.StatusInternalServerError
	case svcErr.IsResourceConflictError():
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, svcErr *svcerrors.ServiceError) {
	if appWriter, ok := w.(*appResponseWriter); ok {
		appWriter.SetServiceError(svcErr)
	}

	status := httpStatus(svcErr)
	loggers.Ctx(r.Context()).Debug().
		Str(loggers.FieldErrorCode, svcErr.Code).
		Str("errorCategory", svcErr.Category).
		Int(loggers.FieldHttpStatus, status).
		Msg("error response")

	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		RequestID:        requestID(r),
		ErrorCategory:    svcErr.Category,
		ErrorCode:        svcErr.Code,
		ErrorDescription: svcErr.Message,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set(headerContentType, contentTypeJSON)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
