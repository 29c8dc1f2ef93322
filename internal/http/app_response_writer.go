package http

import (
	"net/http"

	"log-reader/internal/shared/svcerrors"

	"github.com/go-chi/chi/v5/middleware"
)

// appResponseWriter records the status and the service error of a response for the middlewares
// that run after the handler.
type appResponseWriter struct {
	middleware.WrapResponseWriter
	svcError *svcerrors.ServiceError
}

func newAppResponseWriter(w http.ResponseWriter, protoMajor int) *appResponseWriter {
	return &appResponseWriter{
		WrapResponseWriter: middleware.NewWrapResponseWriter(w, protoMajor),
	}
}

func (w *appResponseWriter) SetServiceError(svcError *svcerrors.ServiceError) {
	w.svcError = svcError
}

func (w *appResponseWriter) ErrorCode() string {
	if w.svcError != nil {
		return w.svcError.Code
	}
	return ""
}

// StatusOrOK is the written status, or 200 when the handler never wrote a header.
func (w *appResponseWriter) StatusOrOK() int {
	if status := w.Status(); status != 0 {
		return status
	}
	return http.StatusOK
}
