package http

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"log-reader/internal/shared/loggers"
	"log-reader/internal/shared/svcerrors"
	"log-reader/internal/shared/ulid"

	"github.com/go-chi/chi/v5"
)

func setupMiddleware(router *chi.Mux, httpLogger loggers.Logger) {
	router.Use(mwRequestID(httpLogger))
	router.Use(mwAppResponseWriter)
	router.Use(mwPrometheus)
	router.Use(mwRequestCompletionLog)
	router.Use(mwRecoverer)
}

// mwAppResponseWriter wraps the writer once so every later middleware sees the same appResponseWriter.
func mwAppResponseWriter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(newAppResponseWriter(w, r.ProtoMajor), r)
	})
}

// mwPrometheus records request count and latency labelled by route pattern, not raw path.
func mwPrometheus(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)

		routePattern := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			routePattern = rctx.RoutePattern()
		}

		status := http.StatusOK
		errorCode := ""
		if appWriter, ok := w.(*appResponseWriter); ok {
			status = appWriter.StatusOrOK()
			errorCode = appWriter.ErrorCode()
		}
		metricStatusRequestsTotal.WithLabelValues(routePattern, strconv.Itoa(status), errorCode).Inc()
		metricStatusRequestDuration.WithLabelValues(routePattern).Observe(time.Since(start).Seconds())
	})
}

// mwRequestID takes the caller's request ID or mints one, and puts a request-scoped logger in the context.
func mwRequestID(httpLogger loggers.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			if id == "" {
				id = ulid.NewULID()
				setRequestID(r, id)
			}
			ctx := httpLogger.With().
				Str(loggers.FieldRequestID, id).
				Logger().WithContext(r.Context())

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func mwRequestCompletionLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			status := http.StatusOK
			if appWriter, ok := w.(*appResponseWriter); ok {
				status = appWriter.StatusOrOK()
			}
			loggers.Ctx(r.Context()).Debug().
				Str(loggers.FieldHttpMethod, r.Method).
				Str(loggers.FieldHttpPath, r.URL.Path).
				Int(loggers.FieldHttpStatus, status).
				Int64(loggers.FieldDuration, time.Since(start).Milliseconds()).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r)
	})
}

func mwRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				loggers.Ctx(r.Context()).Error().
					Bytes(loggers.FieldErrorStack, debug.Stack()).
					Msgf("http panic recovered: %v", p)

				writeErrorResponse(w, r, svcerrors.PanicError(p))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
