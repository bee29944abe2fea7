package middleware

import (
	"fmt"
	"net/http"
	"registration/internal/core/domain/logging"
	"registration/internal/http/handlers/response"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// LogRequests writes one entry per finished request.
func LogRequests(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(rw, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info(
					r.Context(),
					"HTTP request handled.",
					logging.Entry("method", r.Method),
					logging.Entry("path", r.URL.Path),
					logging.Entry("status", ww.Status()),
					logging.Entry("bytes", ww.BytesWritten()),
					logging.Entry("duration", time.Since(start)),
					logging.Entry("remote", r.RemoteAddr),
				)
			}()
			next.ServeHTTP(ww, r)
		})
	}
}

// Recover turns a panic into a 500 error envelope. http.ErrAbortHandler is
// re-raised so the server can drop the connection. Reporting to Sentry is
// left to the sentryhttp handler wrapped inside.
func Recover(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", rec)
				}
				log.Error(r.Context(), "Request handler panicked.", logging.Entry("err", err))
				response.RenderError(rw, http.StatusInternalServerError, response.InternalErrorBody())
			}()
			next.ServeHTTP(rw, r)
		})
	}
}
