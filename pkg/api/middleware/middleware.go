package middleware

import (
	"net/http"
	"time"

	"github.com/cbodonnell/lumen/pkg/api/handlers"
	"github.com/cbodonnell/lumen/pkg/log"
	"github.com/cbodonnell/lumen/pkg/messages"
)

// NewRecoverMiddleware turns a panicking handler into a server_error response.
func NewRecoverMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}
					log.Warn("Failed to handle %s request: %v", r.URL.Path, rec)
					handlers.WriteError(w, http.StatusInternalServerError, messages.ErrorCodeServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder remembers the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

// NewLogMiddleware logs every request at debug level.
func NewLogMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			log.Debug("%s %s from %s: %d in %s", r.Method, r.URL.Path, r.RemoteAddr, recorder.status, time.Since(start))
		})
	}
}
