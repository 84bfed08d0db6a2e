package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-newsletter/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log entry per request, after the handler
// returns. Server errors are logged at error level, client errors at warn.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)
		if rw.status == 0 {
			// net/http sends 200 for handlers that write nothing
			rw.status = http.StatusOK
		}

		accessLogEvent(logger.FromRequest(r), rw.status).
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", rw.status).
			Dur("duration", time.Since(start)).
			Int("size", rw.size).
			Send()
	})
}

func accessLogEvent(log *logger.Logger, status int) *zerolog.Event {
	switch {
	case status >= http.StatusInternalServerError:
		return log.Error()
	case status >= http.StatusBadRequest:
		return log.Warn()
	default:
		return log.Info()
	}
}
