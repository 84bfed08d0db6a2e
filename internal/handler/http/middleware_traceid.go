package http

import (
	"net/http"

	"github.com/google/uuid"
)

// TraceIDHeader carries the request trace id in both directions. The gRPC
// transport reads the same key from incoming metadata.
const TraceIDHeader = "X-Trace-ID"

// withTraceID reuses the caller's trace id or generates a new one, echoes it
// back in the response and attaches a request logger tagged with it.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set(TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(h.logger.WithTraceID(r.Context(), traceID)))
	})
}
