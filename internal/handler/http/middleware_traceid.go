package http

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rapozcode/webclient/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace ID: reused from the incoming
// header when present, freshly generated otherwise. The ID goes three ways:
// into a request-scoped child logger, into the context for the backend
// adapter to propagate on outbound calls, and into the response header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.uuids.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx = context.WithValue(ctx, utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
