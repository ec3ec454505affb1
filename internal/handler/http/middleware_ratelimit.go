package http

import (
	"net/http"

	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/utils"
)

// withRateLimit applies the per-IP budget to actions that reach the backend,
// so one aggressive client cannot monopolise it. Page views are not limited.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.ExtractIP(r)
		if !h.limiter.Allow(ip) {
			logger.FromRequest(r).Warn().
				Str("ip", ip).
				Str("uri", r.RequestURI).
				Msg("rate limit exceeded")
			http.Error(w, app.MsgRateLimited, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
