package http

import (
	"net/http"

	"github.com/rapozcode/webclient/internal/app"
	"github.com/rapozcode/webclient/internal/config"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/service"
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/internal/utils"
	"github.com/rapozcode/webclient/web"
)

type Handler struct {
	services *service.Services
	sessions *session.Store
	renderer *web.Renderer
	limiter  *utils.RateLimiter
	uuids    *utils.UUIDGenerator
	version  string

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	sessions *session.Store,
	renderer *web.Renderer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		renderer: renderer,
		limiter:  utils.NewRateLimiter(cfg.Limits.RequestsPerMinute, cfg.Limits.Burst),
		uuids:    utils.NewUUIDGenerator(),
		version:  cfg.App.Version,
		logger:   logger,
	}
}

// currentSession loads the request's browser session. The session middleware
// guarantees one exists for page routes; the create fallback covers handlers
// invoked without it.
func (h *Handler) currentSession(r *http.Request) session.Session {
	if id, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		if sess, found := h.sessions.Get(id); found {
			return sess
		}
	}
	return h.sessions.Create()
}

// baseData assembles the layout fields every page shares. Backend state
// comes from the status poller's snapshot, so rendering never blocks on a
// health probe.
func (h *Handler) baseData(title, active string) web.BaseData {
	return web.BaseData{
		Title:   title,
		Active:  active,
		Version: h.version,
		Backend: h.services.Status.Snapshot(),
	}
}

// render executes the page template. The renderer buffers internally, so on
// failure nothing has been written yet and a plain 500 is still possible.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page, data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.render").Msg("page render failed")
		http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
	}
}
