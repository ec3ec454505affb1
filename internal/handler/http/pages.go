package http

import (
	"net/http"

	"github.com/rapozcode/webclient/web"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageHome, web.HomeData{
		BaseData: h.baseData("Home", web.PageHome),
	})
}

// about renders the about page with a live backend probe, so its system
// status block reflects the backend as of this request rather than the
// poller's last tick.
func (h *Handler) about(w http.ResponseWriter, r *http.Request) {
	data := web.AboutData{
		BaseData: h.baseData("About", web.PageAbout),
	}
	data.Backend = h.services.Status.Check(r.Context())

	h.render(w, r, web.PageAbout, data)
}

func (h *Handler) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("User-agent: *\nDisallow: /\n"))
}
