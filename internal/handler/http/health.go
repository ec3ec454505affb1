package http

import (
	"net/http"

	"github.com/rapozcode/webclient/internal/utils"
	"github.com/rapozcode/webclient/models"
)

// healthResponse is the /healthz payload: the client's own state, its
// version, and the backend's reachability as of this request.
type healthResponse struct {
	Status  string               `json:"status"`
	Version string               `json:"version"`
	Backend models.BackendStatus `json:"backend"`
}

// healthz probes the backend live and reports both sides. The client itself
// serving the request is proof it is up; the response degrades to 503 when
// the backend probe fails, so orchestrators can tell the two states apart.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	backend := h.services.Status.Check(r.Context())

	status := "ok"
	code := http.StatusOK
	if !backend.Online {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	utils.WriteJSON(w, healthResponse{
		Status:  status,
		Version: h.version,
		Backend: backend,
	}, code)
}
