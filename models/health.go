package models

import "time"

// HealthStatus is the backend's health-check response.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Healthy reports whether the backend declared itself operational.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// BackendStatus is the client's last-known view of the backend, maintained
// by the status service and shown on rendered pages and /healthz.
type BackendStatus struct {
	// Online is true when the most recent probe succeeded.
	Online bool `json:"online"`

	// Detail is the backend's own message on success, or the probe error
	// text on failure.
	Detail string `json:"detail,omitempty"`

	// CheckedAt is when the most recent probe finished. Zero until the
	// first probe runs.
	CheckedAt time.Time `json:"checked_at,omitzero"`
}

// Checked reports whether at least one probe has completed.
func (s BackendStatus) Checked() bool {
	return !s.CheckedAt.IsZero()
}
