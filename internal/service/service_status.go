package service

import (
	"context"
	"sync"
	"time"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/models"
)

// MsgBackendNotChecked is the detail shown before the first probe completes.
const MsgBackendNotChecked = "backend not checked yet"

type statusService struct {
	backend adapter.BackendAdapter

	mu       sync.RWMutex
	snapshot models.BackendStatus
}

func NewStatusService(backend adapter.BackendAdapter) StatusService {
	return &statusService{
		backend: backend,
		snapshot: models.BackendStatus{
			Online: false,
			Detail: MsgBackendNotChecked,
		},
	}
}

// Check implements [StatusService]. An unreachable or unhealthy backend is a
// state to report, not an error to return.
func (s *statusService) Check(ctx context.Context) models.BackendStatus {
	status := models.BackendStatus{CheckedAt: time.Now()}

	health, err := s.backend.Health(ctx)
	switch {
	case err != nil:
		status.Online = false
		status.Detail = err.Error()
	case !health.Healthy():
		status.Online = false
		status.Detail = "backend reported status " + health.Status
	default:
		status.Online = true
		status.Detail = health.Message
	}

	s.mu.Lock()
	s.snapshot = status
	s.mu.Unlock()

	return status
}

// Snapshot implements [StatusService].
func (s *statusService) Snapshot() models.BackendStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot
}
