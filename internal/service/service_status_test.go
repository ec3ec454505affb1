package service

import (
	"context"
	"testing"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/internal/mock"
	"github.com/rapozcode/webclient/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStatusSvc(t *testing.T) (*statusService, *mock.MockBackendAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewStatusService(mockAdapter).(*statusService)
	return svc, mockAdapter
}

// ── Check ───────────────────────────────────────────────────────────────────

func TestCheck_Online(t *testing.T) {
	svc, mockAdapter := newTestStatusSvc(t)

	mockAdapter.EXPECT().
		Health(gomock.Any()).
		Return(models.HealthStatus{Status: "healthy", Message: "AI Coding Platform Backend is running"}, nil)

	status := svc.Check(context.Background())

	assert.True(t, status.Online)
	assert.Equal(t, "AI Coding Platform Backend is running", status.Detail)
	assert.True(t, status.Checked())
}

func TestCheck_UnhealthyStatus(t *testing.T) {
	svc, mockAdapter := newTestStatusSvc(t)

	mockAdapter.EXPECT().
		Health(gomock.Any()).
		Return(models.HealthStatus{Status: "degraded"}, nil)

	status := svc.Check(context.Background())

	assert.False(t, status.Online)
	assert.Equal(t, "backend reported status degraded", status.Detail)
	assert.True(t, status.Checked())
}

func TestCheck_Unreachable(t *testing.T) {
	svc, mockAdapter := newTestStatusSvc(t)

	mockAdapter.EXPECT().
		Health(gomock.Any()).
		Return(models.HealthStatus{}, adapter.ErrBackendUnreachable)

	status := svc.Check(context.Background())

	assert.False(t, status.Online)
	assert.Contains(t, status.Detail, "backend unreachable")
	assert.True(t, status.Checked())
}

// ── Snapshot ────────────────────────────────────────────────────────────────

func TestSnapshot_BeforeFirstCheck(t *testing.T) {
	svc, _ := newTestStatusSvc(t)

	status := svc.Snapshot()

	assert.False(t, status.Online)
	assert.Equal(t, MsgBackendNotChecked, status.Detail)
	assert.False(t, status.Checked())
}

func TestSnapshot_AfterCheck(t *testing.T) {
	svc, mockAdapter := newTestStatusSvc(t)

	mockAdapter.EXPECT().
		Health(gomock.Any()).
		Return(models.HealthStatus{Status: "healthy", Message: "up"}, nil)

	checked := svc.Check(context.Background())

	snapshot := svc.Snapshot()
	require.Equal(t, checked, snapshot)
	assert.True(t, snapshot.Online)
}
