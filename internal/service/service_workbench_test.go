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

func newTestWorkbenchSvc(t *testing.T) (*workbenchService, *mock.MockBackendAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewWorkbenchService(mockAdapter).(*workbenchService)
	return svc, mockAdapter
}

// ── Execute ─────────────────────────────────────────────────────────────────

func TestExecute_Success(t *testing.T) {
	svc, mockAdapter := newTestWorkbenchSvc(t)

	want := models.ExecutionResult{Success: true, Output: "Hello, World!\n"}
	mockAdapter.EXPECT().
		ExecuteCode(gomock.Any(), models.ExecuteCodeRequest{
			Code:        `print("Hello, World!")`,
			Language:    models.Python,
			CustomInput: "",
		}).
		Return(want, nil)

	got, err := svc.Execute(context.Background(), `print("Hello, World!")`, models.Python, "")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecute_ForwardsStdin(t *testing.T) {
	svc, mockAdapter := newTestWorkbenchSvc(t)

	mockAdapter.EXPECT().
		ExecuteCode(gomock.Any(), models.ExecuteCodeRequest{
			Code:        "print(input())",
			Language:    models.Python,
			CustomInput: "42\n43",
		}).
		Return(models.ExecutionResult{Success: true}, nil)

	_, err := svc.Execute(context.Background(), "print(input())", models.Python, "42\n43")

	require.NoError(t, err)
}

func TestExecute_FailedRunIsData(t *testing.T) {
	svc, mockAdapter := newTestWorkbenchSvc(t)

	failed := models.ExecutionResult{
		Success: false,
		Error:   "Compilation error: missing semicolon",
	}
	mockAdapter.EXPECT().
		ExecuteCode(gomock.Any(), gomock.Any()).
		Return(failed, nil)

	got, err := svc.Execute(context.Background(), "int main() { return 0 }", models.CPP, "")

	require.NoError(t, err, "a failed compile comes back as a result, not an error")
	assert.False(t, got.Success)
	assert.Contains(t, got.Error, "Compilation error")
}

func TestExecute_EmptyCode(t *testing.T) {
	svc, _ := newTestWorkbenchSvc(t)

	_, err := svc.Execute(context.Background(), "  \n\t ", models.Python, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyCode)
}

func TestExecute_UnsupportedLanguage(t *testing.T) {
	svc, _ := newTestWorkbenchSvc(t)

	_, err := svc.Execute(context.Background(), "puts 'hi'", models.Language("ruby"), "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Contains(t, err.Error(), "ruby")
}

func TestExecute_AdapterError(t *testing.T) {
	svc, mockAdapter := newTestWorkbenchSvc(t)

	mockAdapter.EXPECT().
		ExecuteCode(gomock.Any(), gomock.Any()).
		Return(models.ExecutionResult{}, adapter.ErrInternalServerError)

	_, err := svc.Execute(context.Background(), "print(1)", models.Python, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecuteCode)
	assert.ErrorIs(t, err, adapter.ErrInternalServerError)
}
