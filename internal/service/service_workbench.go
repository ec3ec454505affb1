package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/models"
)

type workbenchService struct {
	backend adapter.BackendAdapter
}

func NewWorkbenchService(backend adapter.BackendAdapter) WorkbenchService {
	return &workbenchService{backend: backend}
}

// Execute implements [WorkbenchService].
func (s *workbenchService) Execute(ctx context.Context, code string, language models.Language, stdin string) (models.ExecutionResult, error) {
	if strings.TrimSpace(code) == "" {
		return models.ExecutionResult{}, ErrEmptyCode
	}
	if _, ok := models.ParseLanguage(string(language)); !ok {
		return models.ExecutionResult{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	req := models.ExecuteCodeRequest{
		Code:        code,
		Language:    language,
		CustomInput: stdin,
	}

	result, err := s.backend.ExecuteCode(ctx, req)
	if err != nil {
		return models.ExecutionResult{}, fmt.Errorf("%w: %w", ErrExecuteCode, err)
	}

	return result, nil
}
