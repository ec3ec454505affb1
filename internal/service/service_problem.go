package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/models"
)

type problemService struct {
	backend adapter.BackendAdapter
}

func NewProblemService(backend adapter.BackendAdapter) ProblemService {
	return &problemService{backend: backend}
}

// Generate implements [ProblemService].
func (s *problemService) Generate(ctx context.Context, topic string, difficulty models.Difficulty, language models.LanguageChoice) (models.Problem, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return models.Problem{}, ErrEmptyTopic
	}

	req := models.GenerateProblemRequest{
		Topic: composeTopic(topic, difficulty, language),
	}

	problem, err := s.backend.GenerateProblem(ctx, req)
	if err != nil {
		return models.Problem{}, fmt.Errorf("%w: %w", ErrGenerateProblem, err)
	}

	return problem, nil
}

// composeTopic builds the enhanced topic the backend's prompt expects:
// "<topic> - <difficulty> level", extended with " in <language>" when a
// specific language was chosen.
func composeTopic(topic string, difficulty models.Difficulty, language models.LanguageChoice) string {
	enhanced := fmt.Sprintf("%s - %s level", topic, difficulty)
	if language != models.AnyLanguage {
		enhanced += fmt.Sprintf(" in %s", language)
	}

	return enhanced
}
