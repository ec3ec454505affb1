package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rapozcode/webclient/internal/adapter"
	"github.com/rapozcode/webclient/models"
)

type reviewService struct {
	backend adapter.BackendAdapter
}

func NewReviewService(backend adapter.BackendAdapter) ReviewService {
	return &reviewService{backend: backend}
}

// Review implements [ReviewService].
func (s *reviewService) Review(ctx context.Context, req ReviewRequest) (models.ReviewFeedback, error) {
	if strings.TrimSpace(req.Code) == "" {
		return models.ReviewFeedback{}, ErrEmptyCode
	}
	if _, ok := models.ParseLanguage(string(req.Language)); !ok {
		return models.ReviewFeedback{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, req.Language)
	}

	wireReq := models.ReviewCodeRequest{
		Code:     req.Code,
		Language: req.Language,
		Problem:  composeReviewProblem(req),
	}

	feedback, err := s.backend.ReviewCode(ctx, wireReq)
	if err != nil {
		return models.ReviewFeedback{}, fmt.Errorf("%w: %w", ErrReviewCode, err)
	}

	// The reviewer reports its own failures inside a 200 response.
	if feedback.Failed() {
		detail := feedback.Err
		if feedback.Message != "" {
			detail += ": " + feedback.Message
		}
		return models.ReviewFeedback{}, fmt.Errorf("%w: %s", ErrReviewCode, detail)
	}

	return feedback, nil
}

// composeReviewProblem folds the free-text context and the selected focus
// areas into the problem sent with the review, so the reviewer sees them.
// The session's current problem, when present, is copied rather than
// mutated: the enriched statement must not leak back into the session.
func composeReviewProblem(req ReviewRequest) *models.Problem {
	contextText := strings.TrimSpace(req.Context)
	if len(req.Focus) > 0 {
		focusLine := "Review focus: " + strings.Join(req.Focus, ", ")
		if contextText != "" {
			contextText += "\n\n" + focusLine
		} else {
			contextText = focusLine
		}
	}

	if contextText == "" {
		return req.Problem
	}

	if req.Problem == nil {
		return &models.Problem{ProblemStatement: contextText}
	}

	enriched := *req.Problem
	enriched.ProblemStatement = strings.TrimSpace(enriched.ProblemStatement + "\n\n" + contextText)
	return &enriched
}
