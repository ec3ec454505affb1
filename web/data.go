package web

import (
	"github.com/rapozcode/webclient/internal/session"
	"github.com/rapozcode/webclient/models"
)

// FocusOptions lists the review focus areas the review page offers, in
// display order.
func FocusOptions() []string {
	return []string{"Code Quality", "Performance", "Security", "Best Practices", "Debugging"}
}

// BaseData carries the fields the shared layout renders on every page:
// the title, the highlighted nav entry, the build version, the last-known
// backend status, and the optional inline error or notice box. ErrorDetail
// is the backend's own error text, shown under the friendly message.
type BaseData struct {
	Title       string
	Active      string
	Version     string
	Backend     models.BackendStatus
	Error       string
	ErrorDetail string
	Notice      string
}

// HomeData renders the home page.
type HomeData struct {
	BaseData
}

// GeneratorData renders the problem generator page: the form with its last
// submitted values and, after a successful generation, the problem itself.
type GeneratorData struct {
	BaseData

	Form            session.GeneratorForm
	Difficulties    []models.Difficulty
	LanguageChoices []models.LanguageChoice

	// Topic and Problem describe the session's current problem; nil
	// Problem hides the problem block.
	Topic   string
	Problem *models.Problem
}

// EditorData renders the code editor page: the code form, the session's
// current problem, and the outcome of the last Run or Review action.
type EditorData struct {
	BaseData

	Form      session.EditorForm
	Languages []models.Language
	Problem   *models.Problem

	Result   *models.ExecutionResult
	Feedback *models.ReviewFeedback
}

// ReviewData renders the code review page: the review form and, after a
// submit, the reviewer's feedback.
type ReviewData struct {
	BaseData

	Form         session.ReviewForm
	Languages    []models.Language
	FocusOptions []string
	Problem      *models.Problem

	Feedback *models.ReviewFeedback
}

// AboutData renders the about page.
type AboutData struct {
	BaseData
}
