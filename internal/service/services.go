package service

import (
	"github.com/rapozcode/webclient/internal/adapter"
)

// Services bundles every page-facing service plus the background status
// poller, so handlers and workers receive one dependency.
type Services struct {
	Problem   ProblemService
	Workbench WorkbenchService
	Review    ReviewService
	Status    StatusService
	StatusJob StatusJob
}

func NewServices(backend adapter.BackendAdapter) *Services {
	statusSvc := NewStatusService(backend)

	return &Services{
		Problem:   NewProblemService(backend),
		Workbench: NewWorkbenchService(backend),
		Review:    NewReviewService(backend),
		Status:    statusSvc,
		StatusJob: NewStatusJob(statusSvc),
	}
}
