package workers

import (
	"context"
	"time"

	"github.com/rapozcode/webclient/internal/config"
	"github.com/rapozcode/webclient/internal/logger"
	"github.com/rapozcode/webclient/internal/service"
	"github.com/rapozcode/webclient/internal/session"
)

// Workers bundles the web client's background processes so main can start
// and stop them as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers wires the standard worker set: the backend availability poller
// on cfg.Workers.HealthInterval and the session janitor on
// cfg.Sessions.CleanupInterval.
func NewWorkers(services *service.Services, sessions *session.Store, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	logger.Info().Msg("background workers created")
	return &Workers{
		workers: []Worker{
			&statusWorker{job: services.StatusJob, interval: cfg.Workers.HealthInterval},
			&janitorWorker{janitor: session.NewJanitor(sessions, logger), interval: cfg.Sessions.CleanupInterval},
		},
	}
}

// Run starts every worker. Workers launch their own goroutines, so Run
// returns immediately.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop halts every worker in reverse start order and waits for each to
// exit.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// statusWorker adapts the backend availability poller to the Worker
// lifecycle.
type statusWorker struct {
	job      service.StatusJob
	interval time.Duration
}

func (w *statusWorker) Run()  { w.job.Start(context.Background(), w.interval) }
func (w *statusWorker) Stop() { w.job.Stop() }

// janitorWorker adapts the session sweep to the Worker lifecycle.
type janitorWorker struct {
	janitor  *session.Janitor
	interval time.Duration
}

func (w *janitorWorker) Run()  { w.janitor.Start(context.Background(), w.interval) }
func (w *janitorWorker) Stop() { w.janitor.Stop() }
