package service

import (
	"context"
	"sync"
	"time"
)

type statusJob struct {
	statusService StatusService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewStatusJob creates a statusJob that refreshes the backend availability
// snapshot on a ticker. The job is idle until Start is called.
func NewStatusJob(statusService StatusService) StatusJob {
	return &statusJob{statusService: statusService}
}

// Start implements [StatusJob]. It stops any previously running job, then
// launches a background goroutine that probes once immediately and again on
// every interval tick. If interval is zero or negative it defaults to 30
// seconds. The goroutine exits when ctx is cancelled or Stop is called.
func (j *statusJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.statusService.Check(jobCtx)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.statusService.Check(jobCtx)
			}
		}
	}()
}

// Stop implements [StatusJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *statusJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
