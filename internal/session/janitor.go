package session

import (
	"context"
	"sync"
	"time"

	"github.com/rapozcode/webclient/internal/logger"
)

// Janitor periodically sweeps expired sessions out of a Store. It follows
// the same lifecycle as the other background jobs: Start launches the
// goroutine, Stop cancels it and waits for it to exit.
type Janitor struct {
	store  *Store
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewJanitor(store *Store, logger *logger.Logger) *Janitor {
	return &Janitor{store: store, logger: logger}
}

// Start stops any previously running sweep loop, then launches a goroutine
// that calls EvictExpired on every interval tick. If interval is zero or
// negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *Janitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Debug().Dur("interval", interval).Msg("session janitor started")

	go func() {
		defer j.wg.Done()

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.store.EvictExpired()
			}
		}
	}()
}

// Stop cancels the sweep goroutine and blocks until it has exited. Safe to
// call when the janitor is not running.
func (j *Janitor) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
