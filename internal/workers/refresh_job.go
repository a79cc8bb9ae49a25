package workers

import (
	"context"
	"sync"
	"time"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/service"
)

// DefaultRefreshInterval is used when a RefreshJob is started with a zero or
// negative interval.
const DefaultRefreshInterval = 5 * time.Minute

// RefreshJob periodically re-reads the full vault listing from the server so
// that changes made on other devices become visible without user action.
// The job is idle until Start (or Run) is called.
type RefreshJob struct {
	vault    service.Synchronizer
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob that refreshes vault through the given
// synchronizer every interval.
func NewRefreshJob(vault service.Synchronizer, interval time.Duration, logger *logger.Logger) *RefreshJob {
	return &RefreshJob{
		vault:    vault,
		interval: interval,
		logger:   logger,
	}
}

// Run implements [Worker]. It starts the job with a background context.
func (j *RefreshJob) Run() {
	j.Start(context.Background())
}

// Start stops any previously running job, then launches a background
// goroutine that refreshes the vault every interval. If the configured
// interval is zero or negative it defaults to [DefaultRefreshInterval].
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context) {
	interval := j.interval
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.vault.Refresh(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background vault refresh failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
