package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/neverov-dev/passvault/internal/logger"
	"github.com/neverov-dev/passvault/internal/service"
	"github.com/neverov-dev/passvault/models"
)

// fakeSynchronizer counts Refresh calls; the remaining methods are no-ops.
type fakeSynchronizer struct {
	mu        sync.Mutex
	refreshes int
}

func (f *fakeSynchronizer) Refresh(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshes++
	return nil
}

func (f *fakeSynchronizer) refreshCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.refreshes
}

func (f *fakeSynchronizer) Snapshot() service.View                            { return service.View{} }
func (f *fakeSynchronizer) Add(context.Context, models.VaultRecord) error     { return nil }
func (f *fakeSynchronizer) Update(context.Context, string, models.VaultRecord) error {
	return nil
}
func (f *fakeSynchronizer) Delete(context.Context, string) error  { return nil }
func (f *fakeSynchronizer) Filter(string) []models.VaultRecord    { return nil }
func (f *fakeSynchronizer) Subscribe(func(service.View))          {}

func TestRefreshJob_RefreshesOnTicker(t *testing.T) {
	fake := &fakeSynchronizer{}
	job := NewRefreshJob(fake, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return fake.refreshCount() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestRefreshJob_StopHaltsRefreshing(t *testing.T) {
	fake := &fakeSynchronizer{}
	job := NewRefreshJob(fake, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	assert.Eventually(t, func() bool {
		return fake.refreshCount() >= 1
	}, time.Second, 5*time.Millisecond)

	job.Stop()
	countAfterStop := fake.refreshCount()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, countAfterStop, fake.refreshCount())
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewRefreshJob(&fakeSynchronizer{}, time.Minute, logger.Nop())

	// must not panic or block
	job.Stop()
}

func TestRefreshJob_RestartReplacesPreviousRun(t *testing.T) {
	fake := &fakeSynchronizer{}
	job := NewRefreshJob(fake, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	defer job.Stop()

	assert.Eventually(t, func() bool {
		return fake.refreshCount() >= 1
	}, time.Second, 5*time.Millisecond)
}
