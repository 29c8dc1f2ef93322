package reports

import (
	"sync"
	"time"

	"log-reader/internal/models"
)

// ProgressTracker records how far a run has come. It is written by the report service and read
// concurrently by the status endpoint.
type ProgressTracker struct {
	mu       sync.RWMutex
	progress models.Progress
	now      func() time.Time
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		progress: models.Progress{State: models.RunStatePending},
		now:      time.Now,
	}
}

// Snapshot returns a copy safe to hand out.
func (t *ProgressTracker) Snapshot() models.Progress {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.progress
}

func (t *ProgressTracker) start(directory string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	startedAt := t.now().UTC()
	t.progress = models.Progress{
		State:     models.RunStateRunning,
		Directory: directory,
		StartedAt: &startedAt,
	}
}

func (t *ProgressTracker) batchDispatched(files int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.FilesDispatched += files
}

func (t *ProgressTracker) batchCompleted(files, succeeded int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.progress.BatchesCompleted++
	t.progress.FilesSucceeded += succeeded
	t.progress.FilesFailed += files - succeeded
}

func (t *ProgressTracker) finish(err error) models.Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	finishedAt := t.now().UTC()
	t.progress.FinishedAt = &finishedAt
	t.progress.State = models.RunStateSucceeded
	if err != nil {
		t.progress.State = models.RunStateFailed
		t.progress.Error = err.Error()
	}
	return t.progress
}
