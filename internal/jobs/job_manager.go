package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	pendingBacklogJob *PendingBacklogJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	backlogHandler queries.GetPendingBacklogQueryHandler,
	backlogThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingBacklogJob: NewPendingBacklogJob(backlogHandler, backlogThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingBacklogJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending backlog job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingBacklogJob.Stop()
}
