package jobs

import (
	"context"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// PendingBacklogJob watches for orders stuck in Pending. Runs every minute
// and logs each store whose backlog has orders older than the threshold, so
// operators notice stores that stopped accepting.
type PendingBacklogJob struct {
	handler   queries.GetPendingBacklogQueryHandler
	threshold time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPendingBacklogJob creates a job that reports Pending orders older than
// the given threshold.
func NewPendingBacklogJob(
	handler queries.GetPendingBacklogQueryHandler,
	threshold time.Duration,
	logger *slog.Logger,
) *PendingBacklogJob {
	return &PendingBacklogJob{
		handler:   handler,
		threshold: threshold,
		cron:      cron.New(),
		logger:    logger.With("component", "pending_backlog_job"),
	}
}

// Start begins the backlog job to run every minute.
func (j *PendingBacklogJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewGetPendingBacklogQuery(j.threshold)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Pending backlog job misconfigured", "error", queryErr)
			return
		}

		backlog, handleErr := j.handler.Handle(ctx, query)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Pending backlog job failed", "error", handleErr)
			return
		}

		for _, entry := range backlog {
			j.logger.WarnContext(ctx, "Store has overdue pending orders",
				"store_id", entry.StoreID.String(),
				"pending_count", entry.PendingCount,
				"oldest_at", entry.OldestAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending backlog job started (running every minute)")
	return nil
}

// Stop stops the backlog job.
func (j *PendingBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending backlog job stopped")
}
