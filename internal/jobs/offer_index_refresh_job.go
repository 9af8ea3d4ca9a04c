package jobs

import (
	"context"
	"log/slog"

	"agrilink/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// refreshSchedule runs the rebuild once a minute. Incremental index updates
// happen on every offer change; the rebuild only has to cap how long a missed
// update can go uncorrected.
const refreshSchedule = "0 * * * * *"

// OfferIndexRefreshJob periodically rebuilds the offer index from the entity
// store so the matching engine never works from an arbitrarily stale view.
type OfferIndexRefreshJob struct {
	handler commands.RefreshOfferIndexCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOfferIndexRefreshJob creates a job that rebuilds the offer index on a
// fixed schedule.
func NewOfferIndexRefreshJob(handler commands.RefreshOfferIndexCommandHandler, logger *slog.Logger) *OfferIndexRefreshJob {
	return &OfferIndexRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "offer_index_refresh_job"),
	}
}

// Start begins the scheduled rebuilds.
func (j *OfferIndexRefreshJob) Start() error {
	_, err := j.cron.AddFunc(refreshSchedule, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshOfferIndexCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Offer index refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Offer index refresh job started (running every minute)")
	return nil
}

// Stop stops the scheduled rebuilds.
func (j *OfferIndexRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Offer index refresh job stopped")
}
