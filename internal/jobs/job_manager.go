package jobs

import (
	"fmt"

	"levaai/internal/core/application/usecases/commands"

	"github.com/rs/zerolog"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	quoteExpiryJob *QuoteExpiryJob
}

func NewJobManager(
	expireQuotesHandler commands.ExpireQuotesCommandHandler,
	quoteExpirySchedule string,
	logger zerolog.Logger,
) *JobManager {
	return &JobManager{
		quoteExpiryJob: NewQuoteExpiryJob(expireQuotesHandler, quoteExpirySchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.quoteExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start quote expiry job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.quoteExpiryJob.Stop()
}
