package jobs

import (
	"context"

	"levaai/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// DefaultQuoteExpirySchedule fires at second zero of every minute.
const DefaultQuoteExpirySchedule = "0 * * * * *"

// QuoteExpiryJob drops quotes whose TTL has passed so abandoned estimates do
// not pile up in the quote book.
type QuoteExpiryJob struct {
	handler  commands.ExpireQuotesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   zerolog.Logger
}

func NewQuoteExpiryJob(handler commands.ExpireQuotesCommandHandler, schedule string, logger zerolog.Logger) *QuoteExpiryJob {
	if schedule == "" {
		schedule = DefaultQuoteExpirySchedule
	}
	return &QuoteExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With().Str("component", "quote_expiry_job").Logger(),
	}
}

func (j *QuoteExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info().Str("schedule", j.schedule).Msg("quote expiry job started")
	return nil
}

// Run performs one sweep.
func (j *QuoteExpiryJob) Run(ctx context.Context) {
	removed, err := j.handler.Handle(ctx, commands.NewExpireQuotesCommand())
	if err != nil {
		j.logger.Error().Err(err).Msg("quote expiry job failed")
		return
	}
	if removed > 0 {
		j.logger.Debug().Int("removed", removed).Msg("expired quotes removed")
	}
}

// Stop waits for a running sweep to finish.
func (j *QuoteExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info().Msg("quote expiry job stopped")
}
