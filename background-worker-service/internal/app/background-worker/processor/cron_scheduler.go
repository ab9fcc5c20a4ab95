package processor

import (
	"context"

	"trustmarket/background-worker-service/internal/app/background-worker/service"
	"trustmarket/pkg/logger"

	"github.com/robfig/cron/v3"
)

// CronScheduler запускает ночной пересчёт грейдов продавцов по расписанию
type CronScheduler struct {
	cron       *cron.Cron
	regradeSvc service.RegradeServiceInterface
}

func NewCronScheduler(regradeSvc service.RegradeServiceInterface) *CronScheduler {
	// Расписание с секундами, как "0 0 2 * * *" - каждую ночь в 02:00
	c := cron.New(cron.WithSeconds())

	return &CronScheduler{
		cron:       c,
		regradeSvc: regradeSvc,
	}
}

func (s *CronScheduler) Start(ctx context.Context, schedule string) error {
	logger.Info().
		Str("schedule", schedule).
		Msg("Starting cron scheduler")

	_, err := s.cron.AddFunc(schedule, func() {
		logger.Info().Msg("Cron job triggered: regrading merchants")

		if _, err := s.regradeSvc.RegradeAllMerchants(ctx); err != nil {
			logger.Error().Err(err).Msg("Failed to regrade merchants")
		}
	})

	if err != nil {
		return err
	}

	s.cron.Start()
	logger.Info().Msg("Cron scheduler started")

	return nil
}

func (s *CronScheduler) Stop() {
	logger.Info().Msg("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("Cron scheduler stopped")
}

func (s *CronScheduler) GetEntries() []cron.Entry {
	return s.cron.Entries()
}
