package cron

import (
	"context"
	"time"

	"roamstay/config"
	"roamstay/services/booking"
	"roamstay/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartBookingCleanup schedules the stale-pending sweep and returns the
// running scheduler so main can stop it on shutdown. A failed pass only
// logs; the next tick retries.
func StartBookingCleanup(svc booking.BookingService) *cron.Cron {
	logger := utils.GetLogger()

	spec := config.AppConfig.SweepSpec
	if spec == "" {
		spec = "*/30 * * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		logger.Info("running booking cleanup job")
		cancelled, err := svc.SweepStalePending(ctx)
		if err != nil {
			logger.Error("booking cleanup job failed", zap.Error(err))
			return
		}
		logger.Info("booking cleanup job finished", zap.Int("cancelled", cancelled))
	})
	if err != nil {
		logger.Fatal("failed to schedule booking cleanup", zap.Error(err))
	}

	c.Start()
	logger.Info("booking cleanup scheduled", zap.String("spec", spec))
	return c
}
