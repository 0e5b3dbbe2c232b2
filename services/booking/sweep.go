package booking

import (
	"context"
	"time"

	"roamstay/models"
	"roamstay/utils"

	"go.uber.org/zap"
)

// SweepStalePending cancels pending line items on bookings older than the
// staleness threshold. The cancelling update is guarded on pending, so a
// reservation confirmed between the read and the write is never clobbered.
// Idempotent: a second pass finds nothing left to cancel. A failure on one
// booking is logged and does not abort the rest of the pass.
func (s *DefaultBookingService) SweepStalePending(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	staleAfter := time.Duration(s.Policy.StaleAfterHours) * time.Hour
	if staleAfter == 0 {
		staleAfter = 3 * time.Hour
	}
	cutoff := s.now().Add(-staleAfter)

	stale, err := s.Repo.FindStalePending(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, b := range stale {
		moved, err := s.Repo.SetAllReservationStatuses(ctx, b.ID,
			[]string{models.StatusPending}, models.StatusCancelled, models.CancellationReasonStale)
		if err != nil {
			logger.Error("sweep: failed to cancel stale booking",
				zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		cancelled += int(moved)
	}

	if cancelled > 0 {
		logger.Info("sweep: cancelled stale pending reservations",
			zap.Int("lineItems", cancelled), zap.Time("cutoff", cutoff))
	}
	return cancelled, nil
}
