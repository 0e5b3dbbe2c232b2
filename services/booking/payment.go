package booking

import (
	"context"

	"roamstay/models"
	"roamstay/utils"

	"go.uber.org/zap"
)

// OnPaymentCompleted is the payment collaborator's success callback: every
// pending line item of the booking moves to completed and the payment status
// is stamped paid. Guarded on pending so a line item cancelled in the
// meantime is left alone.
func (s *DefaultBookingService) OnPaymentCompleted(ctx context.Context, bookingID string) error {
	if _, err := s.fetch(ctx, bookingID); err != nil {
		return err
	}
	moved, err := s.Repo.SetAllReservationStatuses(ctx, bookingID,
		[]string{models.StatusPending}, models.StatusCompleted, "")
	if err != nil {
		return err
	}
	if err := s.Repo.SetAllPaymentStatuses(ctx, bookingID, models.PaymentPaid); err != nil {
		return err
	}
	utils.GetLogger().Info("payment completed",
		zap.String("bookingID", bookingID), zap.Int64("lineItems", moved))
	return nil
}

// OnPaymentFailed is the failure callback: pending line items are cancelled
// and the payment status is stamped failed.
func (s *DefaultBookingService) OnPaymentFailed(ctx context.Context, bookingID string) error {
	if _, err := s.fetch(ctx, bookingID); err != nil {
		return err
	}
	moved, err := s.Repo.SetAllReservationStatuses(ctx, bookingID,
		[]string{models.StatusPending}, models.StatusCancelled, "Cancelled after payment failure")
	if err != nil {
		return err
	}
	if err := s.Repo.SetAllPaymentStatuses(ctx, bookingID, models.PaymentFailed); err != nil {
		return err
	}
	utils.GetLogger().Warn("payment failed",
		zap.String("bookingID", bookingID), zap.Int64("lineItems", moved))
	return nil
}
