package payment

import (
	"context"
	"errors"
	"time"

	paymentRepo "roamstay/database/repository/payment"
	"roamstay/models"
	"roamstay/services/booking"
	"roamstay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrUnknownOutcome = errors.New("unknown payment outcome")

// PaymentService records gateway settlement outcomes and drives the booking
// engine's payment callbacks. It never talks to a gateway itself; the
// gateway reports outcomes to us.
type PaymentService interface {
	Initiate(ctx context.Context, caller models.Caller, bookingID, method string) (*models.Payment, error)
	RecordOutcome(ctx context.Context, paymentID, outcome string) (*models.Payment, error)
	GetByBooking(ctx context.Context, caller models.Caller, bookingID string) ([]models.Payment, error)
	Summary(ctx context.Context, caller models.Caller) (*models.PaymentSummary, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Repo       paymentRepo.PaymentRepository
	BookingSvc booking.BookingService
}

// Initiate opens a settlement attempt quoting the booking's pending total.
func (s *DefaultPaymentService) Initiate(ctx context.Context, caller models.Caller, bookingID, method string) (*models.Payment, error) {
	due, err := s.BookingSvc.ComputeDue(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	p := &models.Payment{
		ID:        uuid.New().String(),
		BookingID: bookingID,
		UserID:    caller.ID,
		Amount:    due,
		Method:    method,
		Status:    models.PaymentRecordPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// RecordOutcome applies the gateway's verdict and forwards it to the
// booking engine.
func (s *DefaultPaymentService) RecordOutcome(ctx context.Context, paymentID, outcome string) (*models.Payment, error) {
	p, err := s.Repo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, errors.New("payment not found")
	}

	switch outcome {
	case models.PaymentRecordCompleted:
		if err := s.BookingSvc.OnPaymentCompleted(ctx, p.BookingID); err != nil {
			return nil, err
		}
	case models.PaymentRecordFailed:
		if err := s.BookingSvc.OnPaymentFailed(ctx, p.BookingID); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownOutcome
	}

	if err := s.Repo.SetStatus(ctx, paymentID, outcome); err != nil {
		return nil, err
	}
	p.Status = outcome
	utils.GetLogger().Info("payment outcome recorded",
		zap.String("paymentID", paymentID),
		zap.String("bookingID", p.BookingID),
		zap.String("outcome", outcome))
	return p, nil
}

// GetByBooking lists a booking's settlement attempts. An admin sees all of
// them; anyone else only the payments they initiated themselves.
func (s *DefaultPaymentService) GetByBooking(ctx context.Context, caller models.Caller, bookingID string) ([]models.Payment, error) {
	payments, err := s.Repo.GetByBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if caller.IsAdmin() {
		return payments, nil
	}
	own := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.UserID == caller.ID {
			own = append(own, p)
		}
	}
	return own, nil
}

// Summary is the admin dashboard aggregation.
func (s *DefaultPaymentService) Summary(ctx context.Context, caller models.Caller) (*models.PaymentSummary, error) {
	if !caller.IsAdmin() {
		return nil, errors.New("not authorized to view payment summary")
	}
	return s.Repo.Summary(ctx)
}
