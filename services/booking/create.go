package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "roamstay/database/repository/booking"
	"roamstay/models"
	"roamstay/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates every requested line item, prices it from the
// property's current rate and persists the aggregate atomically. Any line
// item failing any precondition fails the whole request with nothing
// persisted.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, caller models.Caller, input models.CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()
	now := s.now()

	if len(input.Properties) == 0 {
		return nil, &ValidationError{Field: "properties", Reason: "at least one reservation is required"}
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		UserID:    caller.ID,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	for _, req := range input.Properties {
		res, err := s.buildReservation(ctx, req, now)
		if err != nil {
			return nil, err
		}
		// A later line item must not collide with an earlier one in the
		// same request; the storage re-check excludes the booking itself
		// and would miss this.
		for _, accepted := range booking.Properties {
			if accepted.PropertyID == res.PropertyID && accepted.Overlaps(res.StartDate, res.EndDate) {
				return nil, &ConflictError{PropertyID: res.PropertyID, Reason: "line items in this request overlap each other"}
			}
		}
		booking.Properties = append(booking.Properties, *res)
	}

	if err := s.Repo.CreateWithOverlapCheck(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlapDetected) {
			// The initial read missed a concurrent writer; surfaced
			// identically to the advisory conflict, never swallowed.
			return nil, &ConflictError{Reason: "property is already booked for the selected dates"}
		}
		return nil, err
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("userID", caller.ID),
		zap.Int("lineItems", len(booking.Properties)))
	return booking, nil
}

// buildReservation validates one requested line item and snapshots the
// host and pricing from the resolved property.
func (s *DefaultBookingService) buildReservation(ctx context.Context, req models.ReservationInput, now time.Time) (*models.Reservation, error) {
	if req.PaymentMethod != models.PaymentMethodCard && req.PaymentMethod != models.PaymentMethodPaypal {
		return nil, &ValidationError{Field: "paymentMethod", Reason: "payment method must be card or paypal"}
	}
	maxCompanions := s.Policy.MaxCompanions
	if maxCompanions == 0 {
		maxCompanions = 10
	}
	if req.Companions < 1 || req.Companions > maxCompanions {
		return nil, &ValidationError{Field: "companions", Reason: "companions must be between 1 and the configured maximum"}
	}
	if req.StartDate.Before(now) {
		return nil, &ValidationError{Field: "startDate", Reason: "start date must be in the future"}
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, &ValidationError{Field: "endDate", Reason: "end date must be after the start date"}
	}

	ref, err := s.PropertyRepo.Resolve(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if ref == nil {
		return nil, &NotFoundError{Resource: "property", ID: req.PropertyID}
	}
	if ref.HostID == "" {
		return nil, &ValidationError{Field: "propertyId", Reason: "this property does not have a host and cannot be booked"}
	}

	available, err := s.IsAvailable(ctx, req.PropertyID, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, &ConflictError{PropertyID: req.PropertyID, Reason: "property is already booked for the selected dates"}
	}

	// Pricing is authoritative server-side; the client's totalPrice is
	// advisory only.
	total := StayPrice(ref.PricePerNight, req.StartDate, req.EndDate)

	return &models.Reservation{
		PropertyID:    ref.ID,
		HostID:        ref.HostID,
		Status:        models.StatusPending,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Price:         ref.PricePerNight,
		TotalPrice:    total,
		Companions:    req.Companions,
		PetsAllowed:   req.PetsAllowed,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentPending,
	}, nil
}
