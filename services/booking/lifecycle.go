package booking

import (
	"context"
	"errors"

	bookingRepo "roamstay/database/repository/booking"
	"roamstay/models"
	"roamstay/utils"

	"go.uber.org/zap"
)

// fetch loads a booking or returns a typed NotFoundError.
func (s *DefaultBookingService) fetch(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	return booking, nil
}

// ownsEveryLineItem reports whether every reservation belongs to the host.
func ownsEveryLineItem(b *models.Booking, hostID string) bool {
	for _, res := range b.Properties {
		if res.HostID != hostID {
			return false
		}
	}
	return len(b.Properties) > 0
}

// transitionAll moves every line item of the booking to target under the
// engine policy. In strict mode any line item outside the legal source set
// rejects the whole call; in permissive mode line items already at the
// target are skipped by the storage guard.
func (s *DefaultBookingService) transitionAll(ctx context.Context, booking *models.Booking, target, reason string) error {
	if s.Policy.StrictTransitions {
		for _, res := range booking.Properties {
			if allowed, _ := s.Policy.CanTransition(res.Status, target); !allowed {
				return &ConflictError{
					PropertyID: res.PropertyID,
					Reason:     "illegal transition from " + res.Status + " to " + target,
				}
			}
		}
	}
	_, err := s.Repo.SetAllReservationStatuses(ctx, booking.ID, s.Policy.TransitionSources(target), target, reason)
	return err
}

// ConfirmBooking confirms every line item. Permitted for an admin, or for a
// host who owns all of the booking's properties.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, caller models.Caller, bookingID string) error {
	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && !ownsEveryLineItem(booking, caller.ID) {
		return &ForbiddenError{Action: "confirm this booking"}
	}
	if err := s.transitionAll(ctx, booking, models.StatusConfirmed, ""); err != nil {
		return err
	}
	utils.GetLogger().Info("booking confirmed", zap.String("bookingID", bookingID))
	return nil
}

// CancelBooking cancels every line item. Only the booking's owner or an
// admin may cancel the whole booking. Cancellation preserves history; use
// DeleteBooking only when the record itself must go.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, caller models.Caller, bookingID string) error {
	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && booking.UserID != caller.ID {
		return &ForbiddenError{Action: "cancel this booking"}
	}
	if err := s.transitionAll(ctx, booking, models.StatusCancelled, "Cancelled by "+caller.Role); err != nil {
		return err
	}
	utils.GetLogger().Info("booking cancelled", zap.String("bookingID", bookingID))
	return nil
}

// transitionOne moves a single line item to target under the engine policy.
func (s *DefaultBookingService) transitionOne(ctx context.Context, booking *models.Booking, propertyID, target, reason string) error {
	res := booking.FindReservation(propertyID)
	if res == nil {
		return &NotFoundError{Resource: "reservation", ID: propertyID}
	}
	allowed, noop := s.Policy.CanTransition(res.Status, target)
	if !allowed {
		return &ConflictError{
			PropertyID: propertyID,
			Reason:     "illegal transition from " + res.Status + " to " + target,
		}
	}
	if noop {
		return nil
	}
	_, err := s.Repo.SetReservationStatus(ctx, booking.ID, propertyID, s.Policy.TransitionSources(target), target, reason)
	return err
}

// ConfirmReservation confirms one line item. Host-scoped: a host may only
// transition line items on their own properties.
func (s *DefaultBookingService) ConfirmReservation(ctx context.Context, caller models.Caller, bookingID, propertyID string) error {
	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return err
	}
	res := booking.FindReservation(propertyID)
	if res == nil {
		return &NotFoundError{Resource: "reservation", ID: propertyID}
	}
	if !caller.IsAdmin() && res.HostID != caller.ID {
		return &ForbiddenError{Action: "confirm this reservation"}
	}
	return s.transitionOne(ctx, booking, propertyID, models.StatusConfirmed, "")
}

// CancelReservation cancels one line item. Permitted for the booking's
// owner, the line item's host, or an admin.
func (s *DefaultBookingService) CancelReservation(ctx context.Context, caller models.Caller, bookingID, propertyID string) error {
	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return err
	}
	res := booking.FindReservation(propertyID)
	if res == nil {
		return &NotFoundError{Resource: "reservation", ID: propertyID}
	}
	if !caller.IsAdmin() && booking.UserID != caller.ID && res.HostID != caller.ID {
		return &ForbiddenError{Action: "cancel this reservation"}
	}
	return s.transitionOne(ctx, booking, propertyID, models.StatusCancelled, "Cancelled by "+caller.Role)
}

// UpdateReservationDates moves one line item's stay, re-running admission
// control with the booking itself excluded. Status is not reset.
func (s *DefaultBookingService) UpdateReservationDates(ctx context.Context, caller models.Caller, bookingID string, input models.UpdateDatesInput) (*models.Booking, error) {
	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && booking.UserID != caller.ID {
		return nil, &ForbiddenError{Action: "update this booking"}
	}
	res := booking.FindReservation(input.PropertyID)
	if res == nil {
		return nil, &NotFoundError{Resource: "reservation", ID: input.PropertyID}
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, &ValidationError{Field: "endDate", Reason: "end date must be after the start date"}
	}

	available, err := s.IsAvailable(ctx, input.PropertyID, input.StartDate, input.EndDate, bookingID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, &ConflictError{PropertyID: input.PropertyID, Reason: "property is already booked for the selected dates"}
	}
	// Sibling line items live in the excluded booking; check them here.
	for i := range booking.Properties {
		sibling := &booking.Properties[i]
		if sibling == res || sibling.PropertyID != input.PropertyID {
			continue
		}
		if sibling.Status != models.StatusCancelled && sibling.Overlaps(input.StartDate, input.EndDate) {
			return nil, &ConflictError{PropertyID: input.PropertyID, Reason: "dates overlap another reservation in this booking"}
		}
	}

	if err := s.Repo.UpdateReservationDates(ctx, bookingID, input.PropertyID, input.StartDate, input.EndDate); err != nil {
		if errors.Is(err, bookingRepo.ErrOverlapDetected) {
			// The advisory read missed a concurrent writer; the commit-time
			// re-check aborted the move.
			return nil, &ConflictError{PropertyID: input.PropertyID, Reason: "property is already booked for the selected dates"}
		}
		return nil, err
	}
	return s.fetch(ctx, bookingID)
}

// DeleteBooking hard-deletes the aggregate. Owner or admin only.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, caller models.Caller, bookingID string) error {
	booking, err := s.fetch(ctx, bookingID)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && booking.UserID != caller.ID {
		return &ForbiddenError{Action: "delete this booking"}
	}
	if err := s.Repo.Delete(ctx, bookingID); err != nil {
		return err
	}
	utils.GetLogger().Info("booking deleted", zap.String("bookingID", bookingID))
	return nil
}
