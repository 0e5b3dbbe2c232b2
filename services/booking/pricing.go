package booking

import (
	"context"
	"math"
	"time"

	"roamstay/models"
)

// StayPrice computes the total for a stay from the nightly rate and the
// half-open date span. Partial days round up to whole nights.
func StayPrice(pricePerNight float64, start, end time.Time) float64 {
	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return pricePerNight * float64(nights)
}

// PlatformFee derives the platform's cut from a gross revenue figure.
func (p Policy) PlatformFee(gross float64) float64 {
	rate := p.PlatformFeeRate
	if rate == 0 {
		rate = 0.14
	}
	return gross * rate
}

// RevenueSummary sums totalPrice over completed line items. A host sees only
// their own revenue; an admin may pass any hostID or leave it empty for the
// platform-wide figure.
func (s *DefaultBookingService) RevenueSummary(ctx context.Context, caller models.Caller, hostID string) (*models.RevenueSummary, error) {
	switch {
	case caller.IsAdmin():
		// Any scope.
	case caller.IsHost():
		hostID = caller.ID
	default:
		return nil, &ForbiddenError{Action: "view revenue"}
	}

	gross, completed, err := s.Repo.HostRevenue(ctx, hostID)
	if err != nil {
		return nil, err
	}
	fee := s.Policy.PlatformFee(gross)
	return &models.RevenueSummary{
		HostID:      hostID,
		Gross:       gross,
		PlatformFee: fee,
		Net:         gross - fee,
		Completed:   completed,
	}, nil
}

// ComputeDue quotes the amount the payment collaborator should collect: the
// sum of the booking's pending line items.
func (s *DefaultBookingService) ComputeDue(ctx context.Context, bookingID string) (float64, error) {
	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return 0, err
	}
	if booking == nil {
		return 0, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	var due float64
	for _, res := range booking.Properties {
		if res.Status == models.StatusPending {
			due += res.TotalPrice
		}
	}
	return due, nil
}
