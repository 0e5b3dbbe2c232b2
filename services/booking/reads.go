package booking

import (
	"context"
	"time"

	"roamstay/models"
	"roamstay/utils"

	"go.uber.org/zap"
)

// GetBooking returns one booking expanded with user, property and host
// references for display. Visible to the owner, an admin, or a host with a
// line item in it.
func (s *DefaultBookingService) GetBooking(ctx context.Context, caller models.Caller, id string) (*models.BookingView, error) {
	booking, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.mayView(booking, caller) {
		return nil, &ForbiddenError{Action: "view this booking"}
	}
	return s.expand(ctx, booking), nil
}

func (s *DefaultBookingService) mayView(b *models.Booking, caller models.Caller) bool {
	if caller.IsAdmin() || b.UserID == caller.ID {
		return true
	}
	for _, res := range b.Properties {
		if res.HostID == caller.ID {
			return true
		}
	}
	return false
}

// expand resolves the foreign references with explicit fetches. A missing
// reference degrades to a nil field rather than failing the read.
func (s *DefaultBookingService) expand(ctx context.Context, b *models.Booking) *models.BookingView {
	logger := utils.GetLogger()

	view := &models.BookingView{
		ID:        b.ID,
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
	if user, err := s.UserRepo.GetByID(ctx, b.UserID); err != nil {
		logger.Warn("failed to expand booking user", zap.String("userID", b.UserID), zap.Error(err))
	} else if user != nil {
		view.User = &models.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
	}

	for _, res := range b.Properties {
		item := models.ReservationView{Reservation: res}
		if property, err := s.PropertyRepo.GetByID(ctx, res.PropertyID); err != nil {
			logger.Warn("failed to expand reservation property",
				zap.String("propertyID", res.PropertyID), zap.Error(err))
		} else {
			item.Property = property
		}
		if host, err := s.UserRepo.GetByID(ctx, res.HostID); err != nil {
			logger.Warn("failed to expand reservation host",
				zap.String("hostID", res.HostID), zap.Error(err))
		} else if host != nil {
			item.Host = &models.UserSummary{ID: host.ID, Name: host.Name, Email: host.Email}
		}
		view.Properties = append(view.Properties, item)
	}
	return view
}

// ListBookings is the scoped "all bookings" read: an admin sees everything,
// a host sees bookings containing their properties with foreign line items
// filtered out.
func (s *DefaultBookingService) ListBookings(ctx context.Context, caller models.Caller) ([]models.Booking, error) {
	switch {
	case caller.IsAdmin():
		return s.Repo.GetAll(ctx)
	case caller.IsHost():
		bookings, err := s.Repo.GetByHost(ctx, caller.ID)
		if err != nil {
			return nil, err
		}
		return filterToHost(bookings, caller.ID), nil
	default:
		return nil, &ForbiddenError{Action: "list all bookings"}
	}
}

// ListBookingsInRange returns bookings intersecting the window. Admin only.
func (s *DefaultBookingService) ListBookingsInRange(ctx context.Context, caller models.Caller, start, end time.Time) ([]models.Booking, error) {
	if !caller.IsAdmin() {
		return nil, &ForbiddenError{Action: "list bookings in range"}
	}
	if !end.After(start) {
		return nil, &ValidationError{Field: "endDate", Reason: "end date must be after the start date"}
	}
	return s.Repo.GetInRange(ctx, start, end)
}

// ListUserBookings returns the caller's own bookings.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, caller models.Caller) ([]models.Booking, error) {
	return s.Repo.GetByUser(ctx, caller.ID)
}

// ListHostBookings returns bookings on the caller's properties, line items
// filtered to that host.
func (s *DefaultBookingService) ListHostBookings(ctx context.Context, caller models.Caller) ([]models.Booking, error) {
	if !caller.IsHost() && !caller.IsAdmin() {
		return nil, &ForbiddenError{Action: "list host bookings"}
	}
	bookings, err := s.Repo.GetByHost(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	return filterToHost(bookings, caller.ID), nil
}

// filterToHost strips line items belonging to other hosts.
func filterToHost(bookings []models.Booking, hostID string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		var kept []models.Reservation
		for _, res := range b.Properties {
			if res.HostID == hostID {
				kept = append(kept, res)
			}
		}
		if len(kept) > 0 {
			b.Properties = kept
			out = append(out, b)
		}
	}
	return out
}
