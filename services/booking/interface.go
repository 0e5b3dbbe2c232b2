package booking

import (
	"context"
	"time"

	bookingRepo "roamstay/database/repository/booking"
	propertyRepo "roamstay/database/repository/property"
	userRepo "roamstay/database/repository/user"
	"roamstay/models"
)

// BookingService owns reservation admission control and the line-item status
// lifecycle. All mutations to reservation state go through it.
type BookingService interface {
	// Admission control.
	IsAvailable(ctx context.Context, propertyID string, start, end time.Time, excludeBookingID string) (bool, error)
	FilterAvailableProperties(ctx context.Context, propertyIDs []string, start, end time.Time) ([]string, error)

	// Creation and reads.
	CreateBooking(ctx context.Context, caller models.Caller, input models.CreateBookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, caller models.Caller, id string) (*models.BookingView, error)
	ListBookings(ctx context.Context, caller models.Caller) ([]models.Booking, error)
	ListBookingsInRange(ctx context.Context, caller models.Caller, start, end time.Time) ([]models.Booking, error)
	ListUserBookings(ctx context.Context, caller models.Caller) ([]models.Booking, error)
	ListHostBookings(ctx context.Context, caller models.Caller) ([]models.Booking, error)

	// Mutations.
	UpdateReservationDates(ctx context.Context, caller models.Caller, bookingID string, input models.UpdateDatesInput) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, caller models.Caller, bookingID string) error
	CancelBooking(ctx context.Context, caller models.Caller, bookingID string) error
	ConfirmReservation(ctx context.Context, caller models.Caller, bookingID, propertyID string) error
	CancelReservation(ctx context.Context, caller models.Caller, bookingID, propertyID string) error
	DeleteBooking(ctx context.Context, caller models.Caller, bookingID string) error

	// Payment collaborator entry points.
	OnPaymentCompleted(ctx context.Context, bookingID string) error
	OnPaymentFailed(ctx context.Context, bookingID string) error
	ComputeDue(ctx context.Context, bookingID string) (float64, error)

	// Derived reads.
	RevenueSummary(ctx context.Context, caller models.Caller, hostID string) (*models.RevenueSummary, error)

	// Background maintenance.
	SweepStalePending(ctx context.Context) (int, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	PropertyRepo propertyRepo.PropertyRepository
	UserRepo     userRepo.UserRepository
	Policy       Policy
	// Now is swappable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
