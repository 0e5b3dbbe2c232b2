package bookingRepo

import (
	"context"
	"time"

	"roamstay/models"
)

// BookingRepository defines data access for booking aggregates. All status
// mutations are conditional updates: the filter carries the expected prior
// statuses so a concurrent writer cannot be silently overwritten.
type BookingRepository interface {
	// CreateWithOverlapCheck inserts the booking inside a transaction and
	// re-runs the overlap count for every line item before committing.
	// Returns ErrOverlapDetected if a concurrent writer got there first.
	CreateWithOverlapCheck(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetByHost(ctx context.Context, hostID string) ([]models.Booking, error)
	GetInRange(ctx context.Context, start, end time.Time) ([]models.Booking, error)
	Delete(ctx context.Context, id string) error

	// CountOverlapping counts non-cancelled reservations on the property
	// whose [start_date, end_date) intersects [start, end). A non-empty
	// excludeBookingID leaves that aggregate out of the scan.
	CountOverlapping(ctx context.Context, propertyID string, start, end time.Time, excludeBookingID string) (int64, error)

	// UpdateReservationDates moves one line item's stay inside a transaction,
	// re-running the overlap count for the new interval before committing.
	// Returns ErrOverlapDetected if a concurrent writer got there first.
	UpdateReservationDates(ctx context.Context, bookingID, propertyID string, start, end time.Time) error

	// SetReservationStatus transitions one line item from any of the given
	// prior statuses to the target status, returning the number of line
	// items actually changed (0 when the guard did not match).
	SetReservationStatus(ctx context.Context, bookingID, propertyID string, from []string, to, reason string) (int64, error)

	// SetAllReservationStatuses applies the same guarded transition to every
	// line item of the booking.
	SetAllReservationStatuses(ctx context.Context, bookingID string, from []string, to, reason string) (int64, error)

	// SetAllPaymentStatuses stamps the payment status on every line item.
	SetAllPaymentStatuses(ctx context.Context, bookingID, paymentStatus string) error

	// FindStalePending lists bookings created before the cutoff that still
	// carry at least one pending line item.
	FindStalePending(ctx context.Context, cutoff time.Time) ([]models.Booking, error)

	// HostRevenue sums total_price over completed line items, optionally
	// scoped to one host (empty hostID means platform-wide).
	HostRevenue(ctx context.Context, hostID string) (gross float64, completed int, err error)
}
