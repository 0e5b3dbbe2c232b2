package models

import "time"

// Reservation statuses. A reservation never returns to pending.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Payment statuses for a reservation line item.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// Accepted payment methods.
const (
	PaymentMethodCard   = "card"
	PaymentMethodPaypal = "paypal"
)

// CancellationReasonStale is stamped by the cleanup sweep on timed-out
// pending reservations.
const CancellationReasonStale = "Automatically cancelled due to pending status timeout"

// Reservation is one property's stay inside a Booking. It has no identity
// outside its parent booking. HostID is snapshotted at creation and never
// refreshed, so historical bookings keep the host they were booked with even
// if the property changes hands later.
type Reservation struct {
	PropertyID         string    `bson:"property_id" json:"propertyId"`
	HostID             string    `bson:"host_id" json:"hostId"`
	Status             string    `bson:"status" json:"status"`
	StartDate          time.Time `bson:"start_date" json:"startDate"` // inclusive
	EndDate            time.Time `bson:"end_date" json:"endDate"`     // exclusive
	Price              float64   `bson:"price" json:"price"` // nightly rate at booking time
	TotalPrice         float64   `bson:"total_price" json:"totalPrice"`
	Companions         int       `bson:"companions" json:"companions"`
	PetsAllowed        bool      `bson:"pets_allowed" json:"petsAllowed"`
	PaymentMethod      string    `bson:"payment_method" json:"paymentMethod"`
	PaymentStatus      string    `bson:"payment_status" json:"paymentStatus"`
	CancellationReason string    `bson:"cancellation_reason,omitempty" json:"cancellationReason,omitempty"`
}

// Booking is the aggregate root: one guest request covering one or more
// property reservations.
type Booking struct {
	ID         string        `bson:"id" json:"id"`
	UserID     string        `bson:"user_id" json:"userId"`
	Properties []Reservation `bson:"properties" json:"properties"`
	CreatedAt  time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updated_at" json:"updatedAt"`
}

// Overlaps reports whether the reservation's stay intersects [start, end).
// Half-open convention: a stay ending on day D does not collide with one
// starting on day D.
func (r Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && r.EndDate.After(start)
}

// FindReservation returns the line item for the given property, or nil.
func (b *Booking) FindReservation(propertyID string) *Reservation {
	for i := range b.Properties {
		if b.Properties[i].PropertyID == propertyID {
			return &b.Properties[i]
		}
	}
	return nil
}
