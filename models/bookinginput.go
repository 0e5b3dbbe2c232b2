package models

import "time"

// ReservationInput is one requested line item in a booking creation call.
// Client-supplied price fields are advisory only; the service recomputes the
// authoritative totals from the property's nightly rate.
type ReservationInput struct {
	PropertyID    string    `json:"propertyId" binding:"required"`
	StartDate     time.Time `json:"startDate" binding:"required"`
	EndDate       time.Time `json:"endDate" binding:"required"`
	Companions    int       `json:"companions" binding:"required"`
	PetsAllowed   bool      `json:"petsAllowed"`
	PaymentMethod string    `json:"paymentMethod" binding:"required"`
	TotalPrice    float64   `json:"totalPrice"`
}

// CreateBookingInput is the request body for booking creation.
type CreateBookingInput struct {
	Properties []ReservationInput `json:"properties" binding:"required,min=1"`
}

// DateRangeInput selects bookings intersecting a query window.
type DateRangeInput struct {
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
}

// UpdateDatesInput moves one line item's stay to a new interval.
type UpdateDatesInput struct {
	PropertyID string    `json:"propertyId" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
}
