package models

// UserSummary is the slim user projection embedded in expanded booking
// responses.
type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReservationView is a line item expanded with its property and host for
// display.
type ReservationView struct {
	Reservation
	Property *Property    `json:"property,omitempty"`
	Host     *UserSummary `json:"host,omitempty"`
}

// BookingView is a booking expanded with the requesting guest and per-line
// property/host references.
type BookingView struct {
	ID         string            `json:"id"`
	User       *UserSummary      `json:"user,omitempty"`
	Properties []ReservationView `json:"properties"`
	CreatedAt  string            `json:"createdAt"`
	UpdatedAt  string            `json:"updatedAt"`
}
