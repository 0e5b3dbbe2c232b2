package handlers

import (
	userRepo "roamstay/database/repository/user"
)

// HandlerBundle collects the wired handlers plus the user repository the
// auth middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking  *BookingHandler
	Property *PropertyHandler
	User     *UserHandler
	Review   *ReviewHandler
	Payment  *PaymentHandler
}
