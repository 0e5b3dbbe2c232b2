package models

import "time"

// Payment record statuses, as reported by the external gateway.
const (
	PaymentRecordPending   = "pending"
	PaymentRecordCompleted = "completed"
	PaymentRecordFailed    = "failed"
	PaymentRecordRefunded  = "refunded"
)

// Payment is one gateway settlement attempt against a booking. The gateway
// protocol itself lives outside this service; we only record outcomes.
type Payment struct {
	ID        string    `bson:"id" json:"id"`
	BookingID string    `bson:"booking_id" json:"bookingId"`
	UserID    string    `bson:"user_id" json:"userId"`
	Amount    float64   `bson:"amount" json:"amount"`
	Method    string    `bson:"method" json:"method"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PaymentSummary aggregates payment records per status.
type PaymentSummary struct {
	TotalPayments     int64   `json:"totalPayments"`
	CompletedPayments int64   `json:"completedPayments"`
	PendingPayments   int64   `json:"pendingPayments"`
	FailedPayments    int64   `json:"failedPayments"`
	RefundedPayments  int64   `json:"refundedPayments"`
	TotalAmount       float64 `json:"totalAmount"`
	CompletedAmount   float64 `json:"completedAmount"`
	PendingAmount     float64 `json:"pendingAmount"`
	RefundedAmount    float64 `json:"refundedAmount"`
}

// RevenueSummary is the completed-bookings revenue read model. PlatformFee
// is a fixed percentage of the gross.
type RevenueSummary struct {
	HostID      string  `json:"hostId,omitempty"`
	Gross       float64 `json:"gross"`
	PlatformFee float64 `json:"platformFee"`
	Net         float64 `json:"net"`
	Completed   int     `json:"completedReservations"`
}
