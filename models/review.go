package models

import "time"

// Review is a guest's rating of a property, gated on a completed stay.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"userId"`
	PropertyID string    `bson:"property_id" json:"propertyId"`
	BookingID  string    `bson:"booking_id" json:"bookingId"`
	Rating     int       `bson:"rating" json:"rating"`
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// ReviewInput is the create-review request body.
type ReviewInput struct {
	PropertyID string `json:"propertyId" binding:"required"`
	BookingID  string `json:"bookingId" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}
