package models

import "time"

// Address locates a property.
type Address struct {
	Country string `bson:"country" json:"country" binding:"required"`
	City    string `bson:"city" json:"city" binding:"required"`
}

// Property is a bookable listing owned by a host.
type Property struct {
	ID            string   `bson:"id" json:"id"`
	HostID        string   `bson:"host_id" json:"hostId"`
	Title         string   `bson:"title" json:"title"`
	Description   string   `bson:"description" json:"description"`
	PricePerNight float64  `bson:"price_per_night" json:"pricePerNight"`
	Address       Address  `bson:"address" json:"address"`
	Images        []string `bson:"images" json:"images"`
	Rating        float64  `bson:"rating" json:"rating"`
	PetsAllowed   bool     `bson:"pets_allowed" json:"petsAllowed"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// PropertyRef is the slice of a property the booking engine needs: identity
// plus the host snapshot and the rate used for server-side pricing.
type PropertyRef struct {
	ID            string
	HostID        string
	PricePerNight float64
}

// PropertyInput is the create/update request body for a listing.
type PropertyInput struct {
	Title         string   `json:"title" binding:"required,min=3,max=100"`
	Description   string   `json:"description" binding:"required,min=10"`
	PricePerNight float64  `json:"pricePerNight" binding:"required,gt=0"`
	Address       Address  `json:"address" binding:"required"`
	Images        []string `json:"images" binding:"required,min=1"`
	PetsAllowed   bool     `json:"petsAllowed"`
}
