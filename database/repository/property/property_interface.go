package propertyRepo

import (
	"context"

	"roamstay/models"
)

// PropertyRepository defines data access for property listings.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id string) (*models.Property, error)
	GetAll(ctx context.Context) ([]models.Property, error)
	GetByHost(ctx context.Context, hostID string) ([]models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id string) error

	// Resolve returns the slim projection the booking engine needs, or nil
	// when the property does not exist.
	Resolve(ctx context.Context, id string) (*models.PropertyRef, error)

	// UpdateRating recomputes the listing's aggregate rating.
	UpdateRating(ctx context.Context, id string, rating float64) error
}
