package property

import (
	"context"
	"errors"
	"time"

	propertyRepo "roamstay/database/repository/property"
	"roamstay/models"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("property not found")
	ErrNotAuthorized = errors.New("not authorized to manage this property")
)

// PropertyService manages listings. The booking engine consumes it only
// through Resolve.
type PropertyService interface {
	Create(ctx context.Context, caller models.Caller, input models.PropertyInput) (*models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	GetAll(ctx context.Context) ([]models.Property, error)
	GetByHost(ctx context.Context, hostID string) ([]models.Property, error)
	Update(ctx context.Context, caller models.Caller, id string, input models.PropertyInput) (*models.Property, error)
	Delete(ctx context.Context, caller models.Caller, id string) error
	Resolve(ctx context.Context, id string) (*models.PropertyRef, error)
}

// DefaultPropertyService implements PropertyService.
type DefaultPropertyService struct {
	Repo propertyRepo.PropertyRepository
}

// Create registers a listing owned by the calling host.
func (s *DefaultPropertyService) Create(ctx context.Context, caller models.Caller, input models.PropertyInput) (*models.Property, error) {
	if !caller.IsHost() && !caller.IsAdmin() {
		return nil, ErrNotAuthorized
	}
	now := time.Now().UTC()
	p := &models.Property{
		ID:            uuid.New().String(),
		HostID:        caller.ID,
		Title:         input.Title,
		Description:   input.Description,
		PricePerNight: input.PricePerNight,
		Address:       input.Address,
		Images:        input.Images,
		PetsAllowed:   input.PetsAllowed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPropertyService) GetByID(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *DefaultPropertyService) GetAll(ctx context.Context) ([]models.Property, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultPropertyService) GetByHost(ctx context.Context, hostID string) ([]models.Property, error) {
	return s.Repo.GetByHost(ctx, hostID)
}

func (s *DefaultPropertyService) Update(ctx context.Context, caller models.Caller, id string, input models.PropertyInput) (*models.Property, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() && p.HostID != caller.ID {
		return nil, ErrNotAuthorized
	}
	p.Title = input.Title
	p.Description = input.Description
	p.PricePerNight = input.PricePerNight
	p.Address = input.Address
	p.Images = input.Images
	p.PetsAllowed = input.PetsAllowed
	p.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *DefaultPropertyService) Delete(ctx context.Context, caller models.Caller, id string) error {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() && p.HostID != caller.ID {
		return ErrNotAuthorized
	}
	return s.Repo.Delete(ctx, id)
}

func (s *DefaultPropertyService) Resolve(ctx context.Context, id string) (*models.PropertyRef, error) {
	return s.Repo.Resolve(ctx, id)
}
