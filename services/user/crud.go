package user

import (
	"context"
	"errors"
	"time"

	"roamstay/models"
)

var ErrNotAuthorized = errors.New("not authorized to manage this account")

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}

// Update modifies profile fields. Password and role changes go through
// dedicated flows, not here.
func (s *DefaultUserService) Update(ctx context.Context, caller models.Caller, u *models.User) (*models.User, error) {
	if !caller.IsAdmin() && caller.ID != u.ID {
		return nil, ErrNotAuthorized
	}
	current, err := s.Repo.GetByID(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, errors.New("user not found")
	}
	current.Name = u.Name
	current.Phone = u.Phone
	current.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *DefaultUserService) Delete(ctx context.Context, caller models.Caller, id string) error {
	if !caller.IsAdmin() && caller.ID != id {
		return ErrNotAuthorized
	}
	return s.Repo.Delete(ctx, id)
}
