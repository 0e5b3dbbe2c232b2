package user

import (
	"context"

	userRepo "roamstay/database/repository/user"
	"roamstay/models"
)

// UserService manages platform accounts and authentication.
type UserService interface {
	Register(ctx context.Context, input models.RegisterUserInput) (*models.User, string, error)
	Authenticate(ctx context.Context, input models.AuthenticateUserInput) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, caller models.Caller, u *models.User) (*models.User, error)
	Delete(ctx context.Context, caller models.Caller, id string) error
	RevokeToken(ctx context.Context, id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
