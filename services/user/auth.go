package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"roamstay/models"
	"roamstay/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// Register creates an account and signs the first token in.
func (s *DefaultUserService) Register(ctx context.Context, input models.RegisterUserInput) (*models.User, string, error) {
	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email %s is already registered", input.Email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	role := input.Role
	if role == "" {
		role = models.RoleGuest
	}
	now := time.Now().UTC()
	u := &models.User{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}
	token, err := s.signIn(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Authenticate verifies credentials and issues a fresh token, replacing any
// previously issued one.
func (s *DefaultUserService) Authenticate(ctx context.Context, input models.AuthenticateUserInput) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", err
	}
	if u == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.signIn(ctx, u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// signIn issues a token, stores its hash for revocation checks and caches
// the hash in Redis so the auth middleware can skip the database on the hot
// path.
func (s *DefaultUserService) signIn(ctx context.Context, u *models.User) (string, error) {
	token, err := utils.GenerateToken(u.ID, u.Role, utils.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.SetTokenHash(ctx, u.ID, tokenHash); err != nil {
		return "", err
	}
	cache := utils.GetAuthCacheClient()
	_ = cache.Set(ctx, utils.AuthCachePrefix+u.ID, tokenHash, utils.AuthCacheTTL).Err()
	return token, nil
}

// RevokeToken invalidates the user's current token.
func (s *DefaultUserService) RevokeToken(ctx context.Context, id string) error {
	if err := s.Repo.SetTokenHash(ctx, id, ""); err != nil {
		return err
	}
	cache := utils.GetAuthCacheClient()
	return cache.Del(ctx, utils.AuthCachePrefix+id).Err()
}
