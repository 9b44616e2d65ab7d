// Package services provides the business logic layer of the ordering
// backend: authentication, the user/group directory, the menu catalog, the
// order ledger and the payment ledger. Services enforce the consistency
// rules; handlers stay thin and repositories stay dumb.
package services

import (
	"context"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/policy"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
)

// AuthService validates login credentials against the users document.
type AuthService struct {
	users *repository.UserRepository
}

// NewAuthService creates an authentication service over the user repository.
func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Authenticate verifies the username/password pair and returns the public
// profile on success. Passwords are stored verbatim, so the comparison is
// exact string equality. The same error is returned for unknown users and
// wrong passwords so the response does not reveal which usernames exist.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Profile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		if user.Username == username && user.Password == password {
			profile := user.Profile()
			// Legacy records may miss the role field; default to user.
			profile.Role = policy.ParseRole(user.Role)
			return &profile, nil
		}
	}
	return nil, apperrors.Unauthorized("invalid credentials")
}
