// Package repository implements typed access to the persisted documents.
// Each repository wraps the DocumentStore for one entity type and translates
// store failures into the persistence error kind. Business rules live in the
// services package; repositories only read and replace documents.
package repository

import (
	"context"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

// UserRepository handles the users document: an ordered sequence of user
// records keyed by username.
type UserRepository struct {
	store store.DocumentStore
}

// NewUserRepository creates a repository over the given store.
func NewUserRepository(st store.DocumentStore) *UserRepository {
	return &UserRepository{store: st}
}

// List returns all users in stored order. A missing document is an empty
// list, matching the behavior of a fresh installation.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := r.store.Load(ctx, store.KeyUsers, &users); err != nil {
		return nil, apperrors.Persistence("unable to read users", err)
	}
	return users, nil
}

// FindByUsername retrieves a single user by exact username match.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, apperrors.NotFound("user not found")
}

// SaveAll replaces the whole users document.
func (r *UserRepository) SaveAll(ctx context.Context, users []models.User) error {
	if err := r.store.Save(ctx, store.KeyUsers, users); err != nil {
		return apperrors.Persistence("unable to save users", err)
	}
	return nil
}

// CountAdmins returns how many of the given users carry the admin role.
// Used by the last-admin protection rules.
func CountAdmins(users []models.User) int {
	count := 0
	for _, u := range users {
		if u.IsAdmin() {
			count++
		}
	}
	return count
}
