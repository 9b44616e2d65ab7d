// Package policy centralizes role and group based authorization. Every
// mutating operation consults this package before doing any other
// validation, so a non-admin caller is rejected regardless of payload
// correctness.
package policy

import (
	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
)

// ParseRole sanitizes a caller-supplied role string to the closed
// enumeration. Anything that is not exactly "admin" is a regular user, so a
// forged or mistyped role can never grant privileges.
func ParseRole(role string) string {
	if role == models.RoleAdmin {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// IsAdmin reports whether the sanitized role is admin.
func IsAdmin(role string) bool {
	return ParseRole(role) == models.RoleAdmin
}

// RequireAdmin rejects non-admin callers. This check runs before any other
// validation on gated operations.
func RequireAdmin(role string) error {
	if !IsAdmin(role) {
		return apperrors.Forbidden("operation allowed for administrators only")
	}
	return nil
}

// EnsureGroupAccess verifies that username identifies an existing user who
// belongs to group, returning that user. Used by the payment ledger to keep
// non-admin callers inside their own group.
func EnsureGroupAccess(users []models.User, group, username string) (*models.User, error) {
	for i := range users {
		if users[i].Username == username {
			if users[i].Group != group {
				return nil, apperrors.Forbidden("access to the requested group is not allowed")
			}
			return &users[i], nil
		}
	}
	return nil, apperrors.Forbidden("access to the requested group is not allowed")
}
