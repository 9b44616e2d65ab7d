package services

import (
	"context"
	"strings"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/policy"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
)

// DirectoryService manages users and groups. Every mutating operation is
// admin-gated, and the gate runs before any other validation. Two invariants
// hold after every mutation: at least one admin remains in the user set, and
// a group can only be deleted when no user references it.
type DirectoryService struct {
	users  *repository.UserRepository
	groups *repository.GroupRepository
}

// NewDirectoryService creates a directory service over the given
// repositories.
func NewDirectoryService(users *repository.UserRepository, groups *repository.GroupRepository) *DirectoryService {
	return &DirectoryService{users: users, groups: groups}
}

// UserUpdates carries a partial user update. Only fields that are present
// and non-empty are applied; Role is a pointer so that an explicit role
// field (even an unrecognized one, which sanitizes to "user") can be told
// apart from an absent one.
type UserUpdates struct {
	Password string  `json:"password"`
	Group    string  `json:"group"`
	Role     *string `json:"role"`
}

// ListUsers returns the full user roster. Admin only: the roster includes
// stored passwords, which the admin console uses for account recovery.
func (s *DirectoryService) ListUsers(ctx context.Context, actorRole string) ([]models.User, error) {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return nil, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// CreateUser adds a new account. The username must be unique, the group must
// exist, and the role is sanitized to the closed enumeration.
func (s *DirectoryService) CreateUser(ctx context.Context, actorRole string, user models.User) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}

	username := strings.TrimSpace(user.Username)
	group := strings.TrimSpace(user.Group)
	if username == "" || user.Password == "" || group == "" {
		return apperrors.Validation("required fields are missing")
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return err
	}
	if !repository.Contains(groups, group) {
		return apperrors.Validation("select a valid group")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Username == username {
			return apperrors.Conflict("username already exists")
		}
	}

	users = append(users, models.User{
		Username: username,
		Password: user.Password,
		Group:    group,
		Role:     policy.ParseRole(user.Role),
	})
	return s.users.SaveAll(ctx, users)
}

// UpdateUser applies a partial update to an existing account. A role
// downgrade away from admin is rejected when it would leave the system
// without administrators.
func (s *DirectoryService) UpdateUser(ctx context.Context, actorRole, username string, updates UserUpdates) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}
	if username == "" {
		return apperrors.Validation("username is missing")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range users {
		if users[i].Username != username {
			continue
		}
		found = true

		if updates.Password != "" {
			users[i].Password = updates.Password
		}
		if group := strings.TrimSpace(updates.Group); group != "" {
			groups, err := s.groups.List(ctx)
			if err != nil {
				return err
			}
			if !repository.Contains(groups, group) {
				return apperrors.Validation("select a valid group")
			}
			users[i].Group = group
		}
		if updates.Role != nil {
			newRole := policy.ParseRole(*updates.Role)
			if policy.ParseRole(users[i].Role) == models.RoleAdmin && newRole != models.RoleAdmin {
				if repository.CountAdmins(users) < 2 {
					return apperrors.Validation("at least one administrator must exist")
				}
			}
			users[i].Role = newRole
		}
		break
	}

	if !found {
		return apperrors.NotFound("user not found")
	}
	return s.users.SaveAll(ctx, users)
}

// DeleteUser removes an account. Deleting an admin is rejected unless at
// least one other admin remains.
func (s *DirectoryService) DeleteUser(ctx context.Context, actorRole, username string) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}
	if username == "" {
		return apperrors.Validation("username is missing")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}

	index := -1
	for i := range users {
		if users[i].Username == username {
			index = i
			break
		}
	}
	if index == -1 {
		return apperrors.NotFound("user not found")
	}

	if policy.ParseRole(users[index].Role) == models.RoleAdmin && repository.CountAdmins(users) < 2 {
		return apperrors.Validation("cannot delete the only administrator")
	}

	users = append(users[:index], users[index+1:]...)
	return s.users.SaveAll(ctx, users)
}

// ListGroups returns all group names in stored order. Admin only.
func (s *DirectoryService) ListGroups(ctx context.Context, actorRole string) ([]string, error) {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return nil, err
	}
	groups, err := s.groups.List(ctx)
	if err != nil {
		return nil, err
	}
	if groups == nil {
		groups = []string{}
	}
	return groups, nil
}

// CreateGroup adds a new group name.
func (s *DirectoryService) CreateGroup(ctx context.Context, actorRole, name string) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.Validation("the group name is required")
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return err
	}
	if repository.Contains(groups, name) {
		return apperrors.Conflict("a group with this name already exists")
	}

	groups = append(groups, name)
	return s.groups.SaveAll(ctx, groups)
}

// RenameGroup renames oldName to newName and cascades the rename to every
// user referencing it. Renaming a group to itself is a no-op.
//
// The cascade touches two documents (users first, then groups) without a
// transaction spanning both; a failure between the two writes leaves users
// pointing at the new name while the groups list still carries the old one.
func (s *DirectoryService) RenameGroup(ctx context.Context, actorRole, oldName, newName string) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}
	oldName = strings.TrimSpace(oldName)
	newName = strings.TrimSpace(newName)
	if oldName == "" || newName == "" {
		return apperrors.Validation("specify the group names for the rename")
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return err
	}
	if !repository.Contains(groups, oldName) {
		return apperrors.NotFound("group not found")
	}
	if oldName == newName {
		return nil
	}
	if repository.Contains(groups, newName) {
		return apperrors.Conflict("a group with the new name already exists")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].Group == oldName {
			users[i].Group = newName
		}
	}
	if err := s.users.SaveAll(ctx, users); err != nil {
		return err
	}

	for i := range groups {
		if groups[i] == oldName {
			groups[i] = newName
			break
		}
	}
	return s.groups.SaveAll(ctx, repository.NormalizeGroups(groups))
}

// DeleteGroup removes a group. Rejected while any user still references it.
func (s *DirectoryService) DeleteGroup(ctx context.Context, actorRole, name string) error {
	if err := policy.RequireAdmin(actorRole); err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.Validation("specify the group to delete")
	}

	groups, err := s.groups.List(ctx)
	if err != nil {
		return err
	}
	if !repository.Contains(groups, name) {
		return apperrors.NotFound("group not found")
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, user := range users {
		if user.Group == name {
			return apperrors.Validation("cannot delete a group assigned to users")
		}
	}

	filtered := make([]string, 0, len(groups))
	for _, g := range groups {
		if g != name {
			filtered = append(filtered, g)
		}
	}
	return s.groups.SaveAll(ctx, filtered)
}
