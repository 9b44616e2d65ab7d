package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StefanoAus/icoffee-backend/internal/apperrors"
	"github.com/StefanoAus/icoffee-backend/internal/models"
	"github.com/StefanoAus/icoffee-backend/internal/repository"
	"github.com/StefanoAus/icoffee-backend/internal/services"
	"github.com/StefanoAus/icoffee-backend/internal/store"
)

func newDirectory(st *store.MemStore) *services.DirectoryService {
	return services.NewDirectoryService(
		repository.NewUserRepository(st),
		repository.NewGroupRepository(st),
	)
}

func adminRoster() []models.User {
	return []models.User{
		{Username: "alice", Password: "pw", Group: "Alpha", Role: models.RoleAdmin},
		{Username: "bob", Password: "pw", Group: "Alpha", Role: models.RoleUser},
	}
}

// TestDirectoryService_AdminGate verifies that the admin gate fires before
// any payload validation: a non-admin caller is rejected with Forbidden even
// when the payload is invalid.
func TestDirectoryService_AdminGate(t *testing.T) {
	st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
	dir := newDirectory(st)
	ctx := context.Background()

	_, err := dir.ListUsers(ctx, models.RoleUser)
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	// Empty payload would otherwise be a validation error.
	err = dir.CreateUser(ctx, models.RoleUser, models.User{})
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))

	err = dir.DeleteGroup(ctx, "not-even-a-role", "Alpha")
	assert.True(t, apperrors.IsKind(err, apperrors.KindForbidden))
}

func TestDirectoryService_CreateUser(t *testing.T) {
	tests := []struct {
		name         string
		user         models.User
		expectedKind apperrors.Kind
		expectedErr  bool
	}{
		{
			name:        "valid user",
			user:        models.User{Username: "carla", Password: "pw", Group: "Alpha", Role: "user"},
			expectedErr: false,
		},
		{
			name:         "missing password",
			user:         models.User{Username: "carla", Group: "Alpha"},
			expectedErr:  true,
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "unknown group",
			user:         models.User{Username: "carla", Password: "pw", Group: "Omega"},
			expectedErr:  true,
			expectedKind: apperrors.KindValidation,
		},
		{
			name:         "duplicate username",
			user:         models.User{Username: "bob", Password: "pw", Group: "Alpha"},
			expectedErr:  true,
			expectedKind: apperrors.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
			dir := newDirectory(st)

			err := dir.CreateUser(context.Background(), models.RoleAdmin, tt.user)
			if tt.expectedErr {
				assert.True(t, apperrors.IsKind(err, tt.expectedKind), "got %v", err)
			} else {
				require.NoError(t, err)
				users, err := dir.ListUsers(context.Background(), models.RoleAdmin)
				require.NoError(t, err)
				assert.Len(t, users, 3)
			}
		})
	}
}

// TestDirectoryService_CreateUser_SanitizesRole verifies that an
// unrecognized role is stored as "user".
func TestDirectoryService_CreateUser_SanitizesRole(t *testing.T) {
	st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
	dir := newDirectory(st)
	ctx := context.Background()

	require.NoError(t, dir.CreateUser(ctx, models.RoleAdmin, models.User{
		Username: "carla", Password: "pw", Group: "Alpha", Role: "superadmin",
	}))

	users, err := dir.ListUsers(ctx, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, users[2].Role)
}

func TestDirectoryService_UpdateUser(t *testing.T) {
	adminRole := models.RoleAdmin
	userRole := models.RoleUser

	t.Run("partial update applies only present fields", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha", "Beta"}})
		dir := newDirectory(st)
		ctx := context.Background()

		require.NoError(t, dir.UpdateUser(ctx, adminRole, "bob", services.UserUpdates{Group: "Beta"}))

		users, err := dir.ListUsers(ctx, adminRole)
		require.NoError(t, err)
		assert.Equal(t, "Beta", users[1].Group)
		assert.Equal(t, "pw", users[1].Password, "password untouched")
	})

	t.Run("unknown user", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.UpdateUser(context.Background(), adminRole, "ghost", services.UserUpdates{Password: "x"})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("downgrading the only admin is rejected", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.UpdateUser(context.Background(), adminRole, "alice", services.UserUpdates{Role: &userRole})
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("downgrade succeeds with a second admin", func(t *testing.T) {
		users := append(adminRoster(), models.User{
			Username: "dora", Password: "pw", Group: "Alpha", Role: models.RoleAdmin,
		})
		st := newSeededStore(t, seeded{Users: users, Groups: []string{"Alpha"}})
		dir := newDirectory(st)
		ctx := context.Background()

		require.NoError(t, dir.UpdateUser(ctx, adminRole, "alice", services.UserUpdates{Role: &userRole}))

		roster, err := dir.ListUsers(ctx, adminRole)
		require.NoError(t, err)
		assert.Equal(t, models.RoleUser, roster[0].Role)
	})
}

func TestDirectoryService_DeleteUser(t *testing.T) {
	t.Run("deleting the only admin is rejected", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.DeleteUser(context.Background(), models.RoleAdmin, "alice")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("deleting an admin succeeds when another remains", func(t *testing.T) {
		users := append(adminRoster(), models.User{
			Username: "dora", Password: "pw", Group: "Alpha", Role: models.RoleAdmin,
		})
		st := newSeededStore(t, seeded{Users: users, Groups: []string{"Alpha"}})
		dir := newDirectory(st)
		ctx := context.Background()

		require.NoError(t, dir.DeleteUser(ctx, models.RoleAdmin, "alice"))

		roster, err := dir.ListUsers(ctx, models.RoleAdmin)
		require.NoError(t, err)
		assert.Len(t, roster, 2)
	})

	t.Run("deleting a non-admin always succeeds", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		require.NoError(t, dir.DeleteUser(context.Background(), models.RoleAdmin, "bob"))
	})

	t.Run("unknown user", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.DeleteUser(context.Background(), models.RoleAdmin, "ghost")
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestDirectoryService_Groups(t *testing.T) {
	t.Run("create rejects duplicates", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.CreateGroup(context.Background(), models.RoleAdmin, "Alpha")
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})

	t.Run("create rejects empty names", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.CreateGroup(context.Background(), models.RoleAdmin, "   ")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("delete blocked while members exist", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.DeleteGroup(context.Background(), models.RoleAdmin, "Alpha")
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	})

	t.Run("delete succeeds for an empty group", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha", "Empty"}})
		dir := newDirectory(st)
		ctx := context.Background()

		require.NoError(t, dir.DeleteGroup(ctx, models.RoleAdmin, "Empty"))

		groups, err := dir.ListGroups(ctx, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, []string{"Alpha"}, groups)
	})
}

// TestDirectoryService_RenameGroup covers the cascade: renaming "Alpha" to
// "Beta" while bob belongs to "Alpha" moves bob and drops "Alpha" from the
// group list.
func TestDirectoryService_RenameGroup(t *testing.T) {
	t.Run("cascades to members", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha", "Gamma"}})
		dir := newDirectory(st)
		ctx := context.Background()

		require.NoError(t, dir.RenameGroup(ctx, models.RoleAdmin, "Alpha", "Beta"))

		groups, err := dir.ListGroups(ctx, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, []string{"Beta", "Gamma"}, groups)
		assert.NotContains(t, groups, "Alpha")

		users, err := dir.ListUsers(ctx, models.RoleAdmin)
		require.NoError(t, err)
		for _, u := range users {
			assert.Equal(t, "Beta", u.Group)
		}
	})

	t.Run("rename to itself is a no-op", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		require.NoError(t, dir.RenameGroup(context.Background(), models.RoleAdmin, "Alpha", "Alpha"))
	})

	t.Run("unknown old name", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha"}})
		dir := newDirectory(st)

		err := dir.RenameGroup(context.Background(), models.RoleAdmin, "Omega", "Beta")
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})

	t.Run("new name already taken", func(t *testing.T) {
		st := newSeededStore(t, seeded{Users: adminRoster(), Groups: []string{"Alpha", "Beta"}})
		dir := newDirectory(st)

		err := dir.RenameGroup(context.Background(), models.RoleAdmin, "Alpha", "Beta")
		assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
	})
}
