package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dethrtrns/techwondoe-test-task/internal/domain"
	"github.com/dethrtrns/techwondoe-test-task/internal/repository"
)

func TestMongoUserRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	repo := repository.NewMongoUserRepository(db.Database)
	ctx := context.Background()

	t.Run("assigns id and creation timestamp", func(t *testing.T) {
		db.Truncate(t)

		created, err := repo.Create(ctx, domain.User{
			Name:   "Alice",
			Email:  "alice@example.com",
			Role:   domain.RoleAdmin,
			Avatar: "https://example.com/a.png",
			Status: domain.StatusInvited,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, "Alice", created.Name)
		assert.Equal(t, "alice@example.com", created.Email)
		assert.Equal(t, domain.RoleAdmin, created.Role)
		assert.Equal(t, domain.StatusInvited, created.Status)
	})

	t.Run("each create produces a new record", func(t *testing.T) {
		db.Truncate(t)

		u := domain.User{Name: "Bob", Email: "bob@example.com", Role: domain.RoleSalesRep}
		first, err := repo.Create(ctx, u)
		require.NoError(t, err)
		second, err := repo.Create(ctx, u)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestMongoUserRepository_List(t *testing.T) {
	db := SetupTestDB(t)
	repo := repository.NewMongoUserRepository(db.Database)
	ctx := context.Background()

	t.Run("returns empty slice for empty collection", func(t *testing.T) {
		db.Truncate(t)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("orders by creation time", func(t *testing.T) {
		db.Truncate(t)

		for _, name := range []string{"First", "Second", "Third"} {
			_, err := repo.Create(ctx, domain.User{
				Name:  name,
				Email: name + "@example.com",
				Role:  domain.RoleSalesRep,
			})
			require.NoError(t, err)
		}

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 3)
		assert.Equal(t, "First", users[0].Name)
		assert.Equal(t, "Second", users[1].Name)
		assert.Equal(t, "Third", users[2].Name)
	})
}

func TestMongoUserRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	repo := repository.NewMongoUserRepository(db.Database)
	ctx := context.Background()

	str := func(s string) *string { return &s }

	t.Run("patches only the provided fields", func(t *testing.T) {
		db.Truncate(t)

		created, err := repo.Create(ctx, domain.User{
			Name:   "Alice",
			Email:  "alice@example.com",
			Role:   domain.RoleSalesRep,
			Avatar: "https://example.com/a.png",
			Status: domain.StatusInvited,
		})
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, domain.UserPatch{Role: str(domain.RoleAdmin)})
		require.NoError(t, err)

		assert.Equal(t, domain.RoleAdmin, updated.Role)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Email, updated.Email)
		assert.Equal(t, created.Avatar, updated.Avatar)
		// Creation timestamp is set once and never changes on edit.
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
	})

	t.Run("empty patch returns the record unchanged", func(t *testing.T) {
		db.Truncate(t)

		created, err := repo.Create(ctx, domain.User{Name: "Bob", Email: "bob@example.com", Role: domain.RoleSalesRep})
		require.NoError(t, err)

		got, err := repo.Update(ctx, created.ID, domain.UserPatch{})
		require.NoError(t, err)
		assert.Equal(t, created, got)
	})

	t.Run("missing id yields ErrUserNotFound", func(t *testing.T) {
		db.Truncate(t)

		_, err := repo.Update(ctx, "66f0c2a9e4b0a1b2c3d4e5f6", domain.UserPatch{Name: str("Nobody")})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("malformed id yields ErrUserNotFound", func(t *testing.T) {
		_, err := repo.Update(ctx, "not-an-object-id", domain.UserPatch{})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestMongoUserRepository_Delete(t *testing.T) {
	db := SetupTestDB(t)
	repo := repository.NewMongoUserRepository(db.Database)
	ctx := context.Background()

	t.Run("removes exactly one record", func(t *testing.T) {
		db.Truncate(t)

		keep, err := repo.Create(ctx, domain.User{Name: "Keep", Email: "keep@example.com", Role: domain.RoleSalesRep})
		require.NoError(t, err)
		drop, err := repo.Create(ctx, domain.User{Name: "Drop", Email: "drop@example.com", Role: domain.RoleSalesRep})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, drop.ID))

		users, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, keep.ID, users[0].ID)
	})

	t.Run("missing id yields ErrUserNotFound", func(t *testing.T) {
		db.Truncate(t)

		err := repo.Delete(ctx, "66f0c2a9e4b0a1b2c3d4e5f6")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
