package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DarkSword7/KodoMart/internal/apperr"
)

func TestMemoryRepoCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryUserRepo()

	u, err := r.Create(ctx, "alice", "a@x.com", "hash1")
	require.NoError(t, err)
	require.False(t, u.IsAdmin)
	require.Empty(t, u.PasswordHash)

	// duplicate email is a conflict
	_, err = r.Create(ctx, "alice2", "a@x.com", "hash2")
	require.ErrorIs(t, err, apperr.ErrEmailTaken)

	// only GetByEmail carries the hash
	byEmail, err := r.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "hash1", byEmail.PasswordHash)

	byID, err := r.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Empty(t, byID.PasswordHash)
	require.Equal(t, "alice", byID.Username)
}

func TestMemoryRepoPartialUpdate(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryUserRepo()
	u, err := r.Create(ctx, "alice", "a@x.com", "hash1")
	require.NoError(t, err)

	name := "alice2"
	upd, err := r.Update(ctx, u.ID, UserPatch{Username: &name})
	require.NoError(t, err)
	require.Equal(t, "alice2", upd.Username)
	require.Equal(t, "a@x.com", upd.Email)

	// hash untouched by a username-only patch
	byEmail, err := r.GetByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "hash1", byEmail.PasswordHash)

	// email collision on update is a conflict
	_, err = r.Create(ctx, "bob", "b@x.com", "hash2")
	require.NoError(t, err)
	taken := "b@x.com"
	_, err = r.Update(ctx, u.ID, UserPatch{Email: &taken})
	require.ErrorIs(t, err, apperr.ErrEmailTaken)
}

func TestMemoryRepoDelete(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryUserRepo()
	u, err := r.Create(ctx, "alice", "a@x.com", "hash1")
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, u.ID))
	_, err = r.GetByID(ctx, u.ID)
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
	require.ErrorIs(t, r.Delete(ctx, u.ID), apperr.ErrUserNotFound)
}
