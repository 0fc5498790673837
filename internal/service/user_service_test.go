package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/repo"
	"github.com/DarkSword7/KodoMart/internal/token"
)

func newUsers(t *testing.T) (UserService, AuthService, *repo.MemoryUserRepo) {
	t.Helper()
	users := repo.NewMemoryUserRepo()
	tokens := token.NewManager([]byte("test-secret"))
	return NewUserService(users), NewAuthService(users, tokens), users
}

func TestUpdateUsernameOnly(t *testing.T) {
	ctx := context.Background()
	svc, auth, _ := newUsers(t)
	reg, _, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	name := "alicia"
	upd, err := svc.Update(ctx, reg.ID, UserPatch{Username: &name})
	require.NoError(t, err)
	require.Equal(t, "alicia", upd.Username)
	require.Equal(t, "a@x.com", upd.Email)

	// old password still works: the hash was untouched
	_, _, err = auth.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
}

func TestUpdatePasswordOnly(t *testing.T) {
	ctx := context.Background()
	svc, auth, _ := newUsers(t)
	reg, _, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	pw := "secret2"
	upd, err := svc.Update(ctx, reg.ID, UserPatch{Password: &pw})
	require.NoError(t, err)
	require.Equal(t, "alice", upd.Username)
	require.Equal(t, "a@x.com", upd.Email)
	require.Empty(t, upd.PasswordHash)

	_, _, err = auth.Login(ctx, "a@x.com", "secret1")
	require.ErrorIs(t, err, apperr.ErrIncorrectPassword)
	_, _, err = auth.Login(ctx, "a@x.com", "secret2")
	require.NoError(t, err)
}

func TestUpdateMissing(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newUsers(t)
	name := "ghost"
	_, err := svc.Update(ctx, "64b0c8f2a1b2c3d4e5f60718", UserPatch{Username: &name})
	require.ErrorIs(t, err, apperr.ErrUserNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, auth, users := newUsers(t)
	reg, _, err := auth.Register(ctx, "alice", "a@x.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, reg.ID))
	_, err = svc.Get(ctx, reg.ID)
	require.ErrorIs(t, err, apperr.ErrUserNotFound)

	require.ErrorIs(t, svc.Delete(ctx, reg.ID), apperr.ErrUserNotFound)

	// admins cannot be removed
	adm, _, err := auth.Register(ctx, "root", "root@x.com", "secret1")
	require.NoError(t, err)
	users.SetAdmin(adm.ID, true)
	require.ErrorIs(t, svc.Delete(ctx, adm.ID), apperr.ErrDeleteAdmin)
	got, err := svc.Get(ctx, adm.ID)
	require.NoError(t, err)
	require.True(t, got.IsAdmin)
}
