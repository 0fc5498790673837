package service

import (
	"context"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/models"
	"github.com/DarkSword7/KodoMart/internal/repo"
	"github.com/DarkSword7/KodoMart/pkg/crypto"
)

// UserPatch is the partial-update input shared by self-update and
// admin-update: nil fields retain their stored value, a supplied password is
// always re-hashed. IsAdmin is deliberately absent.
type UserPatch struct {
	Username *string
	Email    *string
	Password *string
}

type UserService interface {
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repo.UserRepo
}

func NewUserService(u repo.UserRepo) UserService { return &userService{users: u} }

func (s *userService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*models.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Update(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	rp := repo.UserPatch{Username: patch.Username}
	if patch.Email != nil {
		e := normalizeEmail(*patch.Email)
		if e == "" {
			return nil, apperr.ErrMissingFields
		}
		rp.Email = &e
	}
	if patch.Password != nil {
		if *patch.Password == "" {
			return nil, apperr.ErrMissingFields
		}
		hash, err := crypto.HashPassword(*patch.Password)
		if err != nil {
			return nil, apperr.ErrInvalidUserData
		}
		rp.PasswordHash = &hash
	}
	return s.users.Update(ctx, id, rp)
}

// Delete refuses to remove administrator accounts.
func (s *userService) Delete(ctx context.Context, id string) error {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if u.IsAdmin {
		return apperr.ErrDeleteAdmin
	}
	return s.users.Delete(ctx, id)
}
