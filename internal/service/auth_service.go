package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/models"
	"github.com/DarkSword7/KodoMart/internal/repo"
	"github.com/DarkSword7/KodoMart/internal/token"
	"github.com/DarkSword7/KodoMart/pkg/crypto"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// CurrentUser resolves a session token to the account it references,
	// without the password hash. Used by the auth middleware.
	CurrentUser(ctx context.Context, tok string) (*models.User, error)
}

type authService struct {
	users  repo.UserRepo
	tokens *token.Manager
}

func NewAuthService(u repo.UserRepo, t *token.Manager) AuthService {
	return &authService{users: u, tokens: t}
}

func (a *authService) Register(ctx context.Context, username, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if username == "" || email == "" || password == "" {
		return nil, "", apperr.ErrMissingFields
	}
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, "", apperr.ErrInvalidUserData
	}
	u, err := a.users.Create(ctx, username, email, hash)
	if errors.Is(err, apperr.ErrEmailTaken) {
		return nil, "", err
	}
	if err != nil {
		return nil, "", apperr.ErrInvalidUserData
	}
	tok, err := a.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, tok, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", apperr.ErrMissingFields
	}
	u, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if err := crypto.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, "", apperr.ErrIncorrectPassword
	}
	tok, err := a.tokens.Issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	u.PasswordHash = ""
	return u, tok, nil
}

func (a *authService) CurrentUser(ctx context.Context, tok string) (*models.User, error) {
	if tok == "" {
		return nil, apperr.ErrNoToken
	}
	uid, err := a.tokens.Verify(tok)
	if err != nil {
		return nil, err
	}
	u, err := a.users.GetByID(ctx, uid)
	if errors.Is(err, apperr.ErrUserNotFound) {
		// stale token referencing a deleted account
		return nil, apperr.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
