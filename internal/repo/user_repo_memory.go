package repo

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/DarkSword7/KodoMart/internal/apperr"
	"github.com/DarkSword7/KodoMart/internal/models"
)

// MemoryUserRepo is a threadsafe in-memory UserRepo for tests. It mirrors the
// Mongo implementation's contract, including the unique-email conflict and the
// hash-free projection on GetByID/List.
type MemoryUserRepo struct {
	mu      sync.RWMutex
	users   map[string]*models.User // key = id
	byEmail map[string]string       // email -> id
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

func (r *MemoryUserRepo) Create(_ context.Context, username, email, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[email]; exists {
		return nil, apperr.ErrEmailTaken
	}
	u := &models.User{
		ID:           primitive.NewObjectID().Hex(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		IsAdmin:      false,
		CreatedAt:    time.Now().UTC(),
	}
	r.users[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return stripHash(u), nil
}

func (r *MemoryUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	cp := *r.users[id]
	return &cp, nil
}

func (r *MemoryUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	return stripHash(u), nil
}

func (r *MemoryUserRepo) List(_ context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*models.User{}
	for _, u := range r.users {
		out = append(out, stripHash(u))
	}
	return out, nil
}

func (r *MemoryUserRepo) Update(_ context.Context, id string, patch UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperr.ErrUserNotFound
	}
	if patch.Email != nil && *patch.Email != u.Email {
		if _, exists := r.byEmail[*patch.Email]; exists {
			return nil, apperr.ErrEmailTaken
		}
		delete(r.byEmail, u.Email)
		u.Email = *patch.Email
		r.byEmail[u.Email] = id
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	return stripHash(u), nil
}

func (r *MemoryUserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return apperr.ErrUserNotFound
	}
	delete(r.byEmail, u.Email)
	delete(r.users, id)
	return nil
}

// SetAdmin promotes a user out-of-band, the way the startup seed does.
func (r *MemoryUserRepo) SetAdmin(id string, isAdmin bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.IsAdmin = isAdmin
	}
}

func stripHash(u *models.User) *models.User {
	cp := *u
	cp.PasswordHash = ""
	return &cp
}
