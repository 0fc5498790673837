package repo

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DarkSword7/KodoMart/internal/models"
)

// userRepoCached is a read-through Redis cache in front of another UserRepo.
// Only GetByID is cached (the auth middleware hits it on every gated request);
// Update and Delete invalidate the key so a stale token to a mutated or
// deleted account behaves exactly as with the bare repo. Cache failures fall
// back to the inner repo.
type userRepoCached struct {
	inner UserRepo
	rdb   *redis.Client
	ttl   time.Duration
}

func NewUserRepoCached(inner UserRepo, rdb *redis.Client) UserRepo {
	return &userRepoCached{inner: inner, rdb: rdb, ttl: 30 * time.Second}
}

func (r *userRepoCached) key(id string) string { return "user:" + id }

func (r *userRepoCached) Create(ctx context.Context, username, email, passwordHash string) (*models.User, error) {
	return r.inner.Create(ctx, username, email, passwordHash)
}

func (r *userRepoCached) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.inner.GetByEmail(ctx, email)
}

func (r *userRepoCached) GetByID(ctx context.Context, id string) (*models.User, error) {
	if v, err := r.rdb.Get(ctx, r.key(id)).Result(); err == nil {
		var u models.User
		if err := json.Unmarshal([]byte(v), &u); err == nil {
			return &u, nil
		}
	}
	u, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(u); err == nil {
		_ = r.rdb.Set(ctx, r.key(id), b, r.ttl).Err()
	}
	return u, nil
}

func (r *userRepoCached) List(ctx context.Context) ([]*models.User, error) {
	return r.inner.List(ctx)
}

func (r *userRepoCached) Update(ctx context.Context, id string, patch UserPatch) (*models.User, error) {
	u, err := r.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	_ = r.rdb.Del(ctx, r.key(id)).Err()
	return u, nil
}

func (r *userRepoCached) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.rdb.Del(ctx, r.key(id)).Err()
	return nil
}
