package memory

import (
	"context"
	"errors"
	"sync"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/users"
)

type userRepo struct {
	mu       sync.RWMutex
	byID     map[string]users.User
	byName   map[string]string // name -> id
	profiles map[string]users.Profile
}

func NewUserRepo() users.Repository {
	return &userRepo{
		byID:     make(map[string]users.User),
		byName:   make(map[string]string),
		profiles: make(map[string]users.Profile),
	}
}

func (r *userRepo) Create(ctx context.Context, u users.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if u.ID == "" {
		return errors.New("user id required")
	}
	if _, taken := r.byName[u.Name]; taken {
		return apperr.Conflict("name %q is already taken", u.Name)
	}
	r.byID[u.ID] = u
	r.byName[u.Name] = u.ID
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	if err := ctx.Err(); err != nil {
		return users.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, apperr.NotFound("user")
	}
	return u, nil
}

func (r *userRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	if err := ctx.Err(); err != nil {
		return users.User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return users.User{}, apperr.NotFound("user")
	}
	return r.byID[id], nil
}

func (r *userRepo) GetProfile(ctx context.Context, userID string) (users.Profile, error) {
	if err := ctx.Err(); err != nil {
		return users.Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.profiles[userID]
	if !ok {
		return users.Profile{}, apperr.NotFound("profile")
	}
	return p, nil
}

func (r *userRepo) UpsertProfile(ctx context.Context, p users.Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profiles[p.UserID] = p
	return nil
}
