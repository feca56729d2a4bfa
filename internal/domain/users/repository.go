package users

import "context"

// Repository: Create devuelve apperr.ErrConflict si el nombre ya existe.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByName(ctx context.Context, name string) (User, error)

	GetProfile(ctx context.Context, userID string) (Profile, error)
	UpsertProfile(ctx context.Context, p Profile) error
}
