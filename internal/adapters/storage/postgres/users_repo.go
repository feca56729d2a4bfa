package postgres

import (
	"context"
	"database/sql"

	"pet-health-tracker/internal/domain/users"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, password_hash, created_at)
		VALUES ($1,$2,$3,$4)
	`, u.ID, u.Name, u.PasswordHash, u.CreatedAt)
	return mapErr(err, "user")
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return r.getBy(ctx, "id", id)
}

func (r *UsersRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	return r.getBy(ctx, "name", name)
}

func (r *UsersRepo) getBy(ctx context.Context, column, value string) (users.User, error) {
	var u users.User
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, password_hash, created_at
		FROM users
		WHERE `+column+` = $1
	`, value).Scan(&u.ID, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return users.User{}, mapErr(err, "user")
	}
	return u, nil
}

func (r *UsersRepo) GetProfile(ctx context.Context, userID string) (users.Profile, error) {
	var p users.Profile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, username, full_name, avatar_url, updated_at
		FROM profiles
		WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.Username, &p.FullName, &p.AvatarURL, &p.UpdatedAt)
	if err != nil {
		return users.Profile{}, mapErr(err, "profile")
	}
	return p, nil
}

func (r *UsersRepo) UpsertProfile(ctx context.Context, p users.Profile) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, user_id, username, full_name, avatar_url, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url,
			updated_at = EXCLUDED.updated_at
	`, p.ID, p.UserID, p.Username, p.FullName, p.AvatarURL, p.UpdatedAt)
	return mapErr(err, "profile")
}
