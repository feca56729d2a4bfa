package sqlite

import (
	"context"

	"pet-health-tracker/internal/domain/users"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UsersRepo struct {
	db *gorm.DB
}

func NewUsersRepo(db *gorm.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	row := userRow{ID: u.ID, Name: u.Name, PasswordHash: u.PasswordHash, CreatedAt: u.CreatedAt.UTC()}
	return mapErr(r.db.WithContext(ctx).Create(&row).Error, "user")
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return users.User{}, mapErr(err, "user")
	}
	return row.toDomain(), nil
}

func (r *UsersRepo) GetByName(ctx context.Context, name string) (users.User, error) {
	var row userRow
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&row).Error; err != nil {
		return users.User{}, mapErr(err, "user")
	}
	return row.toDomain(), nil
}

func (r *UsersRepo) GetProfile(ctx context.Context, userID string) (users.Profile, error) {
	var row profileRow
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return users.Profile{}, mapErr(err, "profile")
	}
	return row.toDomain(), nil
}

func (r *UsersRepo) UpsertProfile(ctx context.Context, p users.Profile) error {
	row := profileRow{
		ID:        p.ID,
		UserID:    p.UserID,
		Username:  p.Username,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		UpdatedAt: p.UpdatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "full_name", "avatar_url", "updated_at"}),
	}).Create(&row).Error
	return mapErr(err, "profile")
}
