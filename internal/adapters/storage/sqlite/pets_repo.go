package sqlite

import (
	"context"
	"strings"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/pets"

	"gorm.io/gorm"
)

type PetsRepo struct {
	db *gorm.DB
}

func NewPetsRepo(db *gorm.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	row := newPetRow(p)
	return mapErr(r.db.WithContext(ctx).Create(&row).Error, "pet")
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	tx := r.db.WithContext(ctx).Model(&petRow{}).Where("id = ?", p.ID).Updates(map[string]any{
		"name":       p.Name,
		"species":    p.Species,
		"breed":      p.Breed,
		"age":        p.Age,
		"updated_at": p.UpdatedAt.UTC(),
	})
	return mustAffect(tx, "pet")
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	return mustAffect(r.db.WithContext(ctx).Delete(&petRow{}, "id = ?", id), "pet")
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, apperr.NotFound("pet")
	}
	var row petRow
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return pets.Pet{}, mapErr(err, "pet")
	}
	return row.toDomain(), nil
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}
	var rows []petRow
	err := r.db.WithContext(ctx).
		Where("owner_user_id = ?", ownerUserID).
		Order("created_at ASC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]pets.Pet, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
