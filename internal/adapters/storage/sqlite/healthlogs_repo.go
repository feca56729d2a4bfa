package sqlite

import (
	"context"
	"strings"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/healthlogs"

	"gorm.io/gorm"
)

type HealthLogsRepo struct {
	db *gorm.DB
}

func NewHealthLogsRepo(db *gorm.DB) *HealthLogsRepo {
	return &HealthLogsRepo{db: db}
}

// modelFor devuelve un puntero a la fila vacía del Kind (para Model/Delete).
func modelFor(kind healthlogs.Kind) (any, error) {
	switch kind {
	case healthlogs.KindWeight:
		return &weightLogRow{}, nil
	case healthlogs.KindBodyCondition:
		return &bodyConditionLogRow{}, nil
	case healthlogs.KindVetVisit:
		return &vetVisitLogRow{}, nil
	default:
		return nil, apperr.Validation("unknown log kind %q", kind)
	}
}

func (r *HealthLogsRepo) Create(ctx context.Context, e healthlogs.Entry) error {
	if _, err := modelFor(e.Kind); err != nil {
		return err
	}
	return mapErr(r.db.WithContext(ctx).Create(newLogRow(e)).Error, e.Kind.Label())
}

func (r *HealthLogsRepo) Update(ctx context.Context, e healthlogs.Entry) error {
	model, err := modelFor(e.Kind)
	if err != nil {
		return err
	}
	tx := r.db.WithContext(ctx).Model(model).Where("id = ?", e.ID).Updates(logValues(e))
	return mustAffect(tx, e.Kind.Label())
}

func (r *HealthLogsRepo) Delete(ctx context.Context, kind healthlogs.Kind, id string) error {
	model, err := modelFor(kind)
	if err != nil {
		return err
	}
	return mustAffect(r.db.WithContext(ctx).Delete(model, "id = ?", id), kind.Label())
}

func (r *HealthLogsRepo) DeleteByPet(ctx context.Context, petID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, kind := range healthlogs.Kinds {
			model, _ := modelFor(kind)
			if err := tx.Delete(model, "pet_id = ?", petID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *HealthLogsRepo) GetByID(ctx context.Context, kind healthlogs.Kind, id string) (healthlogs.Entry, error) {
	id = strings.TrimSpace(id)
	switch kind {
	case healthlogs.KindWeight:
		return getRow[weightLogRow](ctx, r.db, kind, id)
	case healthlogs.KindBodyCondition:
		return getRow[bodyConditionLogRow](ctx, r.db, kind, id)
	case healthlogs.KindVetVisit:
		return getRow[vetVisitLogRow](ctx, r.db, kind, id)
	default:
		return healthlogs.Entry{}, apperr.Validation("unknown log kind %q", kind)
	}
}

func (r *HealthLogsRepo) ListByPet(ctx context.Context, kind healthlogs.Kind, petID string) ([]healthlogs.Entry, error) {
	switch kind {
	case healthlogs.KindWeight:
		return listRows[weightLogRow](ctx, r.db, petID)
	case healthlogs.KindBodyCondition:
		return listRows[bodyConditionLogRow](ctx, r.db, petID)
	case healthlogs.KindVetVisit:
		return listRows[vetVisitLogRow](ctx, r.db, petID)
	default:
		return nil, apperr.Validation("unknown log kind %q", kind)
	}
}

func getRow[T logRow](ctx context.Context, db *gorm.DB, kind healthlogs.Kind, id string) (healthlogs.Entry, error) {
	if id == "" {
		return healthlogs.Entry{}, apperr.NotFound(kind.Label())
	}
	var row T
	if err := db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return healthlogs.Entry{}, mapErr(err, kind.Label())
	}
	return row.entry(), nil
}

func listRows[T logRow](ctx context.Context, db *gorm.DB, petID string) ([]healthlogs.Entry, error) {
	var rows []T
	err := db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("date DESC").Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]healthlogs.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.entry())
	}
	return out, nil
}
