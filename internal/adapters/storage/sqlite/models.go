package sqlite

import (
	"time"

	"pet-health-tracker/internal/domain/healthlogs"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/domain/users"
)

// Filas gorm. Las fechas se guardan en UTC para que ORDER BY sobre el texto sea cronológico.

type userRow struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	CreatedAt    time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) toDomain() users.User {
	return users.User{ID: r.ID, Name: r.Name, PasswordHash: r.PasswordHash, CreatedAt: r.CreatedAt}
}

type profileRow struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"uniqueIndex;not null"`
	Username  string
	FullName  string
	AvatarURL string
	UpdatedAt time.Time
}

func (profileRow) TableName() string { return "profiles" }

func (r profileRow) toDomain() users.Profile {
	return users.Profile{
		ID:        r.ID,
		UserID:    r.UserID,
		Username:  r.Username,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		UpdatedAt: r.UpdatedAt,
	}
}

type petRow struct {
	ID          string `gorm:"primaryKey"`
	OwnerUserID string `gorm:"index;not null"`
	Name        string `gorm:"not null"`
	Species     string `gorm:"not null"`
	Breed       string
	Age         int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (petRow) TableName() string { return "pets" }

func newPetRow(p pets.Pet) petRow {
	return petRow{
		ID:          p.ID,
		OwnerUserID: p.OwnerUserID,
		Name:        p.Name,
		Species:     p.Species,
		Breed:       p.Breed,
		Age:         p.Age,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func (r petRow) toDomain() pets.Pet {
	return pets.Pet{
		ID:          r.ID,
		OwnerUserID: r.OwnerUserID,
		Name:        r.Name,
		Species:     r.Species,
		Breed:       r.Breed,
		Age:         r.Age,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// logRow es lo común a las tres tablas de logs.
type logRow interface {
	entry() healthlogs.Entry
}

type weightLogRow struct {
	ID        string `gorm:"primaryKey"`
	PetID     string `gorm:"index;not null"`
	Weight    float64
	Date      time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (weightLogRow) TableName() string { return "weight_logs" }

func (r weightLogRow) entry() healthlogs.Entry {
	return healthlogs.Entry{
		ID:        r.ID,
		PetID:     r.PetID,
		Kind:      healthlogs.KindWeight,
		Weight:    healthlogs.Weight(r.Weight),
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type bodyConditionLogRow struct {
	ID            string `gorm:"primaryKey"`
	PetID         string `gorm:"index;not null"`
	BodyCondition string
	Date          time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (bodyConditionLogRow) TableName() string { return "body_condition_logs" }

func (r bodyConditionLogRow) entry() healthlogs.Entry {
	return healthlogs.Entry{
		ID:            r.ID,
		PetID:         r.PetID,
		Kind:          healthlogs.KindBodyCondition,
		BodyCondition: r.BodyCondition,
		Date:          r.Date,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type vetVisitLogRow struct {
	ID        string `gorm:"primaryKey"`
	PetID     string `gorm:"index;not null"`
	Notes     *string
	Date      time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (vetVisitLogRow) TableName() string { return "vet_visit_logs" }

func (r vetVisitLogRow) entry() healthlogs.Entry {
	return healthlogs.Entry{
		ID:        r.ID,
		PetID:     r.PetID,
		Kind:      healthlogs.KindVetVisit,
		Notes:     r.Notes,
		Date:      r.Date,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// newLogRow arma la fila de la tabla que corresponde a e.Kind.
func newLogRow(e healthlogs.Entry) any {
	date, created, updated := e.Date.UTC(), e.CreatedAt.UTC(), e.UpdatedAt.UTC()
	switch e.Kind {
	case healthlogs.KindWeight:
		return &weightLogRow{ID: e.ID, PetID: e.PetID, Weight: float64(e.Weight), Date: date, CreatedAt: created, UpdatedAt: updated}
	case healthlogs.KindBodyCondition:
		return &bodyConditionLogRow{ID: e.ID, PetID: e.PetID, BodyCondition: e.BodyCondition, Date: date, CreatedAt: created, UpdatedAt: updated}
	default:
		return &vetVisitLogRow{ID: e.ID, PetID: e.PetID, Notes: e.Notes, Date: date, CreatedAt: created, UpdatedAt: updated}
	}
}

// logValues son las columnas editables de e (para Updates).
func logValues(e healthlogs.Entry) map[string]any {
	m := map[string]any{
		"date":       e.Date.UTC(),
		"updated_at": e.UpdatedAt.UTC(),
	}
	switch e.Kind {
	case healthlogs.KindWeight:
		m["weight"] = float64(e.Weight)
	case healthlogs.KindBodyCondition:
		m["body_condition"] = e.BodyCondition
	default:
		m["notes"] = e.Notes
	}
	return m
}
