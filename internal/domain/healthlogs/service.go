package healthlogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/pets"

	"github.com/google/uuid"
)

// PetLookup es lo único que el módulo necesita de pets.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (pets.Pet, error)
}

type Service struct {
	repo Repository
	pets PetLookup
	now  func() time.Time
}

func NewService(repo Repository, pets PetLookup) *Service {
	return &Service{
		repo: repo,
		pets: pets,
		now:  time.Now,
	}
}

// CreateInput trae los campos ya parseados; cuáles son obligatorios depende de Kind.
type CreateInput struct {
	Kind          Kind
	Date          time.Time
	Weight        *Weight
	BodyCondition *string
	Notes         *string
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Date          *time.Time
	Weight        *Weight
	BodyCondition *string
	Notes         *string
}

func (s *Service) Create(ctx context.Context, petID string, in CreateInput) (Entry, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Entry{}, apperr.Validation("pet_id is required")
	}
	if in.Date.IsZero() {
		return Entry{}, apperr.Validation("date is required")
	}

	e := Entry{
		ID:    uuid.NewString(),
		PetID: petID,
		Kind:  in.Kind,
		Date:  in.Date,
	}

	switch in.Kind {
	case KindWeight:
		if in.Weight == nil {
			return Entry{}, apperr.Validation("weight is required")
		}
		w, err := NewWeight(in.Weight.Float64())
		if err != nil {
			return Entry{}, err
		}
		e.Weight = w
	case KindBodyCondition:
		if in.BodyCondition == nil {
			return Entry{}, apperr.Validation("body_condition is required")
		}
		bc, err := ParseBodyCondition(*in.BodyCondition)
		if err != nil {
			return Entry{}, err
		}
		e.BodyCondition = bc
	case KindVetVisit:
		e.Notes = normalizeNotes(in.Notes)
	default:
		return Entry{}, apperr.Validation("unknown log kind %q", in.Kind)
	}

	if _, err := s.pets.GetByID(ctx, petID); err != nil {
		return Entry{}, err
	}

	now := s.now()
	e.CreatedAt = now
	e.UpdatedAt = now

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) AddWeight(ctx context.Context, petID string, w Weight, date time.Time) (WeightLog, error) {
	e, err := s.Create(ctx, petID, CreateInput{Kind: KindWeight, Weight: &w, Date: date})
	if err != nil {
		return WeightLog{}, err
	}
	return e.WeightLog(), nil
}

func (s *Service) AddBodyCondition(ctx context.Context, petID, score string, date time.Time) (BodyConditionLog, error) {
	e, err := s.Create(ctx, petID, CreateInput{Kind: KindBodyCondition, BodyCondition: &score, Date: date})
	if err != nil {
		return BodyConditionLog{}, err
	}
	return e.BodyConditionLog(), nil
}

func (s *Service) AddVetVisit(ctx context.Context, petID string, notes *string, date time.Time) (VetVisitLog, error) {
	e, err := s.Create(ctx, petID, CreateInput{Kind: KindVetVisit, Notes: notes, Date: date})
	if err != nil {
		return VetVisitLog{}, err
	}
	return e.VetVisitLog(), nil
}

func (s *Service) GetByID(ctx context.Context, kind Kind, id string) (Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Entry{}, apperr.NotFound(kind.Label())
	}
	return s.repo.GetByID(ctx, kind, id)
}

// List devuelve los logs de la mascota en orden total (fecha desc, id asc),
// sin importar el orden que traiga el store.
func (s *Service) List(ctx context.Context, kind Kind, petID string) ([]Entry, error) {
	items, err := s.repo.ListByPet(ctx, kind, strings.TrimSpace(petID))
	if err != nil {
		return nil, err
	}
	SortEntries(items)
	return items, nil
}

func (s *Service) Update(ctx context.Context, kind Kind, id string, in UpdateInput) (Entry, error) {
	e, err := s.GetByID(ctx, kind, id)
	if err != nil {
		return Entry{}, err
	}

	if in.Date != nil {
		if in.Date.IsZero() {
			return Entry{}, apperr.Validation("date cannot be empty")
		}
		e.Date = *in.Date
	}

	switch kind {
	case KindWeight:
		if in.Weight != nil {
			w, err := NewWeight(in.Weight.Float64())
			if err != nil {
				return Entry{}, err
			}
			e.Weight = w
		}
	case KindBodyCondition:
		if in.BodyCondition != nil {
			bc, err := ParseBodyCondition(*in.BodyCondition)
			if err != nil {
				return Entry{}, err
			}
			e.BodyCondition = bc
		}
	case KindVetVisit:
		if in.Notes != nil {
			e.Notes = normalizeNotes(in.Notes)
		}
	}

	e.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Delete falla con ErrNotFound si el log no existe; repetirlo no altera el estado.
func (s *Service) Delete(ctx context.Context, kind Kind, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperr.NotFound(kind.Label())
	}
	err := s.repo.Delete(ctx, kind, id)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound(kind.Label())
	}
	return err
}

// DeleteByPet borra las tres colecciones de una mascota.
func (s *Service) DeleteByPet(ctx context.Context, petID string) error {
	return s.repo.DeleteByPet(ctx, strings.TrimSpace(petID))
}

// PetLogs agrupa las tres colecciones de una mascota, ya ordenadas.
type PetLogs struct {
	Weights        []WeightLog
	BodyConditions []BodyConditionLog
	VetVisits      []VetVisitLog
}

func (s *Service) ListAll(ctx context.Context, petID string) (PetLogs, error) {
	var out PetLogs
	for _, k := range Kinds {
		items, err := s.List(ctx, k, petID)
		if err != nil {
			return PetLogs{}, err
		}
		switch k {
		case KindWeight:
			out.Weights = WeightLogs(items)
		case KindBodyCondition:
			out.BodyConditions = BodyConditionLogs(items)
		case KindVetVisit:
			out.VetVisits = VetVisitLogs(items)
		}
	}
	return out, nil
}
