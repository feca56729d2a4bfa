package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string
	Breed   string
	Age     *int
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name    *string
	Species *string
	Breed   *string // "" limpia la raza
	Age     *int
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(ownerUserID) == "" {
		return Pet{}, apperr.Validation("owner is required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, apperr.Validation("name is required")
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, apperr.Validation("species is required")
	}
	if in.Age == nil {
		return Pet{}, apperr.Validation("age is required")
	}
	if *in.Age < 0 {
		return Pet{}, apperr.Validation("age must be >= 0")
	}

	now := s.now()
	p := Pet{
		ID:          uuid.NewString(),
		OwnerUserID: strings.TrimSpace(ownerUserID),
		Name:        strings.TrimSpace(in.Name),
		Species:     strings.TrimSpace(in.Species),
		Breed:       strings.TrimSpace(in.Breed),
		Age:         *in.Age,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, apperr.NotFound("pet")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
}

// Authorize devuelve la mascota si userID es su dueño.
// - mascota inexistente => ErrNotFound
// - otro usuario => ErrForbidden
func (s *Service) Authorize(ctx context.Context, petID, userID string) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if p.OwnerUserID != strings.TrimSpace(userID) {
		return Pet{}, apperr.ErrForbidden
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, petID string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		v := strings.TrimSpace(*in.Name)
		if v == "" {
			return Pet{}, apperr.Validation("name cannot be empty")
		}
		p.Name = v
	}
	if in.Species != nil {
		v := strings.TrimSpace(*in.Species)
		if v == "" {
			return Pet{}, apperr.Validation("species cannot be empty")
		}
		p.Species = v
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Age != nil {
		if *in.Age < 0 {
			return Pet{}, apperr.Validation("age must be >= 0")
		}
		p.Age = *in.Age
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Delete borra solo la mascota. El borrado en cascada de logs lo coordina profiles.
func (s *Service) Delete(ctx context.Context, petID string) error {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return apperr.NotFound("pet")
	}
	err := s.repo.Delete(ctx, petID)
	if errors.Is(err, apperr.ErrNotFound) {
		return apperr.NotFound("pet")
	}
	return err
}
