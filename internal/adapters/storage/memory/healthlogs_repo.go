package memory

import (
	"context"
	"errors"
	"sync"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/domain/healthlogs"
)

// logRepo guarda las tres colecciones en un solo mapa; Kind separa las "tablas".
type logRepo struct {
	mu   sync.RWMutex
	byID map[string]healthlogs.Entry
}

func NewHealthLogRepo() healthlogs.Repository {
	return &logRepo{
		byID: make(map[string]healthlogs.Entry),
	}
}

func (r *logRepo) Create(ctx context.Context, e healthlogs.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("log id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return apperr.Conflict("log %s already exists", e.ID)
	}
	r.byID[e.ID] = e
	return nil
}

func (r *logRepo) GetByID(ctx context.Context, kind healthlogs.Kind, id string) (healthlogs.Entry, error) {
	if err := ctx.Err(); err != nil {
		return healthlogs.Entry{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return healthlogs.Entry{}, apperr.NotFound(kind.Label())
	}
	return e, nil
}

func (r *logRepo) ListByPet(ctx context.Context, kind healthlogs.Kind, petID string) ([]healthlogs.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]healthlogs.Entry, 0)
	for _, e := range r.byID {
		if e.Kind == kind && e.PetID == petID {
			out = append(out, e)
		}
	}

	healthlogs.SortEntries(out)
	return out, nil
}

func (r *logRepo) Update(ctx context.Context, e healthlogs.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.byID[e.ID]
	if !ok || current.Kind != e.Kind {
		return apperr.NotFound(e.Kind.Label())
	}
	r.byID[e.ID] = e
	return nil
}

func (r *logRepo) Delete(ctx context.Context, kind healthlogs.Kind, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok || e.Kind != kind {
		return apperr.NotFound(kind.Label())
	}
	delete(r.byID, id)
	return nil
}

func (r *logRepo) DeleteByPet(ctx context.Context, petID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.byID {
		if e.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}
