package healthlogs

import "context"

// Repository es el Record Store de logs. ListByPet devuelve el orden de SortEntries.
type Repository interface {
	Create(ctx context.Context, e Entry) error
	GetByID(ctx context.Context, kind Kind, id string) (Entry, error)
	ListByPet(ctx context.Context, kind Kind, petID string) ([]Entry, error)
	Update(ctx context.Context, e Entry) error
	Delete(ctx context.Context, kind Kind, id string) error
	DeleteByPet(ctx context.Context, petID string) error
}
