package pets

import "time"

// Pet representa el perfil básico de una mascota. Pertenece a un único usuario (OwnerUserID).
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string // texto libre: "dog", "cat", "Dog"...
	Breed   string // opcional
	Age     int    // años

	CreatedAt time.Time
	UpdatedAt time.Time
}
