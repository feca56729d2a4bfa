package users

import "time"

// User es la identidad de la app. El password nunca se guarda en claro.
type User struct {
	ID           string
	Name         string
	PasswordHash string

	CreatedAt time.Time
}

// Profile es la forma alternativa de identidad (username, nombre completo, avatar).
// Uno por usuario; no participa de los flujos de mascotas.
type Profile struct {
	ID        string
	UserID    string
	Username  string
	FullName  string
	AvatarURL string

	UpdatedAt time.Time
}
