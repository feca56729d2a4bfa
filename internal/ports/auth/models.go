package auth

// Claims es la identidad de sesión del usuario autenticado.
type Claims struct {
	UserID string
	Name   string

	// Source indica quién emitió la identidad: "token", "backend", "session" o "debug".
	Source string
}
