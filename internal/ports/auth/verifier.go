package auth

import (
	"context"
	"errors"
)

// ErrInvalidToken es el error común de los verificadores ante un token rechazado.
var ErrInvalidToken = errors.New("invalid token")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// Chain prueba los verificadores en orden y devuelve el primero que acepta el token.
// Los nil se ignoran. Si todos fallan devuelve el último error.
type Chain []AuthVerifier

func (c Chain) Verify(ctx context.Context, token string) (Claims, error) {
	err := ErrInvalidToken
	for _, v := range c {
		if v == nil {
			continue
		}
		claims, verr := v.Verify(ctx, token)
		if verr == nil {
			return claims, nil
		}
		err = verr
	}
	return Claims{}, err
}
