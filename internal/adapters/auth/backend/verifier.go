package backend

import (
	"context"
	"errors"
	"strings"

	"pet-health-tracker/internal/ports/auth"
)

// Verifier implementa auth.AuthVerifier contra el backend hospedado.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	claims, err := v.client.GetUser(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}
	if claims.UserID == "" {
		return auth.Claims{}, errors.New("backend response missing user id")
	}
	return claims, nil
}
