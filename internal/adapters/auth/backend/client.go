package backend

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/platform/httpclient"
	"pet-health-tracker/internal/ports/auth"
)

var ErrNotConfigured = errors.New("backend client not configured")

// Config del backend hospedado. BaseURL y APIKey vienen de BACKEND_URL / BACKEND_API_KEY.
type Config struct {
	BaseURL string
	APIKey  string

	// Timeout HTTP; 0 = 5s.
	Timeout time.Duration

	// Transport opcional, para tests.
	Transport http.RoundTripper
}

type Client struct {
	http   *httpclient.Client
	apiKey string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	key := strings.TrimSpace(cfg.APIKey)
	if base == "" || key == "" {
		return nil, ErrNotConfigured
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.New(httpclient.Config{
		BaseURL:   base,
		Timeout:   timeout,
		Transport: cfg.Transport,
		Headers:   map[string]string{"apikey": key},
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc, apiKey: key}, nil
}

const userPath = "/auth/v1/user"

type userResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		Name string `json:"name"`
	} `json:"user_metadata"`
}

// GetUser resuelve el token contra el backend.
// - 401/403 => auth.ErrInvalidToken
// - falla de red => apperr.ErrNetwork
func (c *Client) GetUser(ctx context.Context, token string) (auth.Claims, error) {
	if c == nil || c.http == nil {
		return auth.Claims{}, ErrNotConfigured
	}

	var out userResponse
	err := c.http.DoJSON(ctx, http.MethodGet, userPath,
		map[string]string{"Authorization": "Bearer " + token}, nil, &out)
	switch {
	case err == nil:
	case errors.Is(err, httpclient.ErrTransport):
		return auth.Claims{}, apperr.Network(err)
	default:
		switch httpclient.StatusOf(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, auth.ErrInvalidToken
		}
		return auth.Claims{}, err
	}

	name := strings.TrimSpace(out.UserMetadata.Name)
	if name == "" {
		name = strings.TrimSpace(out.Email)
	}
	return auth.Claims{
		UserID: strings.TrimSpace(out.ID),
		Name:   name,
		Source: "backend",
	}, nil
}
