package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"pet-health-tracker/internal/domain/apperr"
	"pet-health-tracker/internal/platform/logger"
	"pet-health-tracker/internal/ports/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// SessionLoader lee la identidad guardada en la cookie de sesión.
type SessionLoader interface {
	Load(r *http.Request) (auth.Claims, bool)
}

type AuthOptions struct {
	Verifier auth.AuthVerifier
	Sessions SessionLoader

	// DebugHeaders habilita X-Debug-User-ID (solo dev).
	DebugHeaders bool
}

// AuthContext resuelve la identidad en este orden:
// - Bearer token válido según Verifier
// - cookie de sesión
// - header X-Debug-User-ID si DebugHeaders está activo
// Si no hay claims el request sigue igual; los handlers deciden si exigen auth.
func AuthContext(opts AuthOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, ok := resolveClaims(r, opts); ok {
				next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func resolveClaims(r *http.Request, opts AuthOptions) (auth.Claims, bool) {
	if opts.Verifier != nil {
		if token := bearerToken(r.Header.Get("Authorization")); token != "" {
			claims, err := opts.Verifier.Verify(r.Context(), token)
			if err == nil && strings.TrimSpace(claims.UserID) != "" {
				return claims, true
			}
			// No cortamos aquí. El handler decide 401.
			lvl := logger.FromContext(r.Context()).Debug
			if errors.Is(err, apperr.ErrNetwork) {
				lvl = logger.FromContext(r.Context()).Warn
			}
			lvl("bearer token rejected", logger.Fields{"error": err})
		}
	}

	if opts.Sessions != nil {
		if claims, ok := opts.Sessions.Load(r); ok {
			return claims, true
		}
	}

	if opts.DebugHeaders {
		if uid := strings.TrimSpace(r.Header.Get("X-Debug-User-ID")); uid != "" {
			return auth.Claims{UserID: uid, Source: "debug"}, true
		}
	}
	return auth.Claims{}, false
}

// WithClaims guarda claims en ctx.
func WithClaims(ctx context.Context, c auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return auth.Claims{}, false
	}
	c, ok := v.(auth.Claims)
	return c, ok
}

func bearerToken(authHeader string) string {
	if strings.TrimSpace(authHeader) == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return ""
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
