package router

import (
	"net/http"

	"pet-health-tracker/internal/adapters/auth/backend"
	"pet-health-tracker/internal/adapters/auth/token"
	"pet-health-tracker/internal/config"
	"pet-health-tracker/internal/domain/healthlogs"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/domain/profiles"
	"pet-health-tracker/internal/domain/users"
	"pet-health-tracker/internal/middleware"
	"pet-health-tracker/internal/platform/logger"
	"pet-health-tracker/internal/platform/session"
	"pet-health-tracker/internal/ports/auth"

	_ "pet-health-tracker/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil = Nop

	// Stores ya abiertos; nil = MemoryStores(). main abre el driver configurado.
	Stores *Stores

	// Limiter para signup/signin; nil = uno nuevo según Config.RateLimit (sin limpieza periódica).
	Limiter *middleware.RateLimiter
}

func NewRouter(opts Options) (http.Handler, error) {
	cfg := opts.Config
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	stores := opts.Stores
	if stores == nil {
		stores = MemoryStores()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	tokens, err := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, err
	}
	verifiers := auth.Chain{tokens}
	if cfg.Backend.URL != "" {
		client, err := backend.NewClient(backend.Config{
			BaseURL: cfg.Backend.URL,
			APIKey:  cfg.Backend.APIKey,
			Timeout: cfg.Backend.Timeout,
		})
		if err != nil {
			return nil, err
		}
		verifiers = append(verifiers, backend.NewVerifier(client))
	}

	sessions, err := session.New(session.Options{
		Secret: cfg.Auth.SessionSecret,
		Secure: cfg.Auth.SecureCookies,
	})
	if err != nil {
		return nil, err
	}

	var limit func(http.Handler) http.Handler
	if opts.Limiter != nil {
		limit = opts.Limiter.Limit
	} else if cfg.RateLimit.Requests > 0 {
		limit = middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window).Limit
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log))

	r.Use(middleware.AuthContext(middleware.AuthOptions{
		Verifier:     verifiers,
		Sessions:     sessions,
		DebugHeaders: cfg.Auth.DebugHeaders,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	usersSvc := users.NewService(stores.Users)
	petsSvc := pets.NewService(stores.Pets)
	logsSvc := healthlogs.NewService(stores.Logs, petsSvc)
	profilesSvc := profiles.NewService(petsSvc, logsSvc, loc)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, tokens, sessions, limit)
	pets.RegisterRoutes(r, petsSvc)
	profiles.RegisterRoutes(r, profilesSvc)
	healthlogs.RegisterRoutes(r, logsSvc, petsSvc, loc)

	log.Info("router ready", logger.Fields{
		"storage":        stores.Driver,
		"backend_auth":   cfg.Backend.URL != "",
		"debug_headers":  cfg.Auth.DebugHeaders,
		"summary_tz":     loc.String(),
		"rate_limit_req": cfg.RateLimit.Requests,
	})
	return r, nil
}
