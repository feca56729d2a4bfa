// Package config carga la configuración del servicio:
// defaults -> .env -> config.yaml -> variables de entorno.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Listen  string `yaml:"listen"`
	AppName string `yaml:"app_name"`

	Log       LogConfig       `yaml:"log"`
	Storage   StorageConfig   `yaml:"storage"`
	Auth      AuthConfig      `yaml:"auth"`
	Backend   BackendConfig   `yaml:"backend"`
	Summary   SummaryConfig   `yaml:"summary"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	// Warnings acumula avisos de carga (p.ej. secretos generados) para loguear al arrancar.
	Warnings []string `yaml:"-"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver"`
	DSN        string `yaml:"dsn"`
	SQLitePath string `yaml:"sqlite_path"`
}

type AuthConfig struct {
	JWTSecret     string        `yaml:"jwt_secret"`
	TokenTTL      time.Duration `yaml:"token_ttl"`
	SessionSecret string        `yaml:"session_secret"`
	SecureCookies bool          `yaml:"secure_cookies"`
	DebugHeaders  bool          `yaml:"debug_headers"`
}

type BackendConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"api_key"`
	Timeout time.Duration `yaml:"timeout"`
}

type SummaryConfig struct {
	// Zona IANA del "mes en curso" (p.ej. America/Lima). Vacío = UTC.
	Timezone string `yaml:"timezone"`
}

type RateLimitConfig struct {
	Requests int           `yaml:"requests"`
	Window   time.Duration `yaml:"window"`
}

func Defaults() Config {
	return Config{
		Listen:  ":8080",
		AppName: "pet-health-tracker",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Storage: StorageConfig{
			Driver:     DriverMemory,
			SQLitePath: "pet-health.db",
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Backend: BackendConfig{
			Timeout: 5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Requests: 10,
			Window:   time.Minute,
		},
	}
}

// Load arma la configuración. path vacío usa CONFIG_FILE o "config.yaml".
// Un .env o un YAML inexistentes no son error.
func Load(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	c := Defaults()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if strings.TrimSpace(path) == "" {
		path = "config.yaml"
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&c); err != nil {
		return Config{}, err
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	c.fillSecrets()
	return c, nil
}

func applyEnv(c *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		c.Listen = ":" + strings.TrimPrefix(v, ":")
	}
	if v := os.Getenv("LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("APP_NAME"); v != "" {
		c.AppName = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("STORAGE_DRIVER"); v != "" {
		c.Storage.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		c.Storage.DSN = v
		// Compat: DB_DSN solo ya alcanzaba para usar Postgres.
		if os.Getenv("STORAGE_DRIVER") == "" && c.Storage.Driver == DriverMemory {
			c.Storage.Driver = DriverPostgres
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		c.Storage.SQLitePath = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("TOKEN_TTL: %w", err)
		}
		c.Auth.TokenTTL = d
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		c.Auth.SessionSecret = v
	}
	if v := os.Getenv("SECURE_COOKIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SECURE_COOKIES: %w", err)
		}
		c.Auth.SecureCookies = b
	}
	if v := os.Getenv("AUTH_DEBUG_HEADERS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUTH_DEBUG_HEADERS: %w", err)
		}
		c.Auth.DebugHeaders = b
	}
	if v := os.Getenv("BACKEND_URL"); v != "" {
		c.Backend.URL = v
	}
	if v := os.Getenv("BACKEND_API_KEY"); v != "" {
		c.Backend.APIKey = v
	}
	if v := os.Getenv("SUMMARY_TZ"); v != "" {
		c.Summary.Timezone = v
	}
	return nil
}

func (c *Config) validate() error {
	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	switch c.Storage.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return errors.New("storage.dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if (c.Backend.URL == "") != (c.Backend.APIKey == "") {
		return errors.New("backend.url and backend.api_key must be set together")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.RateLimit.Requests < 0 || c.RateLimit.Window < 0 {
		return errors.New("rate_limit values must be >= 0")
	}
	return nil
}

// fillSecrets genera secretos aleatorios por proceso si faltan (solo dev).
func (c *Config) fillSecrets() {
	if c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = randomSecret()
		c.Warnings = append(c.Warnings, "auth.jwt_secret not set; using a random secret, tokens will not survive a restart")
	}
	if c.Auth.SessionSecret == "" {
		c.Auth.SessionSecret = randomSecret()
		c.Warnings = append(c.Warnings, "auth.session_secret not set; using a random secret, sessions will not survive a restart")
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand: %v", err))
	}
	return hex.EncodeToString(b)
}

// Location resuelve summary.timezone.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Summary.Timezone)
	if tz == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("summary.timezone: %w", err)
	}
	return loc, nil
}
