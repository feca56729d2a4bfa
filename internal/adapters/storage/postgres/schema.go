package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema crea las tablas si no existen. Los logs se borran en cascada con la mascota.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS profiles (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL UNIQUE,
		username   TEXT NOT NULL DEFAULT '',
		full_name  TEXT NOT NULL DEFAULT '',
		avatar_url TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS pets (
		id            TEXT PRIMARY KEY,
		owner_user_id TEXT NOT NULL,
		name          TEXT NOT NULL,
		species       TEXT NOT NULL,
		breed         TEXT NOT NULL DEFAULT '',
		age           INTEGER NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL,
		updated_at    TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS pets_owner_idx ON pets (owner_user_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS weight_logs (
		id         TEXT PRIMARY KEY,
		pet_id     TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		weight     DOUBLE PRECISION NOT NULL,
		date       TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS body_condition_logs (
		id             TEXT PRIMARY KEY,
		pet_id         TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		body_condition TEXT NOT NULL,
		date           TIMESTAMPTZ NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL,
		updated_at     TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vet_visit_logs (
		id         TEXT PRIMARY KEY,
		pet_id     TEXT NOT NULL REFERENCES pets(id) ON DELETE CASCADE,
		notes      TEXT NULL,
		date       TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS weight_logs_pet_idx ON weight_logs (pet_id, date DESC)`,
	`CREATE INDEX IF NOT EXISTS body_condition_logs_pet_idx ON body_condition_logs (pet_id, date DESC)`,
	`CREATE INDEX IF NOT EXISTS vet_visit_logs_pet_idx ON vet_visit_logs (pet_id, date DESC)`,
}

// Migrate aplica el esquema. Es idempotente.
func Migrate(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate step %d: %w", i, err)
		}
	}
	return nil
}
