package router

import (
	"context"
	"fmt"

	mem "pet-health-tracker/internal/adapters/storage/memory"
	pg "pet-health-tracker/internal/adapters/storage/postgres"
	lite "pet-health-tracker/internal/adapters/storage/sqlite"
	"pet-health-tracker/internal/config"
	"pet-health-tracker/internal/domain/healthlogs"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/domain/users"
)

// Stores agrupa los repos de un mismo backend de storage.
type Stores struct {
	Driver string

	Pets  pets.Repository
	Logs  healthlogs.Repository
	Users users.Repository

	close func() error
}

func (s *Stores) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func MemoryStores() *Stores {
	return &Stores{
		Driver: config.DriverMemory,
		Pets:   mem.NewPetRepo(),
		Logs:   mem.NewHealthLogRepo(),
		Users:  mem.NewUserRepo(),
	}
}

// OpenStores abre el storage configurado y aplica el esquema si corresponde.
func OpenStores(ctx context.Context, cfg config.StorageConfig) (*Stores, error) {
	switch cfg.Driver {
	case "", config.DriverMemory:
		return MemoryStores(), nil

	case config.DriverPostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Stores{
			Driver: config.DriverPostgres,
			Pets:   pg.NewPetsRepo(db),
			Logs:   pg.NewHealthLogsRepo(db),
			Users:  pg.NewUsersRepo(db),
			close:  db.Close,
		}, nil

	case config.DriverSQLite:
		db, err := lite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &Stores{
			Driver: config.DriverSQLite,
			Pets:   lite.NewPetsRepo(db),
			Logs:   lite.NewHealthLogsRepo(db),
			Users:  lite.NewUsersRepo(db),
			close:  func() error { return lite.Close(db) },
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
