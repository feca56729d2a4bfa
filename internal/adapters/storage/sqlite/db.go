// Package sqlite es el Record Store embebido (gorm + sqlite), pensado para
// correr el servicio en una sola máquina sin Postgres.
package sqlite

import (
	"errors"
	"fmt"

	"pet-health-tracker/internal/domain/apperr"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// MemoryPath abre una base en memoria (tests y demos).
const MemoryPath = ":memory:"

// Open abre (o crea) la base en path y aplica AutoMigrate.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite serializa escrituras; con :memory: cada conexión sería otra base.
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&userRow{}, &profileRow{}, &petRow{}, &weightLogRow{}, &bodyConditionLogRow{}, &vetVisitLogRow{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return db, nil
}

// Close libera el pool de conexiones subyacente de db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	return sqlDB.Close()
}

func mapErr(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.NotFound(entity)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.Conflict("%s already exists", entity)
	default:
		return err
	}
}

func mustAffect(tx *gorm.DB, entity string) error {
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return apperr.NotFound(entity)
	}
	return nil
}
