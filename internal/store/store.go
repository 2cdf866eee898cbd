// Package store persists catalogs and saved schedules through gorm (PostgreSQL in production, SQLite locally and in tests).
package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Opens the database and migrates every table
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver \"%v\"", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	err = db.AutoMigrate(&Course{}, &Section{}, &Session{}, &Schedule{}, &ScheduleSession{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (repository *Repository) Ping() error {
	sqlDB, err := repository.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (repository *Repository) Close() error {
	sqlDB, err := repository.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
