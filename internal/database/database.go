package database

import (
	"fmt"
	"log"
	"time"

	"github.com/Conceptual-Machines/rug-loom/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	maxIdleConns    = 5
	maxOpenConns    = 20
	connMaxLifetime = 30 * time.Minute
)

// Connect opens the Postgres theme cache
func Connect(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is empty")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	log.Println("✅ Database connected")
	return db, nil
}

// Migrate creates or updates the cache tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.ThemeRecord{}); err != nil {
		return fmt.Errorf("failed to migrate theme cache: %w", err)
	}
	log.Println("✅ Database migrations completed")
	return nil
}
