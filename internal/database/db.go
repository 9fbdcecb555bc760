package database

import (
	"fmt"
	"log/slog"
	"time"

	"hr-directory/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	maxAttempts  = 10
	retryBackoff = 2 * time.Second
)

// Init connects to Postgres, retrying while the database starts up, and
// migrates the audit table.
func Init(dsn string, log *slog.Logger) (*gorm.DB, error) {
	return Connect(postgres.Open(dsn), maxAttempts, retryBackoff, log)
}

// Connect opens dialector with up to attempts tries and runs migrations.
func Connect(dialector gorm.Dialector, attempts int, backoff time.Duration, log *slog.Logger) (*gorm.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	var (
		db  *gorm.DB
		err error
	)
	for i := 1; i <= attempts; i++ {
		log.Info("connecting to audit database", "attempt", i, "max_attempts", attempts)

		db, err = gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err == nil {
			log.Info("connected to audit database")
			break
		}

		log.Warn("failed to connect to audit database", "error", err)
		if i < attempts {
			time.Sleep(backoff)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", attempts, err)
	}

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}
