// Package app wires configuration, the audit trail and the directory
// together for the binaries.
package app

import (
	"fmt"
	"log/slog"

	"hr-directory/internal/auth"
	"hr-directory/internal/config"
	"hr-directory/internal/database"
	"hr-directory/internal/directory"
	"hr-directory/internal/models"
	"hr-directory/internal/seed"
)

// AuditTrail records directory events and reads them back.
type AuditTrail interface {
	directory.Recorder
	Recent(limit int) ([]models.AuditLog, error)
	ForTarget(instance string, id int) ([]models.AuditLog, error)
}

type App struct {
	Directory *directory.Directory
	Audit     AuditTrail
}

// Bootstrap builds the directory described by cfg and applies the seed
// roster, if one is configured.
func Bootstrap(cfg *config.Config, log *slog.Logger) (*App, error) {
	var trail AuditTrail = directory.NewMemoryRecorder()
	if cfg.DBDSN != "" {
		db, err := database.Init(cfg.DBDSN, log)
		if err != nil {
			return nil, fmt.Errorf("audit database: %w", err)
		}
		trail = database.NewAuditStore(db)
	}

	dir, err := directory.New(cfg.AdminName, cfg.AdminPassword,
		directory.WithHasher(auth.NewBcryptHasher(cfg.BcryptCost)),
		directory.WithRecorder(trail),
		directory.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	if cfg.SeedFile != "" {
		if err := applySeed(dir, cfg, log); err != nil {
			return nil, err
		}
	}

	return &App{Directory: dir, Audit: trail}, nil
}

func applySeed(dir *directory.Directory, cfg *config.Config, log *slog.Logger) error {
	roster, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return err
	}

	admin := dir.NewSession()
	if err := admin.LogIn(0, cfg.AdminPassword); err != nil {
		return fmt.Errorf("seed login: %w", err)
	}
	defer admin.LogOut()

	ids, err := seed.Apply(admin, roster)
	if err != nil {
		return fmt.Errorf("seed %s: %w", cfg.SeedFile, err)
	}
	for key, id := range ids {
		log.Info("seeded employee", "key", key, "id", id)
	}
	return nil
}
