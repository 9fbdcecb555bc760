package database

import (
	"context"
	"fmt"
	"time"

	"hr-directory/internal/models"

	"gorm.io/gorm"
)

const writeTimeout = 5 * time.Second

// AuditStore persists directory audit entries through gorm.
type AuditStore struct {
	db *gorm.DB
}

func NewAuditStore(db *gorm.DB) *AuditStore {
	return &AuditStore{db: db}
}

// Record writes one entry.
func (s *AuditStore) Record(entry models.AuditLog) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (s *AuditStore) Recent(limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := s.db.
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return logs, nil
}

// ForTarget returns the history of one account, oldest first. Account IDs
// are reused across directory instances, so the instance is part of the key.
func (s *AuditStore) ForTarget(instance string, id int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	err := s.db.
		Where("instance_id = ? AND target_id = ?", instance, id).
		Order("created_at asc").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("list audit logs for %d: %w", id, err)
	}
	return logs, nil
}
