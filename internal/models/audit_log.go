package models

import "time"

type AuditLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// InstanceID names the directory run that produced the entry.
	InstanceID string `gorm:"size:36;index" json:"instance_id"`

	ActorID  *int   `gorm:"index" json:"actor_id,omitempty"`
	Entity   string `gorm:"size:50;not null" json:"entity"` // "user", "session", "link"
	TargetID *int   `gorm:"index" json:"target_id,omitempty"`
	Action   string `gorm:"size:50;not null" json:"action"` // "create", "login", "set_salary", ...
	Details  string `gorm:"type:text" json:"details,omitempty"`
}
