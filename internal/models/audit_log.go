package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog records who did what through the API. Rows are written by the
// audit middleware after each authenticated mutation.
type AuditLog struct {
	BaseModel

	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Email     string         `gorm:"not null" json:"email"`
	Action    string         `gorm:"not null" json:"action"`
	Resource  string         `gorm:"not null" json:"resource"`
	ClientIP  string         `json:"client_ip"`
	UserAgent string         `json:"user_agent"`
	Details   datatypes.JSON `gorm:"type:jsonb" json:"details"`
}
