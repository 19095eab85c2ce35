package models

import (
	"time"
)

// AdminLog is an append-only audit trail of administrative mutations.
type AdminLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"index"`
	ActionType  string    `json:"action_type" gorm:"not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
