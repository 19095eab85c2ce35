package models

import (
	"time"
)

type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TestID     uint      `json:"test_id" gorm:"not null;index"`
	UserID     *uint     `json:"user_id"` // reviews are accepted without a user binding
	UserName   string    `json:"user_name"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"is_approved" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
