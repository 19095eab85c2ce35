package models

import (
	"time"

	"gorm.io/datatypes"
)

type Result struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	TestID         uint           `json:"test_id" gorm:"not null;index"`
	UserName       string         `json:"user_name" gorm:"not null"`
	Answers        datatypes.JSON `json:"answers" gorm:"type:jsonb"` // raw answers payload as submitted
	Score          int            `json:"score" gorm:"not null"`
	TotalQuestions int            `json:"total_questions" gorm:"not null"`
	MaxScore       int            `json:"max_score" gorm:"not null"`
	Percentage     float64        `json:"percentage" gorm:"not null"`
	CompletedAt    time.Time      `json:"completed_at"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// Relationships
	Test *Test `json:"test,omitempty" gorm:"foreignKey:TestID"`
}
