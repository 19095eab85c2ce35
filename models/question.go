package models

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	TestID        uint           `json:"test_id" gorm:"not null;index"`
	QuestionText  string         `json:"question_text" gorm:"not null"`
	Options       datatypes.JSON `json:"options" gorm:"type:jsonb"` // ordered choice list
	CorrectAnswer string         `json:"correct_answer" gorm:"not null"`
	Points        int            `json:"points" gorm:"not null"`
	OrderIndex    int            `json:"order_index" gorm:"not null"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
