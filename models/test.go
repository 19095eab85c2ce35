package models

import (
	"time"
)

type Test struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Title         string    `json:"title" gorm:"not null"`
	Description   string    `json:"description"`
	QuestionCount int       `json:"question_count" gorm:"not null"`
	TotalPoints   int       `json:"total_points" gorm:"not null"`
	IsPublished   bool      `json:"is_published" gorm:"not null"`
	AverageRating float64   `json:"average_rating" gorm:"not null"`
	ReviewCount   int       `json:"review_count" gorm:"not null"`
	CreatedBy     uint      `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
	Tags      []Tag      `json:"tags,omitempty" gorm:"many2many:test_tags;constraint:OnDelete:CASCADE"`
	Results   []Result   `json:"results,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
	Reviews   []Review   `json:"reviews,omitempty" gorm:"foreignKey:TestID;constraint:OnDelete:CASCADE"`
}
