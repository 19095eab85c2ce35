package services

import (
	"time"

	"testhub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ResultService struct {
	db *gorm.DB
}

func NewResultService(db *gorm.DB) *ResultService {
	return &ResultService{db: db}
}

type SubmitResultRequest struct {
	TestID         uint           `json:"test_id" binding:"required"`
	UserName       string         `json:"user_name"`
	Answers        datatypes.JSON `json:"answers"`
	Score          int            `json:"score"`
	TotalQuestions int            `json:"total_questions"`
	MaxScore       int            `json:"max_score"`
	Percentage     float64        `json:"percentage"`
}

func (s *ResultService) SubmitResult(req *SubmitResultRequest) (*models.Result, error) {
	userName := req.UserName
	if userName == "" {
		userName = "Anonymous"
	}

	result := models.Result{
		TestID:         req.TestID,
		UserName:       userName,
		Answers:        req.Answers,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
		MaxScore:       req.MaxScore,
		Percentage:     req.Percentage,
		CompletedAt:    time.Now().UTC(),
	}

	if err := s.db.Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// ListResults returns every result newest-first, each joined with its parent
// test for the title and description.
func (s *ResultService) ListResults() ([]models.Result, error) {
	var results []models.Result
	err := s.db.
		Preload("Test").
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}

func (s *ResultService) ListResultsByTest(testID uint) ([]models.Result, error) {
	var results []models.Result
	err := s.db.
		Where("test_id = ?", testID).
		Order("completed_at DESC").
		Find(&results).Error
	return results, err
}
