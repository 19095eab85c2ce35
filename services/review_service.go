package services

import (
	"math"

	"testhub/models"

	"gorm.io/gorm"
)

type ReviewService struct {
	db    *gorm.DB
	cache *Cache
}

func NewReviewService(db *gorm.DB, cache *Cache) *ReviewService {
	return &ReviewService{db: db, cache: cache}
}

type AddReviewRequest struct {
	TestID   uint   `json:"test_id" binding:"required"`
	UserName string `json:"user_name"`
	Rating   int    `json:"rating" binding:"required"`
	Comment  string `json:"comment"`
}

// averageRating is the mean rating rounded to one decimal place, 0 with no
// ratings.
func averageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}

// AddReview inserts the review and writes the recomputed average_rating and
// review_count back onto the parent test in the same transaction.
func (s *ReviewService) AddReview(req *AddReviewRequest) (*models.Review, error) {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	review := models.Review{
		TestID:     req.TestID,
		UserName:   req.UserName,
		Rating:     req.Rating,
		Comment:    req.Comment,
		IsApproved: true,
	}
	if err := tx.Create(&review).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var ratings []int
	err := tx.Model(&models.Review{}).
		Where("test_id = ? AND is_approved = ?", req.TestID, true).
		Pluck("rating", &ratings).Error
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	updates := map[string]interface{}{
		"average_rating": averageRating(ratings),
		"review_count":   len(ratings),
	}
	if err := tx.Model(&models.Test{}).Where("id = ?", req.TestID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	// cached test lists carry the denormalized rating fields
	s.cache.Invalidate(testListCacheKeys()...)

	return &review, nil
}
