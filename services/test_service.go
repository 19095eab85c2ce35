package services

import (
	"fmt"
	"strconv"

	"testhub/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TestService struct {
	db    *gorm.DB
	cache *Cache
}

func NewTestService(db *gorm.DB, cache *Cache) *TestService {
	return &TestService{db: db, cache: cache}
}

type QuestionInput struct {
	QuestionText  string         `json:"question_text" binding:"required"`
	Options       datatypes.JSON `json:"options"`
	CorrectAnswer string         `json:"correct_answer"`
	Points        int            `json:"points"` // defaults to 1 when omitted
}

type CreateTestRequest struct {
	Title       string          `json:"title" binding:"required"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
	Tags        []uint          `json:"tags"`
	CreatedBy   uint            `json:"created_by"`
	IsPublished bool            `json:"is_published"`
}

type UpdateTestRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Questions   []QuestionInput `json:"questions"`
	Tags        []uint          `json:"tags"`
	UpdatedBy   uint            `json:"updated_by"`
	IsPublished bool            `json:"is_published"`
}

// summarizeQuestions derives the denormalized counters stored on the test row.
// A question with no points counts as 1.
func summarizeQuestions(questions []QuestionInput) (count int, totalPoints int) {
	count = len(questions)
	for _, q := range questions {
		points := q.Points
		if points <= 0 {
			points = 1
		}
		totalPoints += points
	}
	return count, totalPoints
}

func buildQuestions(testID uint, inputs []QuestionInput) []models.Question {
	questions := make([]models.Question, 0, len(inputs))
	for i, in := range inputs {
		points := in.Points
		if points <= 0 {
			points = 1
		}
		questions = append(questions, models.Question{
			TestID:        testID,
			QuestionText:  in.QuestionText,
			Options:       in.Options,
			CorrectAnswer: in.CorrectAnswer,
			Points:        points,
			OrderIndex:    i,
		})
	}
	return questions
}

func (s *TestService) ListTests(publishedOnly bool) ([]models.Test, error) {
	cacheKey := testListCacheKey(publishedOnly)
	var cached []models.Test
	if s.cache.GetJSON(cacheKey, &cached) {
		return cached, nil
	}

	query := s.db
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var tests []models.Test
	err := query.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index")
		}).
		Preload("Tags").
		Order("created_at DESC").
		Find(&tests).Error
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(cacheKey, tests)
	return tests, nil
}

func (s *TestService) GetTestByID(testID uint) (*models.Test, error) {
	var test models.Test
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.order_index")
		}).
		Preload("Tags").
		Preload("Reviews", "is_approved = ?", true).
		First(&test, testID).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (s *TestService) CreateTest(req *CreateTestRequest) (*models.Test, error) {
	questionCount, totalPoints := summarizeQuestions(req.Questions)

	// Start transaction
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	test := models.Test{
		Title:         req.Title,
		Description:   req.Description,
		QuestionCount: questionCount,
		TotalPoints:   totalPoints,
		IsPublished:   req.IsPublished,
		CreatedBy:     req.CreatedBy,
	}

	if err := tx.Create(&test).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for _, question := range buildQuestions(test.ID, req.Questions) {
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	for _, tagID := range req.Tags {
		link := models.TestTag{TestID: test.ID, TagID: tagID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	logEntry := models.AdminLog{
		UserID:      req.CreatedBy,
		ActionType:  "create_test",
		Description: fmt.Sprintf("Created test %q", req.Title),
	}
	if err := tx.Create(&logEntry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(testListCacheKeys()...)

	return s.GetTestByID(test.ID)
}

func (s *TestService) UpdateTest(testID uint, req *UpdateTestRequest) (*models.Test, error) {
	// Check that the test exists before rewriting it
	if _, err := s.GetTestByID(testID); err != nil {
		return nil, err
	}

	questionCount, totalPoints := summarizeQuestions(req.Questions)

	// Start transaction
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	updates := map[string]interface{}{
		"title":          req.Title,
		"description":    req.Description,
		"question_count": questionCount,
		"total_points":   totalPoints,
		"is_published":   req.IsPublished,
	}
	if err := tx.Model(&models.Test{}).Where("id = ?", testID).Updates(updates).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Full replace of the question list, not a diff
	if err := tx.Where("test_id = ?", testID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, question := range buildQuestions(testID, req.Questions) {
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	// Tag links are replaced the same way
	if err := tx.Where("test_id = ?", testID).Delete(&models.TestTag{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, tagID := range req.Tags {
		link := models.TestTag{TestID: testID, TagID: tagID}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	logEntry := models.AdminLog{
		UserID:      req.UpdatedBy,
		ActionType:  "update_test",
		Description: fmt.Sprintf("Updated test %q", req.Title),
	}
	if err := tx.Create(&logEntry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.cache.Invalidate(testListCacheKeys()...)

	return s.GetTestByID(testID)
}

// DeleteTest removes a test; questions, tag links, results and reviews go with
// it through the store's cascade. Deleting an id that is already gone is not an
// error, and the audit entry then references the raw id instead of a title.
func (s *TestService) DeleteTest(testID uint, userID uint) error {
	label := strconv.FormatUint(uint64(testID), 10)
	var test models.Test
	if err := s.db.First(&test, testID).Error; err == nil {
		label = test.Title
	}

	// Start transaction
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(&models.Test{}, testID).Error; err != nil {
		tx.Rollback()
		return err
	}

	logEntry := models.AdminLog{
		UserID:      userID,
		ActionType:  "delete_test",
		Description: fmt.Sprintf("Deleted test %q", label),
	}
	if err := tx.Create(&logEntry).Error; err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.cache.Invalidate(testListCacheKeys()...)
	return nil
}
