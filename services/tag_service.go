package services

import (
	"testhub/models"

	"gorm.io/gorm"
)

type TagService struct {
	db    *gorm.DB
	cache *Cache
}

func NewTagService(db *gorm.DB, cache *Cache) *TagService {
	return &TagService{db: db, cache: cache}
}

func (s *TagService) ListTags() ([]models.Tag, error) {
	var cached []models.Tag
	if s.cache.GetJSON(cacheKeyActiveTags, &cached) {
		return cached, nil
	}

	var tags []models.Tag
	err := s.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&tags).Error
	if err != nil {
		return nil, err
	}

	s.cache.SetJSON(cacheKeyActiveTags, tags)
	return tags, nil
}
