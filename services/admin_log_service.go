package services

import (
	"testhub/models"

	"gorm.io/gorm"
)

type AdminLogService struct {
	db *gorm.DB
}

func NewAdminLogService(db *gorm.DB) *AdminLogService {
	return &AdminLogService{db: db}
}

func (s *AdminLogService) ListLogs() ([]models.AdminLog, error) {
	var logs []models.AdminLog
	err := s.db.Order("created_at DESC").Find(&logs).Error
	return logs, err
}
