package services

import (
	"time"

	"core/models"

	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{
		db: db,
	}
}

func (s *StatsService) GetStats() (*models.Stats, error) {
	var totalGameUsers int64
	var totalSkillRecords int64
	var recordsLast7Days int64
	var recordsPrevious7Days int64

	if err := s.db.Model(&models.GameUser{}).Count(&totalGameUsers).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.SkillRecord{}).Count(&totalSkillRecords).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	last7DaysStart := now.AddDate(0, 0, -7)
	previous7DaysStart := now.AddDate(0, 0, -14)

	if err := s.db.Model(&models.SkillRecord{}).
		Where("created_at >= ?", last7DaysStart).
		Count(&recordsLast7Days).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.SkillRecord{}).
		Where("created_at >= ? AND created_at < ?", previous7DaysStart, last7DaysStart).
		Count(&recordsPrevious7Days).Error; err != nil {
		return nil, err
	}

	stats := &models.Stats{
		TotalGameUsers:       totalGameUsers,
		TotalSkillRecords:    totalSkillRecords,
		RecordsLast7Days:     recordsLast7Days,
		RecordsPrevious7Days: recordsPrevious7Days,
	}

	return stats, nil
}
