package services

import (
	"core/models"

	"gorm.io/gorm"
)

type SongService struct {
	db *gorm.DB
}

func NewSongService(db *gorm.DB) *SongService {
	return &SongService{
		db: db,
	}
}

// FindByTitles returns the catalog entries matching the given titles. Titles
// with no match are simply absent from the result; the caller decides what
// to do about them.
func (s *SongService) FindByTitles(titles []string) ([]models.Song, error) {
	if len(titles) == 0 {
		return nil, nil
	}

	var songs []models.Song
	if err := s.db.Where("title IN ?", titles).Find(&songs).Error; err != nil {
		return nil, err
	}

	return songs, nil
}

func (s *SongService) GetAllSongs(page int, pageSize int) (*models.PaginatedSongsResponse, error) {
	var songs []models.Song
	var total int64

	if err := s.db.Model(&models.Song{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("title ASC").
		Offset(offset).
		Limit(pageSize).
		Find(&songs).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedSongsResponse{
		Data:       songs,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
