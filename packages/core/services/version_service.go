package services

import (
	"errors"
	"fmt"

	"core/models"

	"gorm.io/gorm"
)

type VersionService struct {
	db *gorm.DB
}

func NewVersionService(db *gorm.DB) *VersionService {
	return &VersionService{
		db: db,
	}
}

func (s *VersionService) FindByName(name string) (*models.GameVersion, error) {
	var version models.GameVersion

	result := s.db.Where("name = ?", name).First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("game version %q not found", name)}
		}
		return nil, result.Error
	}

	return &version, nil
}

// Latest returns the most recently added game version.
func (s *VersionService) Latest() (*models.GameVersion, error) {
	var version models.GameVersion

	result := s.db.Order("id DESC").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "no game versions configured"}
		}
		return nil, result.Error
	}

	return &version, nil
}

// ResolveForIngest maps the batch's version tag to a catalog row. An omitted
// tag falls back to the current release; an unknown tag fails the batch.
func (s *VersionService) ResolveForIngest(name string) (*models.GameVersion, error) {
	if name == "" {
		return s.Latest()
	}
	return s.FindByName(name)
}

func (s *VersionService) GetAllVersions() ([]models.GameVersion, error) {
	var versions []models.GameVersion

	if err := s.db.Order("id ASC").Find(&versions).Error; err != nil {
		return nil, err
	}

	return versions, nil
}
