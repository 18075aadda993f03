package services

import (
	"errors"
	"fmt"

	"core/models"

	"gorm.io/gorm"
)

type GameUserService struct {
	db *gorm.DB
}

func NewGameUserService(db *gorm.DB) *GameUserService {
	return &GameUserService{
		db: db,
	}
}

// ResolveByGitadoraID finds or creates the game user owning the given
// external id and enforces the one-to-one mapping between a login account
// and a gitadora id:
//   - the profile for this gitadora id must not belong to a different
//     account, and
//   - the account must not already be linked to a different gitadora id.
//
// Name and title are refreshed only when the scraped value is non-empty, so
// a batch without profile metadata never blanks an existing profile.
func (s *GameUserService) ResolveByGitadoraID(gitadoraID, name, title string, socialUserID *uint) (*models.GameUser, error) {
	if gitadoraID == "" {
		return nil, errors.New("gitadoraId is required")
	}

	var user models.GameUser
	err := s.db.Where("gitadora_id = ?", gitadoraID).First(&user).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if socialUserID != nil {
		if found && user.SocialUserID != nil && *user.SocialUserID != *socialUserID {
			return nil, &ConflictError{
				Code:    CodeDuplicateMappingOtherAccount,
				Message: "this gitadora id is already linked to another account",
			}
		}

		var linked models.GameUser
		err := s.db.Where("social_user_id = ?", *socialUserID).First(&linked).Error
		if err == nil && (linked.GitadoraID == nil || *linked.GitadoraID != gitadoraID) {
			return nil, &ConflictError{
				Code:    CodeAlreadyMappedToDifferentData,
				Message: "this account is already mapped to different gitadora data",
			}
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if !found {
		id := gitadoraID
		user = models.GameUser{
			GitadoraID:   &id,
			Name:         name,
			Title:        title,
			SocialUserID: socialUserID,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}

	changed := false
	if name != "" && user.Name != name {
		user.Name = name
		changed = true
	}
	if title != "" && user.Title != title {
		user.Title = title
		changed = true
	}
	if socialUserID != nil && user.SocialUserID == nil {
		user.SocialUserID = socialUserID
		changed = true
	}

	if changed {
		if err := s.db.Save(&user).Error; err != nil {
			return nil, err
		}
	}

	return &user, nil
}

func (s *GameUserService) GetByID(id uint) (*models.GameUser, error) {
	var user models.GameUser

	result := s.db.First(&user, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("game user %d not found", id)}
		}
		return nil, result.Error
	}

	return &user, nil
}

func (s *GameUserService) GetBySocialUserID(socialUserID uint) (*models.GameUser, error) {
	var user models.GameUser

	result := s.db.Where("social_user_id = ?", socialUserID).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "no game user linked to this account"}
		}
		return nil, result.Error
	}

	return &user, nil
}

func (s *GameUserService) GetAllGameUsers(page int, pageSize int) (*models.PaginatedGameUsersResponse, error) {
	var users []models.GameUser
	var total int64

	if err := s.db.Model(&models.GameUser{}).Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&users).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedGameUsersResponse{
		Data:       users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
