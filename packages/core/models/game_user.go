package models

import (
	"time"

	"gorm.io/gorm"
)

type GameUser struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	GitadoraID   *string        `gorm:"size:64;uniqueIndex" json:"gitadora_id"`
	Name         string         `gorm:"size:255" json:"name"`
	Title        string         `gorm:"size:255" json:"title"`
	SocialUserID *uint          `gorm:"uniqueIndex" json:"social_user_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	SkillRecords   []SkillRecord  `gorm:"foreignKey:GameUserID" json:"skill_records,omitempty"`
	SkillHistories []SkillHistory `gorm:"foreignKey:GameUserID" json:"skill_histories,omitempty"`
}

func (GameUser) TableName() string {
	return "game_users"
}

type PaginatedGameUsersResponse struct {
	Data       []GameUser `json:"data"`
	Total      int64      `json:"total"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
}
