package models

import (
	"time"

	"gorm.io/gorm"
)

// Song is the advisory catalog entry. Skill records reference songs by title
// only; an unknown title is logged, never rejected.
type Song struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string         `gorm:"size:255;not null;uniqueIndex" json:"title"`
	Artist    string         `gorm:"size:255" json:"artist"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Song) TableName() string {
	return "songs"
}

type PaginatedSongsResponse struct {
	Data       []Song `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalPages int    `json:"totalPages"`
}
