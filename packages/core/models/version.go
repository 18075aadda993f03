package models

import (
	"time"
)

// GameVersion is one GITADORA release. Every skill record is tagged with the
// version it was scraped under.
type GameVersion struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"size:64;not null;uniqueIndex" json:"name"`
	ReleasedAt *time.Time `json:"released_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (GameVersion) TableName() string {
	return "game_versions"
}
