package models

import (
	"time"
)

// SkillHistory is one aggregate snapshot: the computed skill totals for one
// game user and instrument as of RecordedAt. Rows are append-only; a new
// batch inserts a new snapshot instead of rewriting the previous one, which
// is what makes the skill graph over time possible.
type SkillHistory struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameUserID     uint      `gorm:"not null;index:idx_skill_histories_user_instrument" json:"game_user_id"`
	InstrumentType string    `gorm:"size:16;not null;index:idx_skill_histories_user_instrument" json:"instrument_type"`
	HotSkill       float64   `gorm:"not null" json:"hot_skill"`
	OtherSkill     float64   `gorm:"not null" json:"other_skill"`
	TotalSkill     float64   `gorm:"not null" json:"total_skill"`
	RecordedAt     time.Time `gorm:"not null" json:"recorded_at"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	GameUser GameUser `gorm:"foreignKey:GameUserID;references:ID" json:"game_user,omitempty"`
}

func (SkillHistory) TableName() string {
	return "skill_histories"
}
