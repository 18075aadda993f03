package models

import (
	"encoding/json"
	"time"
)

// Instrument categories as reported by the game.
const (
	InstrumentGuitar = "GUITAR"
	InstrumentBass   = "BASS"
	InstrumentDrum   = "DRUM"
	InstrumentOpen   = "OPEN"
)

// Difficulty tiers as reported by the game.
const (
	DifficultyBasic    = "BASIC"
	DifficultyAdvanced = "ADVANCED"
	DifficultyExtreme  = "EXTREME"
	DifficultyMaster   = "MASTER"
)

var InstrumentTypes = []string{InstrumentGuitar, InstrumentBass, InstrumentDrum, InstrumentOpen}

var Difficulties = []string{DifficultyBasic, DifficultyAdvanced, DifficultyExtreme, DifficultyMaster}

func IsValidInstrument(instrument string) bool {
	for _, i := range InstrumentTypes {
		if i == instrument {
			return true
		}
	}
	return false
}

func IsValidDifficulty(difficulty string) bool {
	for _, d := range Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}

// SkillRecord is one scraped play result. Rows are insert-only: a
// re-submission of the same chart creates a new record, it never updates an
// existing one, so the full reporting history stays reconstructible.
type SkillRecord struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	GameUserID     uint      `gorm:"not null;index:idx_skill_records_user_instrument" json:"game_user_id"`
	SongTitle      string    `gorm:"size:255;not null" json:"song_title"`
	InstrumentType string    `gorm:"size:16;not null;index:idx_skill_records_user_instrument" json:"instrument_type"`
	Difficulty     string    `gorm:"size:16;not null" json:"difficulty"`
	Achievement    float64   `gorm:"not null" json:"achievement"`
	SkillScore     float64   `gorm:"not null" json:"skill_score"`
	Level          float64   `gorm:"default:0" json:"level"`
	IsHot          bool      `gorm:"not null;default:false" json:"is_hot"`
	PlayedAt       time.Time `gorm:"not null;index" json:"played_at"`
	VersionID      uint      `gorm:"not null" json:"version_id"`
	CreatedAt      time.Time `json:"created_at"`

	// Relationships
	GameUser GameUser    `gorm:"foreignKey:GameUserID;references:ID" json:"game_user,omitempty"`
	Version  GameVersion `gorm:"foreignKey:VersionID;references:ID" json:"version,omitempty"`
}

func (SkillRecord) TableName() string {
	return "skill_records"
}

type PaginatedSkillRecordsResponse struct {
	Data       []SkillRecord `json:"data"`
	Total      int64         `json:"total"`
	Page       int           `json:"page"`
	PageSize   int           `json:"pageSize"`
	TotalPages int           `json:"totalPages"`
}

// ProfileInfo is the player metadata the bookmarklet scrapes alongside the
// record batch.
type ProfileInfo struct {
	GitadoraID string `json:"gitadoraId"`
	Name       string `json:"name"`
	Title      string `json:"title"`
}

// IngestSkillRecordsRequest is the upload batch. Records are kept raw so that
// one malformed entry can be rejected on its own instead of failing the bind
// for the whole batch.
type IngestSkillRecordsRequest struct {
	Records     []json.RawMessage `json:"records"`
	ProfileInfo ProfileInfo       `json:"profileInfo"`
	Version     string            `json:"version"`
}

// SkillRecordInput is the expected shape of a single raw record. Fields are
// pointers so the validator can tell a missing field from a zero value.
type SkillRecordInput struct {
	SongTitle      *string  `json:"songTitle"`
	InstrumentType *string  `json:"instrumentType"`
	Difficulty     *string  `json:"difficulty"`
	Achievement    *float64 `json:"achievement"`
	SkillScore     *float64 `json:"skillScore"`
	Level          *float64 `json:"level"`
	IsHot          *bool    `json:"isHot"`
	PlayedAt       *string  `json:"playedAt"`
}

// RecordError reports one record that could not be validated or stored. The
// rest of the batch is unaffected.
type RecordError struct {
	Index  int             `json:"index"`
	Reason string          `json:"reason"`
	Record json.RawMessage `json:"record,omitempty"`
}

type IngestSkillRecordsResponse struct {
	Success    bool          `json:"success"`
	Created    int           `json:"created"`
	Errors     []RecordError `json:"errors,omitempty"`
	GameUserID uint          `json:"gameUserId"`
	BatchID    string        `json:"batchId"`
}
