package services

import (
	"fmt"
	"log"
	"time"

	"core/metrics"
	"core/models"
	"core/utils"

	"gorm.io/gorm"
)

type SkillHistoryService struct {
	db    *gorm.DB
	locks *utils.KeyedMutex
}

func NewSkillHistoryService(db *gorm.DB) *SkillHistoryService {
	return &SkillHistoryService{
		db:    db,
		locks: utils.NewKeyedMutex(),
	}
}

// Recompute writes a new skill snapshot for each given instrument, built
// from every record played at or before the batch time. Records reported
// after the batch's nominal time do not leak into this snapshot.
//
// A failed instrument is logged and skipped; the stored records are already
// durable and the other instruments still get their snapshot.
func (s *SkillHistoryService) Recompute(gameUserID uint, instruments []string, at time.Time) {
	for _, instrument := range instruments {
		if err := s.recomputeInstrument(gameUserID, instrument, at); err != nil {
			log.Printf("skill aggregation failed for game user %d instrument %s: %v", gameUserID, instrument, err)
			metrics.AggregationFailuresTotal.Inc()
			continue
		}
		metrics.AggregationsTotal.Inc()
	}
}

func (s *SkillHistoryService) recomputeInstrument(gameUserID uint, instrument string, at time.Time) error {
	// Serialize per (user, instrument): two concurrent uploads for the same
	// player must not interleave the read below with each other's insert.
	unlock := s.locks.Lock(fmt.Sprintf("%d:%s", gameUserID, instrument))
	defer unlock()

	var records []models.SkillRecord
	if err := s.db.
		Where("game_user_id = ? AND instrument_type = ? AND played_at <= ?", gameUserID, instrument, at).
		Find(&records).Error; err != nil {
		return err
	}

	summary := utils.SummarizeSkill(records)

	snapshot := models.SkillHistory{
		GameUserID:     gameUserID,
		InstrumentType: instrument,
		HotSkill:       summary.HotSkill,
		OtherSkill:     summary.OtherSkill,
		TotalSkill:     summary.TotalSkill,
		RecordedAt:     at,
	}

	return s.db.Create(&snapshot).Error
}

// RecomputeAll refreshes the snapshot of every (user, instrument) pair that
// has records. Run nightly by the scheduler so skill graphs keep a point per
// day even for players who did not upload.
func (s *SkillHistoryService) RecomputeAll() error {
	var pairs []struct {
		GameUserID     uint
		InstrumentType string
	}

	if err := s.db.Model(&models.SkillRecord{}).
		Distinct("game_user_id", "instrument_type").
		Find(&pairs).Error; err != nil {
		return err
	}

	at := time.Now().Truncate(time.Minute)
	for _, pair := range pairs {
		s.Recompute(pair.GameUserID, []string{pair.InstrumentType}, at)
	}

	log.Printf("recomputed skill snapshots for %d (user, instrument) pairs", len(pairs))
	return nil
}

// GetHistoryByGameUser returns a player's snapshot trail for one instrument,
// oldest first, ready for charting.
func (s *SkillHistoryService) GetHistoryByGameUser(gameUserID uint, instrument string) ([]models.SkillHistory, error) {
	var history []models.SkillHistory

	query := s.db.Where("game_user_id = ?", gameUserID)
	if instrument != "" {
		query = query.Where("instrument_type = ?", instrument)
	}

	if err := query.Order("recorded_at ASC, id ASC").Find(&history).Error; err != nil {
		return nil, err
	}

	return history, nil
}

// GetRecentSnapshots returns the latest snapshots across all players.
func (s *SkillHistoryService) GetRecentSnapshots(limit int) ([]models.SkillHistory, error) {
	var history []models.SkillHistory

	result := s.db.Order("recorded_at DESC, id DESC").
		Limit(limit).
		Preload("GameUser").
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}

// GetTopByInstrument ranks players by their most recent snapshot for the
// given instrument.
func (s *SkillHistoryService) GetTopByInstrument(instrument string, limit int) ([]models.SkillHistory, error) {
	var history []models.SkillHistory

	latest := s.db.Model(&models.SkillHistory{}).
		Select("MAX(id)").
		Where("instrument_type = ?", instrument).
		Group("game_user_id")

	result := s.db.Where("id IN (?)", latest).
		Order("total_skill DESC").
		Limit(limit).
		Preload("GameUser").
		Find(&history)

	if result.Error != nil {
		return nil, result.Error
	}

	return history, nil
}
