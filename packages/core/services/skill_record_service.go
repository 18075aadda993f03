package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"core/metrics"
	"core/models"
	"core/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRecordService struct {
	db             *gorm.DB
	historyService *SkillHistoryService
	songService    *SongService
	versionService *VersionService
}

func NewSkillRecordService(db *gorm.DB, historyService *SkillHistoryService, songService *SongService, versionService *VersionService) *SkillRecordService {
	return &SkillRecordService{
		db:             db,
		historyService: historyService,
		songService:    songService,
		versionService: versionService,
	}
}

// IngestResult summarizes one upload batch. Errors holds the per-record
// validation and storage failures; the batch as a whole still counts as
// successful once identity and version resolution went through.
type IngestResult struct {
	BatchID  string
	GameUser *models.GameUser
	Created  int
	Errors   []models.RecordError
}

// normalizedRecord is a validated raw record with defaults applied.
type normalizedRecord struct {
	index          int
	songTitle      string
	instrumentType string
	difficulty     string
	achievement    float64
	skillScore     float64
	level          float64
	isHot          bool
	playedAt       time.Time
}

// IngestBatch runs the ingestion pipeline: resolve identity, resolve the
// game version, validate each raw record, store the accepted ones as new
// immutable rows, then recompute a skill snapshot for every instrument the
// batch touched.
//
// Identity and version failures abort before any write. Everything after
// that is per-record or per-instrument best effort: a bad record or a failed
// insert is collected and the rest of the batch continues.
func (s *SkillRecordService) IngestBatch(resolver IdentityResolver, records []json.RawMessage, versionName string) (*IngestResult, error) {
	batchID := uuid.NewString()

	user, err := resolver.Resolve()
	if err != nil {
		return nil, err
	}

	version, err := s.versionService.ResolveForIngest(versionName)
	if err != nil {
		return nil, err
	}

	// Minute precision so every record in the batch shares one timestamp
	// unless the scrape carried an explicit playedAt.
	batchTime := time.Now().Truncate(time.Minute)

	accepted, recordErrors := s.validateRecords(records, batchTime)

	metrics.BatchesTotal.Inc()
	metrics.RecordsRejectedTotal.WithLabelValues(metrics.StageValidation).Add(float64(len(recordErrors)))

	s.warnUnknownTitles(batchID, accepted)

	created := 0
	var stored []models.SkillRecord
	for _, rec := range accepted {
		row := models.SkillRecord{
			GameUserID:     user.ID,
			SongTitle:      rec.songTitle,
			InstrumentType: rec.instrumentType,
			Difficulty:     rec.difficulty,
			Achievement:    rec.achievement,
			SkillScore:     rec.skillScore,
			Level:          rec.level,
			IsHot:          rec.isHot,
			PlayedAt:       rec.playedAt,
			VersionID:      version.ID,
		}

		if err := s.db.Create(&row).Error; err != nil {
			log.Printf("[batch %s] failed to store record %d (%s): %v", batchID, rec.index, rec.songTitle, err)
			metrics.RecordsRejectedTotal.WithLabelValues(metrics.StageStorage).Inc()
			recordErrors = append(recordErrors, models.RecordError{
				Index:  rec.index,
				Reason: fmt.Sprintf("failed to store record: %v", err),
				Record: records[rec.index],
			})
			continue
		}

		created++
		stored = append(stored, row)
	}

	metrics.RecordsStoredTotal.Add(float64(created))

	if len(stored) > 0 {
		s.historyService.Recompute(user.ID, utils.TouchedInstruments(stored), batchTime)
	}

	log.Printf("[batch %s] ingested %d/%d records for game user %d", batchID, created, len(records), user.ID)

	return &IngestResult{
		BatchID:  batchID,
		GameUser: user,
		Created:  created,
		Errors:   recordErrors,
	}, nil
}

// validateRecords classifies each raw record independently: either it parses
// into a normalized record or it is rejected with a reason. A malformed
// record never aborts the batch and is never partially accepted.
func (s *SkillRecordService) validateRecords(records []json.RawMessage, batchTime time.Time) ([]normalizedRecord, []models.RecordError) {
	var accepted []normalizedRecord
	var rejected []models.RecordError

	for i, raw := range records {
		rec, reason := validateRecord(raw, batchTime)
		if reason != "" {
			rejected = append(rejected, models.RecordError{
				Index:  i,
				Reason: reason,
				Record: raw,
			})
			continue
		}
		rec.index = i
		accepted = append(accepted, *rec)
	}

	return accepted, rejected
}

func validateRecord(raw json.RawMessage, batchTime time.Time) (*normalizedRecord, string) {
	var in models.SkillRecordInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Sprintf("malformed record: %v", err)
	}

	if in.SongTitle == nil || strings.TrimSpace(*in.SongTitle) == "" {
		return nil, "songTitle must be a non-empty string"
	}
	if in.InstrumentType == nil || !models.IsValidInstrument(*in.InstrumentType) {
		return nil, "instrumentType must be one of GUITAR, BASS, DRUM, OPEN"
	}
	if in.Difficulty == nil || !models.IsValidDifficulty(*in.Difficulty) {
		return nil, "difficulty must be one of BASIC, ADVANCED, EXTREME, MASTER"
	}
	if in.Achievement == nil || !isFinite(*in.Achievement) {
		return nil, "achievement must be a finite number"
	}
	if in.SkillScore == nil || !isFinite(*in.SkillScore) {
		return nil, "skillScore must be a finite number"
	}
	if in.IsHot == nil {
		return nil, "isHot must be a boolean"
	}

	rec := &normalizedRecord{
		songTitle:      strings.TrimSpace(*in.SongTitle),
		instrumentType: *in.InstrumentType,
		difficulty:     *in.Difficulty,
		achievement:    *in.Achievement,
		skillScore:     *in.SkillScore,
		isHot:          *in.IsHot,
		playedAt:       batchTime,
	}

	if in.Level != nil {
		if !isFinite(*in.Level) {
			return nil, "level must be a finite number"
		}
		rec.level = *in.Level
	}

	if in.PlayedAt != nil {
		playedAt, err := time.Parse(time.RFC3339, *in.PlayedAt)
		if err != nil {
			return nil, "playedAt must be an ISO-8601 timestamp"
		}
		rec.playedAt = playedAt
	}

	return rec, ""
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// warnUnknownTitles checks accepted titles against the song catalog. The
// catalog is advisory: a miss is logged for operators and the record is
// stored regardless.
func (s *SkillRecordService) warnUnknownTitles(batchID string, accepted []normalizedRecord) {
	if len(accepted) == 0 {
		return
	}

	seen := make(map[string]bool)
	var titles []string
	for _, rec := range accepted {
		if !seen[rec.songTitle] {
			seen[rec.songTitle] = true
			titles = append(titles, rec.songTitle)
		}
	}

	known, err := s.songService.FindByTitles(titles)
	if err != nil {
		log.Printf("[batch %s] song catalog lookup failed: %v", batchID, err)
		return
	}

	knownTitles := make(map[string]bool, len(known))
	for _, song := range known {
		knownTitles[song.Title] = true
	}

	for _, title := range titles {
		if !knownTitles[title] {
			log.Printf("[batch %s] song title not in catalog: %q", batchID, title)
		}
	}
}

// GetRecordsByGameUser lists a player's stored records, newest first, with
// optional instrument and difficulty filters.
func (s *SkillRecordService) GetRecordsByGameUser(gameUserID uint, instrument string, difficulty string, page int, pageSize int) (*models.PaginatedSkillRecordsResponse, error) {
	var recordList []models.SkillRecord
	var total int64

	baseQuery := s.db.Model(&models.SkillRecord{}).Where("game_user_id = ?", gameUserID)
	if instrument != "" {
		baseQuery = baseQuery.Where("instrument_type = ?", instrument)
	}
	if difficulty != "" {
		baseQuery = baseQuery.Where("difficulty = ?", difficulty)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (page - 1) * pageSize

	if err := baseQuery.Order("played_at DESC, id DESC").
		Preload("Version").
		Offset(offset).
		Limit(pageSize).
		Find(&recordList).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &models.PaginatedSkillRecordsResponse{
		Data:       recordList,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}
