package utils

import (
	"fmt"
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
)

func record(id uint, title string, score float64, isHot bool, playedAt time.Time) models.SkillRecord {
	return models.SkillRecord{
		ID:             id,
		SongTitle:      title,
		InstrumentType: models.InstrumentGuitar,
		Difficulty:     models.DifficultyExtreme,
		SkillScore:     score,
		IsHot:          isHot,
		PlayedAt:       playedAt,
	}
}

func TestLatestPerChartKeepsMostRecentPlay(t *testing.T) {
	earlier := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(24 * time.Hour)

	records := []models.SkillRecord{
		record(1, "Song A", 60.0, true, earlier),
		record(2, "Song A", 52.3, true, later),
	}

	current := LatestPerChart(records)

	assert.Len(t, current, 1)
	assert.Equal(t, uint(2), current[0].ID)
	assert.Equal(t, 52.3, current[0].SkillScore)
}

func TestLatestPerChartSamePlayedAtPrefersHigherID(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []models.SkillRecord{
		record(7, "Song A", 40.0, true, at),
		record(8, "Song A", 41.0, true, at),
		record(5, "Song A", 45.0, true, at),
	}

	current := LatestPerChart(records)

	assert.Len(t, current, 1)
	assert.Equal(t, uint(8), current[0].ID)
}

func TestLatestPerChartDistinguishesHotFlag(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []models.SkillRecord{
		record(1, "Song A", 40.0, true, at),
		record(2, "Song A", 35.0, false, at),
	}

	assert.Len(t, LatestPerChart(records), 2)
}

func TestSummarizeSkillTakesTop25PerPool(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var records []models.SkillRecord
	for i := 1; i <= 30; i++ {
		records = append(records, record(uint(i), fmt.Sprintf("Hot %d", i), float64(i), true, at))
	}

	summary := SummarizeSkill(records)

	// Top 25 of 1..30 is 6..30.
	want := 0.0
	for i := 6; i <= 30; i++ {
		want += float64(i)
	}
	assert.Equal(t, want, summary.HotSkill)
	assert.Equal(t, 0.0, summary.OtherSkill)
	assert.Equal(t, want, summary.TotalSkill)
}

func TestSummarizeSkillSumsHotAndOtherPools(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []models.SkillRecord{
		record(1, "Hot A", 50.0, true, at),
		record(2, "Hot B", 40.0, true, at),
		record(3, "Other A", 30.0, false, at),
	}

	summary := SummarizeSkill(records)

	assert.Equal(t, 90.0, summary.HotSkill)
	assert.Equal(t, 30.0, summary.OtherSkill)
	assert.Equal(t, 120.0, summary.TotalSkill)
}

func TestSummarizeSkillUsesLatestNotBestPlay(t *testing.T) {
	earlier := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := earlier.Add(time.Hour)

	records := []models.SkillRecord{
		record(1, "Song A", 60.0, true, earlier),
		record(2, "Song A", 52.3, true, later),
	}

	summary := SummarizeSkill(records)

	assert.Equal(t, 52.3, summary.HotSkill)
}

func TestSumTopScoresEqualScoresTruncateByID(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var pool []models.SkillRecord
	for i := 1; i <= 4; i++ {
		pool = append(pool, record(uint(i), fmt.Sprintf("Song %d", i), 10.0, true, at))
	}

	// With n=3 the cut falls inside the tie; ids 1..3 survive.
	assert.Equal(t, 30.0, sumTopScores(pool, 3))
}

func TestTouchedInstrumentsDedupesInFirstSeenOrder(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	records := []models.SkillRecord{
		{InstrumentType: models.InstrumentDrum, PlayedAt: at},
		{InstrumentType: models.InstrumentGuitar, PlayedAt: at},
		{InstrumentType: models.InstrumentDrum, PlayedAt: at},
	}

	assert.Equal(t, []string{models.InstrumentDrum, models.InstrumentGuitar}, TouchedInstruments(records))
}
