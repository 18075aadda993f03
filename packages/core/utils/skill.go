package utils

import (
	"sort"

	"core/models"
)

// SkillWindowSize is the game's own ranking rule: the best 25 hot charts and
// the best 25 other charts define total skill.
const SkillWindowSize = 25

type SkillSummary struct {
	HotSkill   float64
	OtherSkill float64
	TotalSkill float64
}

type chartKey struct {
	SongTitle      string
	InstrumentType string
	Difficulty     string
	IsHot          bool
}

// LatestPerChart reduces a record history to the current view: for every
// (song, instrument, difficulty, hot) chart, only the most recently played
// record counts. A newer report supersedes an older one even when its score
// is lower. Records sharing the same played_at resolve to the higher record
// id, so same-batch duplicates pick the later insert.
func LatestPerChart(records []models.SkillRecord) []models.SkillRecord {
	latest := make(map[chartKey]models.SkillRecord)

	for _, record := range records {
		key := chartKey{
			SongTitle:      record.SongTitle,
			InstrumentType: record.InstrumentType,
			Difficulty:     record.Difficulty,
			IsHot:          record.IsHot,
		}

		current, ok := latest[key]
		if !ok {
			latest[key] = record
			continue
		}

		if record.PlayedAt.After(current.PlayedAt) ||
			(record.PlayedAt.Equal(current.PlayedAt) && record.ID > current.ID) {
			latest[key] = record
		}
	}

	result := make([]models.SkillRecord, 0, len(latest))
	for _, record := range latest {
		result = append(result, record)
	}
	return result
}

// SummarizeSkill computes the hot/other/total skill numbers from a raw record
// history: reduce to latest-per-chart, split the charts into the hot pool and
// the other pool, and sum the top 25 skill scores of each pool.
func SummarizeSkill(records []models.SkillRecord) SkillSummary {
	current := LatestPerChart(records)

	var hot, other []models.SkillRecord
	for _, record := range current {
		if record.IsHot {
			hot = append(hot, record)
		} else {
			other = append(other, record)
		}
	}

	summary := SkillSummary{
		HotSkill:   sumTopScores(hot, SkillWindowSize),
		OtherSkill: sumTopScores(other, SkillWindowSize),
	}
	summary.TotalSkill = summary.HotSkill + summary.OtherSkill
	return summary
}

// sumTopScores sums the n highest skill scores in the pool. Equal scores are
// ordered by record id so the truncation point is deterministic.
func sumTopScores(pool []models.SkillRecord, n int) float64 {
	sort.Slice(pool, func(i, j int) bool {
		if pool[i].SkillScore != pool[j].SkillScore {
			return pool[i].SkillScore > pool[j].SkillScore
		}
		return pool[i].ID < pool[j].ID
	})

	if len(pool) > n {
		pool = pool[:n]
	}

	var total float64
	for _, record := range pool {
		total += record.SkillScore
	}
	return total
}

// TouchedInstruments returns the distinct instrument categories present in
// the given records, in first-seen order.
func TouchedInstruments(records []models.SkillRecord) []string {
	seen := make(map[string]bool)
	var instruments []string
	for _, record := range records {
		if !seen[record.InstrumentType] {
			seen[record.InstrumentType] = true
			instruments = append(instruments, record.InstrumentType)
		}
	}
	return instruments
}
