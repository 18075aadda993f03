package services

import (
	"encoding/json"
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawRecord(t *testing.T, fields map[string]any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(fields)
	require.NoError(t, err)
	return raw
}

func validRecord(t *testing.T, title string, score float64, isHot bool) json.RawMessage {
	return rawRecord(t, map[string]any{
		"songTitle":      title,
		"instrumentType": "GUITAR",
		"difficulty":     "EXTREME",
		"achievement":    81.25,
		"skillScore":     score,
		"isHot":          isHot,
	})
}

func ingestProfile() models.ProfileInfo {
	return models.ProfileInfo{GitadoraID: "ABC123", Name: "PLAYER", Title: "Beginner"}
}

func TestIngestBatchStoresRecordsAndSnapshot(t *testing.T) {
	svc := newTestServices(t)

	records := []json.RawMessage{
		validRecord(t, "Song A", 52.3, true),
		validRecord(t, "Song B", 41.0, true),
		validRecord(t, "Song C", 30.5, false),
	}

	resolver := ByGitadoraID(svc.users, ingestProfile(), nil)
	result, err := svc.records.IngestBatch(resolver, records, "")
	require.NoError(t, err)

	assert.Equal(t, 3, result.Created)
	assert.Empty(t, result.Errors)
	assert.NotEmpty(t, result.BatchID)
	require.NotNil(t, result.GameUser)

	var stored []models.SkillRecord
	require.NoError(t, svc.db.Order("id ASC").Find(&stored).Error)
	require.Len(t, stored, 3)

	// Every record in the batch shares one minute-precision timestamp.
	assert.Equal(t, stored[0].PlayedAt, stored[1].PlayedAt)
	assert.Zero(t, stored[0].PlayedAt.Second())

	history, err := svc.history.GetHistoryByGameUser(result.GameUser.ID, models.InstrumentGuitar)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 93.3, history[0].HotSkill, 1e-9)
	assert.InDelta(t, 30.5, history[0].OtherSkill, 1e-9)
	assert.InDelta(t, 123.8, history[0].TotalSkill, 1e-9)
}

func TestIngestBatchTolerantOfBadRecords(t *testing.T) {
	svc := newTestServices(t)

	records := []json.RawMessage{
		validRecord(t, "Song A", 52.3, true),
		rawRecord(t, map[string]any{
			"songTitle":      "Song B",
			"instrumentType": "KAZOO",
			"difficulty":     "EXTREME",
			"achievement":    50.0,
			"skillScore":     10.0,
			"isHot":          false,
		}),
		validRecord(t, "Song C", 41.0, false),
		json.RawMessage(`{"songTitle": `),
		validRecord(t, "Song D", 30.0, true),
		validRecord(t, "Song E", 20.0, false),
	}

	resolver := ByGitadoraID(svc.users, ingestProfile(), nil)
	result, err := svc.records.IngestBatch(resolver, records, "")
	require.NoError(t, err)

	assert.Equal(t, 4, result.Created)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 1, result.Errors[0].Index)
	assert.Contains(t, result.Errors[0].Reason, "instrumentType")
	assert.Equal(t, 3, result.Errors[1].Index)
	assert.Contains(t, result.Errors[1].Reason, "malformed record")

	var count int64
	require.NoError(t, svc.db.Model(&models.SkillRecord{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestIngestBatchUnknownVersionAbortsBeforeWrites(t *testing.T) {
	svc := newTestServices(t)

	resolver := ByGitadoraID(svc.users, ingestProfile(), nil)
	_, err := svc.records.IngestBatch(resolver, []json.RawMessage{validRecord(t, "Song A", 52.3, true)}, "NEX+AGE")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)

	var count int64
	require.NoError(t, svc.db.Model(&models.SkillRecord{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestIngestBatchOmittedVersionUsesLatest(t *testing.T) {
	svc := newTestServices(t)
	require.NoError(t, svc.db.Create(&models.GameVersion{Name: "NEWER WAVE"}).Error)

	resolver := ByGitadoraID(svc.users, ingestProfile(), nil)
	result, err := svc.records.IngestBatch(resolver, []json.RawMessage{validRecord(t, "Song A", 52.3, true)}, "")
	require.NoError(t, err)
	require.Equal(t, 1, result.Created)

	var stored models.SkillRecord
	require.NoError(t, svc.db.Preload("Version").First(&stored).Error)
	assert.Equal(t, "NEWER WAVE", stored.Version.Name)
}

func TestIngestBatchAppendsInsteadOfUpdating(t *testing.T) {
	svc := newTestServices(t)

	resolver := ByGitadoraID(svc.users, ingestProfile(), nil)

	first := rawRecord(t, map[string]any{
		"songTitle":      "Song A",
		"instrumentType": "GUITAR",
		"difficulty":     "EXTREME",
		"achievement":    90.0,
		"skillScore":     60.0,
		"isHot":          true,
		"playedAt":       "2026-03-01T12:00:00Z",
	})
	_, err := svc.records.IngestBatch(resolver, []json.RawMessage{first}, "")
	require.NoError(t, err)

	// Same chart, played later, with a worse score.
	second := rawRecord(t, map[string]any{
		"songTitle":      "Song A",
		"instrumentType": "GUITAR",
		"difficulty":     "EXTREME",
		"achievement":    80.0,
		"skillScore":     52.3,
		"isHot":          true,
		"playedAt":       "2026-03-02T12:00:00Z",
	})
	result, err := svc.records.IngestBatch(resolver, []json.RawMessage{second}, "")
	require.NoError(t, err)

	var count int64
	require.NoError(t, svc.db.Model(&models.SkillRecord{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	// The later play supersedes the better one in the snapshot.
	history, err := svc.history.GetHistoryByGameUser(result.GameUser.ID, models.InstrumentGuitar)
	require.NoError(t, err)
	require.NotEmpty(t, history)
	assert.InDelta(t, 52.3, history[len(history)-1].HotSkill, 1e-9)
}

func TestIngestBatchLinksSessionAccount(t *testing.T) {
	svc := newTestServices(t)

	account := uint(42)
	resolver := ByGitadoraID(svc.users, ingestProfile(), &account)
	result, err := svc.records.IngestBatch(resolver, []json.RawMessage{validRecord(t, "Song A", 52.3, true)}, "")
	require.NoError(t, err)

	require.NotNil(t, result.GameUser.SocialUserID)
	assert.Equal(t, account, *result.GameUser.SocialUserID)
}

func TestIngestBatchByGameUserIDUnknownUser(t *testing.T) {
	svc := newTestServices(t)

	resolver := ByGameUserID(svc.users, 999)
	_, err := svc.records.IngestBatch(resolver, []json.RawMessage{validRecord(t, "Song A", 52.3, true)}, "")

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestValidateRecordReasons(t *testing.T) {
	batchTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		raw    string
		reason string
	}{
		{"missing title", `{"instrumentType":"GUITAR","difficulty":"EXTREME","achievement":1,"skillScore":1,"isHot":true}`, "songTitle"},
		{"blank title", `{"songTitle":"   ","instrumentType":"GUITAR","difficulty":"EXTREME","achievement":1,"skillScore":1,"isHot":true}`, "songTitle"},
		{"bad instrument", `{"songTitle":"A","instrumentType":"VOCAL","difficulty":"EXTREME","achievement":1,"skillScore":1,"isHot":true}`, "instrumentType"},
		{"bad difficulty", `{"songTitle":"A","instrumentType":"GUITAR","difficulty":"INSANE","achievement":1,"skillScore":1,"isHot":true}`, "difficulty"},
		{"missing achievement", `{"songTitle":"A","instrumentType":"GUITAR","difficulty":"EXTREME","skillScore":1,"isHot":true}`, "achievement"},
		{"missing skill score", `{"songTitle":"A","instrumentType":"GUITAR","difficulty":"EXTREME","achievement":1,"isHot":true}`, "skillScore"},
		{"missing hot flag", `{"songTitle":"A","instrumentType":"GUITAR","difficulty":"EXTREME","achievement":1,"skillScore":1}`, "isHot"},
		{"bad played at", `{"songTitle":"A","instrumentType":"GUITAR","difficulty":"EXTREME","achievement":1,"skillScore":1,"isHot":true,"playedAt":"yesterday"}`, "playedAt"},
		{"not an object", `[1,2,3]`, "malformed record"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, reason := validateRecord(json.RawMessage(tc.raw), batchTime)
			assert.Nil(t, rec)
			assert.Contains(t, reason, tc.reason)
		})
	}
}

func TestValidateRecordDefaults(t *testing.T) {
	batchTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, reason := validateRecord(json.RawMessage(
		`{"songTitle":" Song A ","instrumentType":"DRUM","difficulty":"MASTER","achievement":95.5,"skillScore":70.1,"isHot":false}`,
	), batchTime)

	require.Empty(t, reason)
	assert.Equal(t, "Song A", rec.songTitle)
	assert.Equal(t, 0.0, rec.level)
	assert.Equal(t, batchTime, rec.playedAt)
}

func TestValidateRecordExplicitPlayedAt(t *testing.T) {
	batchTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec, reason := validateRecord(json.RawMessage(
		`{"songTitle":"Song A","instrumentType":"GUITAR","difficulty":"EXTREME","achievement":1,"skillScore":1,"isHot":true,"playedAt":"2026-02-28T09:30:00Z"}`,
	), batchTime)

	require.Empty(t, reason)
	assert.Equal(t, time.Date(2026, 2, 28, 9, 30, 0, 0, time.UTC), rec.playedAt.UTC())
}

func TestGetRecordsByGameUserFilters(t *testing.T) {
	svc := newTestServices(t)

	resolver := ByGitadoraID(svc.users, ingestProfile(), nil)
	records := []json.RawMessage{
		rawRecord(t, map[string]any{"songTitle": "G", "instrumentType": "GUITAR", "difficulty": "EXTREME", "achievement": 1.0, "skillScore": 1.0, "isHot": true}),
		rawRecord(t, map[string]any{"songTitle": "D", "instrumentType": "DRUM", "difficulty": "MASTER", "achievement": 1.0, "skillScore": 1.0, "isHot": true}),
	}
	result, err := svc.records.IngestBatch(resolver, records, "")
	require.NoError(t, err)

	page, err := svc.records.GetRecordsByGameUser(result.GameUser.ID, models.InstrumentDrum, "", 1, 20)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, "D", page.Data[0].SongTitle)
	assert.Equal(t, int64(1), page.Total)
}
