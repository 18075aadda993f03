package services

import (
	"fmt"
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedGameUser(t *testing.T, svc *testServices, gitadoraID string) *models.GameUser {
	t.Helper()
	user, err := svc.users.ResolveByGitadoraID(gitadoraID, "PLAYER", "", nil)
	require.NoError(t, err)
	return user
}

func seedRecord(t *testing.T, svc *testServices, userID uint, title string, instrument string, score float64, isHot bool, playedAt time.Time) {
	t.Helper()
	require.NoError(t, svc.db.Create(&models.SkillRecord{
		GameUserID:     userID,
		SongTitle:      title,
		InstrumentType: instrument,
		Difficulty:     models.DifficultyExtreme,
		Achievement:    80.0,
		SkillScore:     score,
		IsHot:          isHot,
		PlayedAt:       playedAt,
		VersionID:      1,
	}).Error)
}

func TestRecomputeTruncatesToTop25(t *testing.T) {
	svc := newTestServices(t)
	user := seedGameUser(t, svc, "ABC123")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= 30; i++ {
		seedRecord(t, svc, user.ID, fmt.Sprintf("Hot %d", i), models.InstrumentDrum, float64(i), true, at)
	}

	svc.history.Recompute(user.ID, []string{models.InstrumentDrum}, at)

	history, err := svc.history.GetHistoryByGameUser(user.ID, models.InstrumentDrum)
	require.NoError(t, err)
	require.Len(t, history, 1)

	want := 0.0
	for i := 6; i <= 30; i++ {
		want += float64(i)
	}
	assert.InDelta(t, want, history[0].HotSkill, 1e-9)
	assert.Equal(t, 0.0, history[0].OtherSkill)
}

func TestRecomputeExcludesRecordsAfterSnapshotTime(t *testing.T) {
	svc := newTestServices(t)
	user := seedGameUser(t, svc, "ABC123")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, svc, user.ID, "Song A", models.InstrumentGuitar, 40.0, true, at)
	seedRecord(t, svc, user.ID, "Song B", models.InstrumentGuitar, 99.0, true, at.Add(time.Hour))

	svc.history.Recompute(user.ID, []string{models.InstrumentGuitar}, at)

	history, err := svc.history.GetHistoryByGameUser(user.ID, models.InstrumentGuitar)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.InDelta(t, 40.0, history[0].HotSkill, 1e-9)
	assert.True(t, at.Equal(history[0].RecordedAt))
}

func TestRecomputeAppendsSnapshots(t *testing.T) {
	svc := newTestServices(t)
	user := seedGameUser(t, svc, "ABC123")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, svc, user.ID, "Song A", models.InstrumentGuitar, 40.0, true, at)

	svc.history.Recompute(user.ID, []string{models.InstrumentGuitar}, at)
	svc.history.Recompute(user.ID, []string{models.InstrumentGuitar}, at.Add(time.Hour))

	history, err := svc.history.GetHistoryByGameUser(user.ID, models.InstrumentGuitar)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestRecomputeAllCoversEveryPair(t *testing.T) {
	svc := newTestServices(t)
	alice := seedGameUser(t, svc, "ABC123")
	bob := seedGameUser(t, svc, "XYZ789")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, svc, alice.ID, "Song A", models.InstrumentGuitar, 40.0, true, at)
	seedRecord(t, svc, alice.ID, "Song B", models.InstrumentDrum, 30.0, true, at)
	seedRecord(t, svc, bob.ID, "Song A", models.InstrumentGuitar, 50.0, true, at)

	require.NoError(t, svc.history.RecomputeAll())

	var count int64
	require.NoError(t, svc.db.Model(&models.SkillHistory{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestGetTopByInstrumentRanksByLatestSnapshot(t *testing.T) {
	svc := newTestServices(t)
	alice := seedGameUser(t, svc, "ABC123")
	bob := seedGameUser(t, svc, "XYZ789")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, svc, alice.ID, "Song A", models.InstrumentGuitar, 40.0, true, at)
	seedRecord(t, svc, bob.ID, "Song A", models.InstrumentGuitar, 70.0, true, at)

	svc.history.Recompute(alice.ID, []string{models.InstrumentGuitar}, at)
	svc.history.Recompute(bob.ID, []string{models.InstrumentGuitar}, at)

	// Alice improves; only her newest snapshot should count.
	seedRecord(t, svc, alice.ID, "Song B", models.InstrumentGuitar, 50.0, true, at.Add(time.Hour))
	svc.history.Recompute(alice.ID, []string{models.InstrumentGuitar}, at.Add(time.Hour))

	top, err := svc.history.GetTopByInstrument(models.InstrumentGuitar, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, alice.ID, top[0].GameUserID)
	assert.InDelta(t, 90.0, top[0].TotalSkill, 1e-9)
	assert.Equal(t, bob.ID, top[1].GameUserID)
}

func TestConcurrentRecomputeSameUserInstrument(t *testing.T) {
	svc := newTestServices(t)
	user := seedGameUser(t, svc, "ABC123")

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedRecord(t, svc, user.ID, "Song A", models.InstrumentGuitar, 40.0, true, at)

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			svc.history.Recompute(user.ID, []string{models.InstrumentGuitar}, at)
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	// Every recompute lands as its own snapshot; none is lost.
	history, err := svc.history.GetHistoryByGameUser(user.ID, models.InstrumentGuitar)
	require.NoError(t, err)
	assert.Len(t, history, 4)
}
