package services

import (
	"fmt"
	"strings"
	"testing"

	"core/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database seeded with one game
// version, so ingestion's version fallback has a current release to land on.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.GameUser{},
		&models.GameVersion{},
		&models.Song{},
		&models.SkillRecord{},
		&models.SkillHistory{},
	))

	require.NoError(t, db.Create(&models.GameVersion{Name: "GALAXY WAVE"}).Error)

	return db
}

type testServices struct {
	db      *gorm.DB
	users   *GameUserService
	records *SkillRecordService
	history *SkillHistoryService
	songs   *SongService
	version *VersionService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()

	db := setupTestDB(t)
	users := NewGameUserService(db)
	history := NewSkillHistoryService(db)
	songs := NewSongService(db)
	version := NewVersionService(db)
	records := NewSkillRecordService(db, history, songs, version)

	return &testServices{
		db:      db,
		users:   users,
		records: records,
		history: history,
		songs:   songs,
		version: version,
	}
}
