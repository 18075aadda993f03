package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	authModels "auth/models"
	authUtils "auth/utils"
	"core/models"
	coreUtils "core/utils"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

var versions = []models.GameVersion{
	{Name: "GITADORA HIGH-VOLTAGE"},
	{Name: "GITADORA FUZZ-UP"},
	{Name: "GITADORA GALAXY WAVE"},
}

var songs = []models.Song{
	{Title: "Timepiece phase II", Artist: "t.s.monogram"},
	{Title: "The Least 100sec", Artist: "Hirofumi Sasaki"},
	{Title: "MODEL DD8", Artist: "Mutsuhiko Izumi"},
	{Title: "A.DOGMA", Artist: "TAG feat. Fernweh"},
	{Title: "Rock to Infinity", Artist: "Mutsuhiko Izumi"},
	{Title: "CHRONO DIVER -NORNIR-", Artist: "L.E.D."},
	{Title: "Chronos", Artist: "96"},
	{Title: "Sonne", Artist: "Hirofumi Sasaki"},
}

// SeedCatalog inserts the game versions and the starter song catalog.
// Existing rows are kept; seeding is safe to repeat.
func (f *Fixtures) SeedCatalog() error {
	log.Println("Seeding game versions and song catalog...")

	for _, version := range versions {
		var existing models.GameVersion
		if err := f.db.Where("name = ?", version.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := f.db.Create(&version).Error; err != nil {
			return fmt.Errorf("failed to seed version %s: %w", version.Name, err)
		}
	}

	for _, song := range songs {
		var existing models.Song
		if err := f.db.Where("title = ?", song.Title).First(&existing).Error; err == nil {
			continue
		}
		if err := f.db.Create(&song).Error; err != nil {
			return fmt.Errorf("failed to seed song %s: %w", song.Title, err)
		}
	}

	log.Println("Catalog seeded")
	return nil
}

// GenerateTestData creates a demo account, a linked game user and a record
// history with skill snapshots, enough to exercise every read endpoint.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	if err := f.SeedCatalog(); err != nil {
		return err
	}

	var version models.GameVersion
	if err := f.db.Order("id DESC").First(&version).Error; err != nil {
		return fmt.Errorf("no game versions seeded: %w", err)
	}

	hashedPassword, err := authUtils.HashPassword("password")
	if err != nil {
		return err
	}

	account := authModels.User{
		Email:    "demo@example.com",
		Username: "demo",
		Password: hashedPassword,
		Enabled:  true,
		Roles:    authModels.GetDefaultRoles(),
	}
	if err := f.db.Create(&account).Error; err != nil {
		return fmt.Errorf("failed to create demo account: %w", err)
	}

	gitadoraID := "DEMO00001"
	gameUser := models.GameUser{
		GitadoraID:   &gitadoraID,
		Name:         "DEMO",
		Title:        "初段",
		SocialUserID: &account.ID,
	}
	if err := f.db.Create(&gameUser).Error; err != nil {
		return fmt.Errorf("failed to create demo game user: %w", err)
	}

	playedAt := time.Now().AddDate(0, 0, -30).Truncate(time.Minute)
	for _, instrument := range []string{models.InstrumentGuitar, models.InstrumentDrum} {
		var stored []models.SkillRecord
		for i, song := range songs {
			record := models.SkillRecord{
				GameUserID:     gameUser.ID,
				SongTitle:      song.Title,
				InstrumentType: instrument,
				Difficulty:     models.Difficulties[i%len(models.Difficulties)],
				Achievement:    60 + rand.Float64()*40,
				SkillScore:     30 + rand.Float64()*50,
				Level:          3 + rand.Float64()*6,
				IsHot:          i%2 == 0,
				PlayedAt:       playedAt,
				VersionID:      version.ID,
			}
			if err := f.db.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to create skill record: %w", err)
			}
			stored = append(stored, record)
		}

		summary := coreUtils.SummarizeSkill(stored)
		snapshot := models.SkillHistory{
			GameUserID:     gameUser.ID,
			InstrumentType: instrument,
			HotSkill:       summary.HotSkill,
			OtherSkill:     summary.OtherSkill,
			TotalSkill:     summary.TotalSkill,
			RecordedAt:     playedAt,
		}
		if err := f.db.Create(&snapshot).Error; err != nil {
			return fmt.Errorf("failed to create skill snapshot: %w", err)
		}
	}

	log.Println("Fixtures generation completed")
	return nil
}

// ClearAllData removes every fixture-managed row. Order matters because of
// the foreign keys.
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing all fixture data...")

	tables := []string{"skill_histories", "skill_records", "game_users", "songs", "game_versions", "users"}
	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	log.Println("All fixture data cleared")
	return nil
}
