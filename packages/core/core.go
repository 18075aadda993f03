package core

import (
	"log"

	"core/cron"
	"core/handlers"
	"core/services"

	authMiddleware "auth/middleware"
	authModels "auth/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	GameUserHandler     *handlers.GameUserHandler
	GameUserService     *services.GameUserService
	SkillRecordHandler  *handlers.SkillRecordHandler
	SkillRecordService  *services.SkillRecordService
	SkillHistoryHandler *handlers.SkillHistoryHandler
	SkillHistoryService *services.SkillHistoryService
	CatalogHandler      *handlers.CatalogHandler
	SongService         *services.SongService
	VersionService      *services.VersionService
	StatsHandler        *handlers.StatsHandler
	StatsService        *services.StatsService
	Scheduler           *cron.Scheduler
	db                  *gorm.DB
}

func NewModule(db *gorm.DB) *Module {
	gameUserService := services.NewGameUserService(db)
	songService := services.NewSongService(db)
	versionService := services.NewVersionService(db)
	skillHistoryService := services.NewSkillHistoryService(db)
	skillRecordService := services.NewSkillRecordService(db, skillHistoryService, songService, versionService)
	statsService := services.NewStatsService(db)

	gameUserHandler := handlers.NewGameUserHandler(gameUserService, skillHistoryService)
	skillRecordHandler := handlers.NewSkillRecordHandler(skillRecordService, gameUserService)
	skillHistoryHandler := handlers.NewSkillHistoryHandler(skillHistoryService)
	catalogHandler := handlers.NewCatalogHandler(songService, versionService)
	statsHandler := handlers.NewStatsHandler(statsService)

	scheduler := cron.NewScheduler(skillHistoryService)

	return &Module{
		GameUserHandler:     gameUserHandler,
		GameUserService:     gameUserService,
		SkillRecordHandler:  skillRecordHandler,
		SkillRecordService:  skillRecordService,
		SkillHistoryHandler: skillHistoryHandler,
		SkillHistoryService: skillHistoryService,
		CatalogHandler:      catalogHandler,
		SongService:         songService,
		VersionService:      versionService,
		StatsHandler:        statsHandler,
		StatsService:        statsService,
		Scheduler:           scheduler,
		db:                  db,
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	// The bookmarklet posts with an optional session; the session only
	// matters for profile linking.
	r.POST("/skill-records", authMiddleware.OptionalJWTMiddleware(), m.SkillRecordHandler.IngestSkillRecords)

	gameUsers := r.Group("/game-users")
	{
		gameUsers.GET("", m.GameUserHandler.GetAllGameUsers)
		gameUsers.GET("/top", m.GameUserHandler.GetTopGameUsers)
		gameUsers.GET("/:id", m.GameUserHandler.GetGameUser)
		gameUsers.GET("/:id/skill-history", m.GameUserHandler.GetSkillHistory)
		gameUsers.GET("/:id/skill-records", m.SkillRecordHandler.GetSkillRecords)
		gameUsers.POST("/:id/skill-records", authMiddleware.JWTMiddleware(), authMiddleware.RequireRole(m.db, authModels.RoleAdmin), m.SkillRecordHandler.IngestForGameUser)
	}

	skillHistory := r.Group("/skill-history")
	{
		skillHistory.GET("/recent", m.SkillHistoryHandler.GetRecentSnapshots)
	}

	r.GET("/songs", m.CatalogHandler.GetSongs)
	r.GET("/versions", m.CatalogHandler.GetVersions)
	r.GET("/stats", m.StatsHandler.GetStats)
}

// StartScheduler starts the nightly snapshot recomputation job.
func (m *Module) StartScheduler() error {
	log.Println("Starting core module scheduler...")
	return m.Scheduler.Start()
}

// StopScheduler stops the cron scheduler.
func (m *Module) StopScheduler() {
	log.Println("Stopping core module scheduler...")
	m.Scheduler.Stop()
}
