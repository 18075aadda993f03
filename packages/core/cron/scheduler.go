package cron

import (
	"log"

	"core/services"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron           *cron.Cron
	historyService *services.SkillHistoryService
}

func NewScheduler(historyService *services.SkillHistoryService) *Scheduler {
	c := cron.New(cron.WithSeconds(), cron.WithLogger(cron.VerbosePrintfLogger(log.Default())))

	return &Scheduler{
		cron:           c,
		historyService: historyService,
	}
}

// Start schedules the nightly snapshot recomputation. Running it daily keeps
// one skill data point per day even for players who did not upload.
func (s *Scheduler) Start() error {
	log.Println("Starting cron scheduler...")

	// At 04:00 every day, well outside upload peak hours.
	_, err := s.cron.AddFunc("0 0 4 * * *", s.runRecompute)
	if err != nil {
		log.Printf("Error scheduling snapshot recomputation job: %v", err)
		return err
	}

	s.cron.Start()
	log.Println("Cron scheduler started successfully")

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	log.Println("Stopping cron scheduler...")
	s.cron.Stop()
	log.Println("Cron scheduler stopped")
}

func (s *Scheduler) runRecompute() {
	log.Println("Running skill snapshot recomputation job...")

	if err := s.historyService.RecomputeAll(); err != nil {
		log.Printf("Error during snapshot recomputation: %v", err)
		return
	}

	log.Println("Skill snapshot recomputation completed successfully")
}

// RunNow manually triggers the recomputation job (useful for testing).
func (s *Scheduler) RunNow() {
	log.Println("Manually triggering snapshot recomputation job...")
	s.runRecompute()
}
