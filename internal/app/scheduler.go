package app

import (
	"context"
	"fmt"
	"time"

	"github.com/AstraLuma/catfind/internal/domain/projects"
	"github.com/AstraLuma/catfind/internal/pkg/config"
	"github.com/AstraLuma/catfind/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler periodically re-indexes projects whose inventories have not been
// refreshed recently.
type Scheduler struct {
	cron         *cron.Cron
	indexService projects.IndexService
	staleAfter   time.Duration
	logger       logger.Logger
}

// NewScheduler creates a Scheduler from the index settings. The cron spec in
// ReindexSchedule drives the job; an empty spec yields a scheduler whose
// Start is a no-op.
func NewScheduler(indexService projects.IndexService, settings *config.IndexSettings, logger logger.Logger) (*Scheduler, error) {
	s := &Scheduler{
		indexService: indexService,
		staleAfter:   time.Duration(settings.StaleAfterHours) * time.Hour,
		logger:       logger,
	}

	if settings.ReindexSchedule == "" {
		return s, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(settings.ReindexSchedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid reindex schedule %q: %w", settings.ReindexSchedule, err)
	}
	s.cron = c
	return s, nil
}

// Start begins the periodic re-index job.
func (s *Scheduler) Start() {
	if s.cron == nil {
		return
	}
	s.cron.Start()
	s.logger.Info("Reindex scheduler started, stale after ", s.staleAfter)
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
}

func (s *Scheduler) run() {
	cutoff := time.Now().UTC().Add(-s.staleAfter)
	count, err := s.indexService.ReindexStale(context.Background(), cutoff)
	if err != nil {
		s.logger.Error("Scheduled re-index failed: ", err)
		return
	}
	s.logger.Info("Scheduled re-index refreshed ", count, " projects")
}
