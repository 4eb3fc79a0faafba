package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/craftlink/craftlink-backend/internal/repository"
	"github.com/craftlink/craftlink-backend/internal/usecase/discovery"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the periodic maintenance jobs: expired-session purge and
// idle discovery-session eviction.
type Scheduler struct {
	cron        *cron.Cron
	sessionRepo repository.SessionRepository
	discoveryUC *discovery.UseCase
	maxIdle     time.Duration
	logger      *zap.Logger
}

func New(
	sessionRepo repository.SessionRepository,
	discoveryUC *discovery.UseCase,
	sessionIdleMinutes int,
	logger *zap.Logger,
) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		sessionRepo: sessionRepo,
		discoveryUC: discoveryUC,
		maxIdle:     time.Duration(sessionIdleMinutes) * time.Minute,
		logger:      logger,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(intervalMinutes int) error {
	spec := fmt.Sprintf("@every %dm", intervalMinutes)

	if _, err := s.cron.AddFunc(spec, s.purgeExpiredSessions); err != nil {
		return fmt.Errorf("failed to schedule session purge: %w", err)
	}
	if _, err := s.cron.AddFunc(spec, s.evictIdleDiscovery); err != nil {
		return fmt.Errorf("failed to schedule discovery eviction: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", zap.String("interval", spec))
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) purgeExpiredSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.sessionRepo.DeleteExpired(ctx)
	if err != nil {
		s.logger.Warn("failed to purge expired sessions", zap.Error(err))
		return
	}
	if count > 0 {
		s.logger.Info("purged expired sessions", zap.Int("count", count))
	}
}

func (s *Scheduler) evictIdleDiscovery() {
	s.discoveryUC.EvictIdle(s.maxIdle)
}
