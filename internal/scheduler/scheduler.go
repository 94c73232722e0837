package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/SawSimonLinn/BizBoost/internal/config"
	"github.com/SawSimonLinn/BizBoost/internal/repository/mongodb"
	"github.com/SawSimonLinn/BizBoost/internal/service/portfolio"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron         *cron.Cron
	portfolioSvc *portfolio.Service
	repo         mongodb.Repository
	cfg          config.RolloverConfig
	logger       *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.RolloverConfig, portfolioSvc *portfolio.Service, repo mongodb.Repository, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:         c,
		portfolioSvc: portfolioSvc,
		repo:         repo,
		cfg:          cfg,
		logger:       logger,
	}
}

// Start starts the scheduler.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	// Default schedule fires just after midnight on the first of each month.
	if _, err := s.cron.AddFunc(s.cfg.CronSchedule, s.rolloverPortfolios); err != nil {
		s.logger.Error("failed to schedule monthly rollover", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

// rolloverPortfolios appends the freshly started month's period to every stored
// portfolio. EnsureCurrentPeriod is idempotent, so overlapping runs are safe.
func (s *Scheduler) rolloverPortfolios() {
	s.logger.Info("running monthly period rollover")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	userIDs, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		s.logger.Error("failed to list portfolios for rollover", zap.Error(err))
		return
	}

	now := time.Now()
	var added int
	for _, userID := range userIDs {
		ok, err := s.portfolioSvc.EnsureCurrentPeriod(ctx, userID, now)
		if err != nil {
			s.logger.Error("failed to roll over portfolio", zap.Error(err), zap.String("user_id", userID))
			continue
		}
		if ok {
			added++
		}
	}

	s.logger.Info("monthly rollover finished",
		zap.Int("portfolios", len(userIDs)),
		zap.Int("periods_added", added))
}
