// Package scheduler keeps the forecast fresh by re-running the fetch
// cycle for the configured city on a cron spec.
package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/xiaoheizi112/Weather-Forecast/internal/service"
	"go.uber.org/zap"
)

type Scheduler struct {
	service  *service.Service
	logger   *zap.Logger
	city     string
	cronSpec string
	cron     *cron.Cron
}

func NewScheduler(svc *service.Service, city, cronSpec string, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		service:  svc,
		logger:   logger,
		city:     city,
		cronSpec: cronSpec,
	}
}

// Start registers the refresh job and runs it once immediately so the
// first request does not wait for the first tick.
func (s *Scheduler) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cronSpec, s.runRefresh); err != nil {
		return err
	}
	s.cron.Start()

	s.logger.Info("Scheduler started",
		zap.String("spec", s.cronSpec),
		zap.String("city", s.city))

	go s.runRefresh()
	return nil
}

func (s *Scheduler) runRefresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	startTime := time.Now()
	err := s.service.Refresh(ctx, s.city)
	switch {
	case errors.Is(err, service.ErrFetchInFlight):
		s.logger.Debug("Skipping scheduled refresh, fetch already in flight")
	case err != nil:
		s.logger.Error("Scheduled refresh failed",
			zap.String("city", s.city),
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
	default:
		s.logger.Info("Scheduled refresh completed",
			zap.Duration("duration", time.Since(startTime)))
	}
}

// Stop halts the cron loop; a refresh already running is not aborted.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
}
