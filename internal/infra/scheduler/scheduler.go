package scheduler

import (
	"context"
	"fmt"
	"time"

	"homework_notification_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PollScheduler drives the Poller on a fixed interval. SkipIfStillRunning
// keeps the single-threaded ordering guarantee: a slow cycle makes the next
// tick a no-op instead of overlapping.
type PollScheduler struct {
	cronEngine *cron.Cron
	poller     *app.Poller
	logger     *logrus.Logger
	interval   time.Duration
}

func NewPollScheduler(poller *app.Poller, logger *logrus.Logger, interval time.Duration) *PollScheduler {
	return &PollScheduler{
		cronEngine: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		poller:     poller,
		logger:     logger,
		interval:   interval,
	}
}

// Start runs one poll cycle immediately, then schedules the rest.
func (s *PollScheduler) Start() error {
	s.logger.Info("Starting poll scheduler...")

	s.runOnce()

	spec := fmt.Sprintf("@every %s", s.interval)
	if _, err := s.cronEngine.AddFunc(spec, s.runOnce); err != nil {
		return fmt.Errorf("could not schedule poll job: %w", err)
	}

	s.cronEngine.Start()
	s.logger.Infof("Poll scheduler started, polling every %s.", s.interval)
	return nil
}

func (s *PollScheduler) runOnce() {
	// A cycle that outlives the interval would be skipped by the next tick
	// anyway, so the interval doubles as the per-cycle deadline.
	ctx, cancel := context.WithTimeout(context.Background(), s.interval)
	defer cancel()
	s.poller.PollOnce(ctx)
}

func (s *PollScheduler) Stop() {
	s.logger.Info("Stopping poll scheduler...")
	ctx := s.cronEngine.Stop() // Stops scheduling new runs, waits for the running job.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Poll scheduler gracefully stopped.")
}
