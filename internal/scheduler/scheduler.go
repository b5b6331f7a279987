package scheduler

import (
	"context"
	"time"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

const refreshTimeout = 5 * time.Minute

// Refresher defines the interface for refresh operations.
type Refresher interface {
	Refresh(ctx context.Context) (*domain.RefreshStats, error)
}

// OnlineFunc reports whether a refresh may hit the network right now.
type OnlineFunc func() bool

type Scheduler struct {
	refresher Refresher
	interval  time.Duration
	online    OnlineFunc
	logger    *logger.Logger
}

func NewScheduler(refresher Refresher, interval time.Duration, online OnlineFunc, log *logger.Logger) *Scheduler {
	if online == nil {
		online = func() bool { return true }
	}
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		online:    online,
		logger:    log.WithComponent("scheduler"),
	}
}

// Start refreshes once and then every interval until ctx is done. Ticks that
// find the device offline are skipped.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval.String())

	s.runRefresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runRefresh(ctx)
		}
	}
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	if !s.online() {
		s.logger.Debug("offline, skipping refresh")
		return
	}

	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	if _, err := s.refresher.Refresh(refreshCtx); err != nil {
		s.logger.Error("refresh failed", "error", err)
	}
}
