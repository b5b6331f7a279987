package connectivity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"newsreader/internal/config"
	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

var ErrAlreadyPolling = errors.New("connectivity polling already started")

// Monitor owns the process-wide ConnectivityState. Only CheckNow writes it.
type Monitor struct {
	prober      Prober
	timeout     time.Duration
	maxLifetime time.Duration
	logger      *logger.Logger

	mu    sync.RWMutex
	state domain.ConnectivityState

	loopMu sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewMonitor(prober Prober, cfg config.ConnectivityConfig, log *logger.Logger) *Monitor {
	return &Monitor{
		prober:      prober,
		timeout:     cfg.ProbeTimeout,
		maxLifetime: cfg.MaxLifetime,
		logger:      log.WithComponent("connectivity"),
	}
}

// CheckNow probes reachability immediately. Any failure counts as offline.
func (m *Monitor) CheckNow(ctx context.Context) bool {
	online := m.probe(ctx)

	m.mu.Lock()
	m.state = domain.ConnectivityState{IsOnline: online, LastCheckedAt: time.Now()}
	m.mu.Unlock()

	return online
}

func (m *Monitor) probe(ctx context.Context) (online bool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("connectivity probe panicked", "panic", fmt.Sprint(r))
			online = false
		}
	}()

	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	ok, err := m.prober.Probe(ctx)
	if err != nil {
		m.logger.Debug("connectivity probe failed", "error", err)
		return false
	}
	return ok
}

func (m *Monitor) State() domain.ConnectivityState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

func (m *Monitor) IsOnline() bool {
	return m.State().IsOnline
}

// Start polls every interval and calls onChange whenever the observed value
// differs from the previous one. The loop ends on Stop, ctx cancellation or
// after the configured max lifetime.
func (m *Monitor) Start(ctx context.Context, interval time.Duration, onChange func(online bool)) error {
	if interval <= 0 {
		return fmt.Errorf("invalid poll interval %s", interval)
	}

	m.loopMu.Lock()
	defer m.loopMu.Unlock()

	if m.done != nil {
		select {
		case <-m.done:
		default:
			return ErrAlreadyPolling
		}
	}

	var (
		loopCtx context.Context
		cancel  context.CancelFunc
	)
	if m.maxLifetime > 0 {
		loopCtx, cancel = context.WithTimeout(ctx, m.maxLifetime)
	} else {
		loopCtx, cancel = context.WithCancel(ctx)
	}
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.poll(loopCtx, interval, onChange, m.done)

	m.logger.Info("connectivity polling started", "interval", interval.String())
	return nil
}

// Stop ends the poll loop and waits for it to exit.
func (m *Monitor) Stop() {
	m.loopMu.Lock()
	cancel, done := m.cancel, m.done
	m.loopMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (m *Monitor) poll(ctx context.Context, interval time.Duration, onChange func(bool), done chan struct{}) {
	defer close(done)

	previous := m.State()
	if previous.LastCheckedAt.IsZero() {
		previous.IsOnline = m.CheckNow(ctx)
	}
	last := previous.IsOnline

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("connectivity polling stopped")
			return
		case <-ticker.C:
			online := m.CheckNow(ctx)
			if ctx.Err() != nil {
				return
			}
			if online == last {
				continue
			}
			last = online
			m.logger.Info("connectivity changed", "online", online)
			if onChange != nil {
				onChange(online)
			}
		}
	}
}
