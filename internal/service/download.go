package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"newsreader/internal/config"
	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

const notifyTimeout = 5 * time.Second

var ErrCoordinatorClosed = errors.New("download coordinator closed")

// EventHandler receives download events on the coordinator's worker goroutine.
// Handlers must not block; they may call Cancel.
type EventHandler func(domain.DownloadEvent)

type subscription struct {
	id      uint64
	handler EventHandler
}

// DownloadCoordinator marks batches of cached articles as downloaded in a
// detached background worker. At most one batch runs at a time.
type DownloadCoordinator struct {
	cache    ArticleCache
	notifier ProgressNotifier
	cfg      config.DownloadConfig
	logger   *logger.Logger

	running atomic.Bool
	// cancelled is set by Cancel before it returns; progress is not
	// delivered once it is.
	cancelled atomic.Bool

	mu     sync.Mutex
	batch  domain.DownloadBatch
	last   *domain.DownloadBatch
	cancel context.CancelFunc
	closed bool
	done   chan struct{}

	subsMu  sync.RWMutex
	subs    []subscription
	nextSub uint64

	baseCtx context.Context
	stop    context.CancelFunc
}

func NewDownloadCoordinator(
	cache ArticleCache,
	notifier ProgressNotifier,
	cfg config.DownloadConfig,
	log *logger.Logger,
) *DownloadCoordinator {
	baseCtx, stop := context.WithCancel(context.Background())
	return &DownloadCoordinator{
		cache:    cache,
		notifier: notifier,
		cfg:      cfg,
		logger:   log.WithComponent("downloads"),
		batch:    domain.DownloadBatch{State: domain.BatchIdle},
		baseCtx:  baseCtx,
		stop:     stop,
	}
}

// StartBatch begins downloading ids in order. It returns
// domain.ErrDownloadInProgress without touching the running batch when one is
// already active.
func (c *DownloadCoordinator) StartBatch(ids []string) (*domain.DownloadBatch, error) {
	if !c.running.CompareAndSwap(false, true) {
		c.logger.Info("download already running, ignoring request", "requested", len(ids))
		return nil, domain.ErrDownloadInProgress
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		c.running.Store(false)
		return nil, ErrCoordinatorClosed
	}

	ctx, cancel := context.WithCancel(c.baseCtx)
	c.batch = domain.DownloadBatch{
		ID:         uuid.NewString(),
		IDs:        slices.Clone(ids),
		TotalCount: len(ids),
		State:      domain.BatchRunning,
		StartedAt:  time.Now(),
	}
	c.cancel = cancel
	c.cancelled.Store(false)
	done := make(chan struct{})
	c.done = done
	snapshot := cloneBatch(c.batch)
	c.mu.Unlock()

	c.logger.Info("download started", "batch_id", snapshot.ID, "total", snapshot.TotalCount)

	go c.run(ctx, snapshot.ID, snapshot.IDs, done)

	return &snapshot, nil
}

// Cancel stops the running batch before its next item. The batch reports
// Cancelled right away and no progress event is delivered after Cancel
// returns. It does not wait for the worker and never rolls back items
// already marked downloaded.
func (c *DownloadCoordinator) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.batch.State != domain.BatchRunning || c.cancel == nil {
		return domain.ErrNoActiveDownload
	}

	c.cancelled.Store(true)
	c.batch.State = domain.BatchCancelled
	c.cancel()
	c.logger.Info("download cancel requested", "batch_id", c.batch.ID)
	return nil
}

// Current returns the active batch, or an idle one.
func (c *DownloadCoordinator) Current() domain.DownloadBatch {
	c.mu.Lock()
	defer c.mu.Unlock()
	return cloneBatch(c.batch)
}

// Last returns the most recently finished batch, if any.
func (c *DownloadCoordinator) Last() *domain.DownloadBatch {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return nil
	}
	last := cloneBatch(*c.last)
	return &last
}

// IsRunning reports whether a batch is active.
func (c *DownloadCoordinator) IsRunning() bool {
	return c.running.Load()
}

// Subscribe registers handler for every future event. The returned function
// detaches it.
func (c *DownloadCoordinator) Subscribe(handler EventHandler) func() {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	c.nextSub++
	id := c.nextSub
	c.subs = append(c.subs, subscription{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() {
			c.subsMu.Lock()
			defer c.subsMu.Unlock()
			c.subs = slices.DeleteFunc(c.subs, func(s subscription) bool { return s.id == id })
		})
	}
}

// Wait blocks until the worker of the latest batch, if any, has exited.
func (c *DownloadCoordinator) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Close cancels any running batch and waits for the worker to exit.
func (c *DownloadCoordinator) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.stop()
	c.Wait()
	return nil
}

func (c *DownloadCoordinator) run(ctx context.Context, batchID string, ids []string, done chan struct{}) {
	defer close(done)

	total := len(ids)
	c.emit(domain.DownloadEvent{Type: domain.EventStarted, BatchID: batchID, Total: total, State: domain.BatchRunning})

	completed := 0
	for _, id := range ids {
		if !c.pace(ctx) {
			c.finish(batchID, domain.BatchCancelled, completed, total, "")
			return
		}

		err := c.downloadItem(ctx, id)
		switch {
		case errors.Is(err, domain.ErrArticleNotFound):
			c.logger.Warn("article not in cache, skipping", "batch_id", batchID, "article_id", id)
			c.mu.Lock()
			c.batch.Skipped = append(c.batch.Skipped, id)
			c.mu.Unlock()
			continue
		case err != nil:
			c.logger.Error("download failed", "batch_id", batchID, "article_id", id, "error", err)
			c.finish(batchID, domain.BatchFailed, completed, total, err.Error())
			return
		}

		completed++
		c.mu.Lock()
		c.batch.CompletedCount = completed
		c.mu.Unlock()

		if ctx.Err() != nil {
			c.finish(batchID, domain.BatchCancelled, completed, total, "")
			return
		}

		c.logger.Debug("article downloaded", "batch_id", batchID, "article_id", id, "completed", completed, "total", total)
		c.emit(domain.DownloadEvent{
			Type:      domain.EventProgress,
			BatchID:   batchID,
			Completed: completed,
			Total:     total,
			State:     domain.BatchRunning,
		})
	}

	if ctx.Err() != nil {
		c.finish(batchID, domain.BatchCancelled, completed, total, "")
		return
	}
	c.finish(batchID, domain.BatchCompleted, completed, total, "")
}

// pace waits out the configured per-item delay. It reports false once the
// batch has been cancelled.
func (c *DownloadCoordinator) pace(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	if c.cfg.ItemDelay <= 0 {
		return true
	}

	timer := time.NewTimer(c.cfg.ItemDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// downloadItem runs detached from batch cancellation so an item in flight
// always finishes.
func (c *DownloadCoordinator) downloadItem(ctx context.Context, id string) error {
	itemCtx := context.WithoutCancel(ctx)
	if c.cfg.ItemTimeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(itemCtx, c.cfg.ItemTimeout)
		defer cancel()
	}

	if _, err := c.cache.GetByID(itemCtx, id); err != nil {
		return fmt.Errorf("load article: %w", err)
	}

	if err := c.cache.SetDownloaded(itemCtx, id, true); err != nil {
		return fmt.Errorf("mark downloaded: %w", err)
	}

	return nil
}

func (c *DownloadCoordinator) finish(batchID string, state domain.BatchState, completed, total int, message string) {
	c.mu.Lock()
	c.batch.State = state
	c.batch.CompletedCount = completed
	c.batch.Error = message
	c.batch.FinishedAt = time.Now()
	last := cloneBatch(c.batch)
	c.last = &last
	c.mu.Unlock()

	eventType := domain.EventCompleted
	switch state {
	case domain.BatchFailed:
		eventType = domain.EventFailed
	case domain.BatchCancelled:
		eventType = domain.EventCancelled
	}

	c.logger.Info("download finished",
		"batch_id", batchID,
		"state", string(state),
		"completed", completed,
		"total", total,
		"skipped", len(last.Skipped),
	)

	c.emit(domain.DownloadEvent{
		Type:      eventType,
		BatchID:   batchID,
		Completed: completed,
		Total:     total,
		State:     state,
		Message:   message,
	})

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.batch = domain.DownloadBatch{State: domain.BatchIdle}
	c.mu.Unlock()

	c.running.Store(false)
}

func (c *DownloadCoordinator) emit(event domain.DownloadEvent) {
	event.At = time.Now()
	suppressed := func() bool {
		return event.Type == domain.EventProgress && c.cancelled.Load()
	}

	if c.notifier != nil && !suppressed() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		if err := c.notifier.Notify(ctx, event); err != nil {
			c.logger.Warn("notify progress", "batch_id", event.BatchID, "type", string(event.Type), "error", err)
		}
		cancel()
	}

	c.subsMu.RLock()
	subs := slices.Clone(c.subs)
	c.subsMu.RUnlock()

	for _, s := range subs {
		if suppressed() {
			return
		}
		s.handler(event)
	}
}

func cloneBatch(b domain.DownloadBatch) domain.DownloadBatch {
	b.IDs = slices.Clone(b.IDs)
	b.Skipped = slices.Clone(b.Skipped)
	return b
}
