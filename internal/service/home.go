package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

type Refresher interface {
	Refresh(ctx context.Context) (*domain.RefreshStats, error)
}

type Downloader interface {
	StartBatch(ids []string) (*domain.DownloadBatch, error)
	Cancel() error
	Subscribe(handler EventHandler) func()
}

// HomeState is what the article list screen renders.
type HomeState struct {
	Articles              []domain.Article `json:"articles"`
	IsLoading             bool             `json:"is_loading"`
	ErrorMessage          string           `json:"error_message,omitempty"`
	DownloadProgress      *domain.Progress `json:"download_progress"`
	DownloadStatusMessage string           `json:"download_status_message,omitempty"`
	OfflineMode           bool             `json:"offline_mode"`
}

// HomeModel holds the home screen state and turns repository errors into
// user-visible messages.
type HomeModel struct {
	cache      ArticleCache
	refresher  Refresher
	downloader Downloader
	logger     *logger.Logger

	mu    sync.RWMutex
	state HomeState

	watchersMu sync.Mutex
	watchers   map[chan HomeState]struct{}

	detach func()
}

func NewHomeModel(cache ArticleCache, refresher Refresher, downloader Downloader, log *logger.Logger) *HomeModel {
	m := &HomeModel{
		cache:      cache,
		refresher:  refresher,
		downloader: downloader,
		logger:     log.WithComponent("home"),
		watchers:   make(map[chan HomeState]struct{}),
	}
	m.detach = downloader.Subscribe(m.onDownloadEvent)
	return m
}

// Snapshot returns a copy of the current state.
func (m *HomeModel) Snapshot() HomeState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneHomeState(m.state)
}

// Subscribe returns a channel that always holds the latest state. Slow readers
// only miss intermediate states.
func (m *HomeModel) Subscribe() (<-chan HomeState, func()) {
	ch := make(chan HomeState, 1)

	m.mu.RLock()
	m.watchersMu.Lock()
	ch <- cloneHomeState(m.state)
	m.watchers[ch] = struct{}{}
	m.watchersMu.Unlock()
	m.mu.RUnlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.watchersMu.Lock()
			delete(m.watchers, ch)
			m.watchersMu.Unlock()
		})
	}
}

// Refresh reloads the article list. In offline mode only downloaded articles
// are shown; online it refreshes from the remote first and falls back to the
// cache when that fails.
func (m *HomeModel) Refresh(ctx context.Context, offlineMode bool) error {
	m.update(func(s *HomeState) {
		s.IsLoading = true
		s.OfflineMode = offlineMode
		s.ErrorMessage = ""
	})

	var refreshErr error
	if !offlineMode {
		if _, err := m.refresher.Refresh(ctx); err != nil {
			m.logger.Warn("refresh failed", "error", err)
			refreshErr = err
		}
	}

	articles, err := m.load(ctx, offlineMode)
	if err != nil {
		m.logger.Error("load cached articles", "error", err)
		refreshErr = errors.Join(refreshErr, err)
	}

	m.update(func(s *HomeState) {
		s.IsLoading = false
		if err == nil {
			s.Articles = articles
		}
		if refreshErr != nil {
			s.ErrorMessage = UserMessage(refreshErr)
		}
	})

	return refreshErr
}

func (m *HomeModel) DownloadOne(id string) error {
	return m.startDownload([]string{id})
}

func (m *HomeModel) DownloadAll(visibleIDs []string) error {
	return m.startDownload(visibleIDs)
}

func (m *HomeModel) CancelDownload() error {
	if err := m.downloader.Cancel(); err != nil {
		return err
	}
	m.update(func(s *HomeState) {
		s.DownloadStatusMessage = "Cancelling download"
	})
	return nil
}

// Close detaches the model from the download coordinator.
func (m *HomeModel) Close() {
	m.detach()
}

func (m *HomeModel) startDownload(ids []string) error {
	if _, err := m.downloader.StartBatch(ids); err != nil {
		if errors.Is(err, domain.ErrDownloadInProgress) {
			m.update(func(s *HomeState) {
				s.DownloadStatusMessage = "A download is already running"
			})
		}
		return err
	}
	return nil
}

func (m *HomeModel) onDownloadEvent(event domain.DownloadEvent) {
	switch event.Type {
	case domain.EventStarted:
		m.update(func(s *HomeState) {
			s.DownloadProgress = &domain.Progress{Completed: 0, Total: event.Total}
			s.DownloadStatusMessage = fmt.Sprintf("Downloading %d articles", event.Total)
		})
		return
	case domain.EventProgress:
		m.update(func(s *HomeState) {
			s.DownloadProgress = &domain.Progress{Completed: event.Completed, Total: event.Total}
		})
		return
	}

	var message string
	switch event.Type {
	case domain.EventCompleted:
		message = fmt.Sprintf("Downloaded %d of %d articles", event.Completed, event.Total)
	case domain.EventFailed:
		message = "Download failed: " + event.Message
	case domain.EventCancelled:
		message = "Download cancelled"
	}

	offline := m.Snapshot().OfflineMode
	articles, err := m.load(context.Background(), offline)
	if err != nil {
		m.logger.Error("reload after download", "batch_id", event.BatchID, "error", err)
	}

	m.update(func(s *HomeState) {
		s.DownloadProgress = nil
		s.DownloadStatusMessage = message
		if err == nil {
			s.Articles = articles
		}
	})
}

func (m *HomeModel) load(ctx context.Context, offlineMode bool) ([]domain.Article, error) {
	if offlineMode {
		return m.cache.GetDownloaded(ctx)
	}
	return m.cache.GetAll(ctx)
}

// update publishes while still holding mu so watchers observe states in the
// order they were written. Lock order is mu, then watchersMu.
func (m *HomeModel) update(fn func(*HomeState)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.state)
	snapshot := cloneHomeState(m.state)

	m.watchersMu.Lock()
	defer m.watchersMu.Unlock()
	for ch := range m.watchers {
		select {
		case <-ch:
		default:
		}
		ch <- snapshot
	}
}

// UserMessage renders err for display.
func UserMessage(err error) string {
	var remoteErr *domain.RemoteError
	switch {
	case errors.As(err, &remoteErr) && remoteErr.Message != "":
		return remoteErr.Message
	case errors.Is(err, domain.ErrNetworkUnavailable):
		return "No internet connection"
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Please log in again"
	default:
		return err.Error()
	}
}

func cloneHomeState(s HomeState) HomeState {
	s.Articles = slices.Clone(s.Articles)
	if s.DownloadProgress != nil {
		p := *s.DownloadProgress
		s.DownloadProgress = &p
	}
	return s
}
