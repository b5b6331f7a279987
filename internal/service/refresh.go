package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

// RefreshService pulls the remote article list into the local cache.
type RefreshService struct {
	source   RemoteSource
	cache    ArticleCache
	state    RefreshStateStore
	validate *validator.Validate
	logger   *logger.Logger
}

func NewRefreshService(
	source RemoteSource,
	cache ArticleCache,
	state RefreshStateStore,
	log *logger.Logger,
) *RefreshService {
	return &RefreshService{
		source:   source,
		cache:    cache,
		state:    state,
		validate: validator.New(),
		logger:   log.WithComponent("refresh").With("source", source.Name()),
	}
}

// Refresh fetches every remote article and upserts it into the cache. Ids that
// were already downloaded keep their flag.
func (s *RefreshService) Refresh(ctx context.Context) (*domain.RefreshStats, error) {
	startTime := time.Now()
	s.logger.Debug("starting refresh")

	articles, err := s.source.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch articles: %w", err)
	}

	s.logger.Info("fetched articles from remote", "count", len(articles))

	preserved, err := s.countDownloaded(ctx, articles)
	if err != nil {
		return nil, fmt.Errorf("read downloaded articles: %w", err)
	}

	if err := s.cache.UpsertMany(ctx, articles); err != nil {
		return nil, fmt.Errorf("store articles: %w", err)
	}

	stats := &domain.RefreshStats{
		Source:              s.source.Name(),
		Fetched:             len(articles),
		Stored:              len(articles),
		PreservedDownloaded: preserved,
	}

	if err := s.updateState(ctx, stats); err != nil {
		return stats, fmt.Errorf("update refresh state: %w", err)
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("refresh completed",
		"stored", stats.Stored,
		"preserved_downloaded", stats.PreservedDownloaded,
		"duration", stats.Duration,
	)

	return stats, nil
}

// Create authors a new article remotely and caches the server's copy.
func (s *RefreshService) Create(ctx context.Context, req domain.CreateArticleRequest) (*domain.Article, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidArticle, err)
	}

	article, err := s.source.Create(ctx, req.Title, req.Content)
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	if err := s.cache.UpsertMany(ctx, []domain.Article{*article}); err != nil {
		return nil, fmt.Errorf("store created article: %w", err)
	}

	s.logger.Info("article created", "article_id", article.ID)
	return article, nil
}

// LastRefresh returns the persisted refresh bookkeeping.
func (s *RefreshService) LastRefresh(ctx context.Context) (*domain.RefreshState, error) {
	return s.state.Get(ctx, s.source.Name())
}

func (s *RefreshService) countDownloaded(ctx context.Context, articles []domain.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}

	downloaded, err := s.cache.GetDownloaded(ctx)
	if err != nil {
		return 0, err
	}

	known := make(map[string]struct{}, len(downloaded))
	for _, a := range downloaded {
		known[a.ID] = struct{}{}
	}

	count := 0
	for _, a := range articles {
		if _, ok := known[a.ID]; ok {
			count++
		}
	}
	return count, nil
}

func (s *RefreshService) updateState(ctx context.Context, stats *domain.RefreshStats) error {
	state, err := s.state.Get(ctx, s.source.Name())
	if err != nil {
		return err
	}

	state.Source = s.source.Name()
	state.LastRefreshedAt = time.Now()
	state.TotalRefreshed += int64(stats.Stored)

	return s.state.Update(ctx, state)
}
