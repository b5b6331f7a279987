package badger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"newsreader/internal/domain"
)

type BadgerSuite struct {
	suite.Suite
	ctx    context.Context
	db     *DB
	cache  *ArticleCache
	states *RefreshStateStore
}

func (s *BadgerSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := New(s.T().TempDir())
	s.Require().NoError(err)
	s.db = db
	s.cache = NewArticleCache(db)
	s.states = NewRefreshStateStore(db)
}

func (s *BadgerSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func TestBadgerSuite(t *testing.T) {
	suite.Run(t, new(BadgerSuite))
}

func (s *BadgerSuite) TestHealthCheck() {
	s.NoError(s.db.HealthCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(s.db.HealthCheck(ctx), context.Canceled)
}

func (s *BadgerSuite) TestRefreshKeepsDownloadedFlag() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "x", Title: "X"}}))
	s.Require().NoError(s.cache.SetDownloaded(s.ctx, "x", true))

	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{
		{ID: "x", Title: "X updated", Version: 1},
		{ID: "y", Title: "Y"},
	}))

	x, err := s.cache.GetByID(s.ctx, "x")
	s.Require().NoError(err)
	s.Equal("X updated", x.Title)
	s.Equal(1, x.Version)
	s.True(x.Downloaded)

	y, err := s.cache.GetByID(s.ctx, "y")
	s.Require().NoError(err)
	s.False(y.Downloaded)
}

func (s *BadgerSuite) TestUpsertMany_FlagMonotonic() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "a"}}))
	s.Require().NoError(s.cache.SetDownloaded(s.ctx, "a", true))

	for i := range 5 {
		s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "a", Title: fmt.Sprint(i), Downloaded: false}}))
		a, err := s.cache.GetByID(s.ctx, "a")
		s.Require().NoError(err)
		s.True(a.Downloaded)
	}
}

func (s *BadgerSuite) TestSetDownloaded_NotFoundLeavesCacheUnchanged() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "a"}}))

	err := s.cache.SetDownloaded(s.ctx, "ghost", true)
	s.ErrorIs(err, domain.ErrArticleNotFound)

	all, err := s.cache.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal("a", all[0].ID)
	s.False(all[0].Downloaded)
}

func (s *BadgerSuite) TestGetAllOrdersNewestFirst() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{
		{ID: "old", PublicationDate: "2023-01-01T00:00:00.000Z"},
		{ID: "new", PublicationDate: "2024-06-01T00:00:00.000Z"},
	}))

	all, err := s.cache.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("new", all[0].ID)
}

func (s *BadgerSuite) TestGetDownloadedAndDelete() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "a"}, {ID: "b"}, {ID: "c"}}))
	s.Require().NoError(s.cache.SetDownloaded(s.ctx, "a", true))

	downloaded, err := s.cache.GetDownloaded(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(downloaded, 1)

	n, err := s.cache.DeleteAllNotDownloaded(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)

	_, err = s.cache.GetByID(s.ctx, "b")
	s.ErrorIs(err, domain.ErrArticleNotFound)

	all, err := s.cache.GetAll(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *BadgerSuite) TestConcurrentRefreshAndDownload() {
	articles := make([]domain.Article, 10)
	for i := range articles {
		articles[i] = domain.Article{ID: fmt.Sprintf("id-%d", i)}
	}
	s.Require().NoError(s.cache.UpsertMany(s.ctx, articles))

	var wg sync.WaitGroup
	for _, a := range articles {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.NoError(s.cache.SetDownloaded(s.ctx, a.ID, true))
		}()
		go func() {
			defer wg.Done()
			s.NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: a.ID, Title: "refreshed"}}))
		}()
	}
	wg.Wait()

	downloaded, err := s.cache.GetDownloaded(s.ctx)
	s.Require().NoError(err)
	s.Len(downloaded, len(articles))
}

func (s *BadgerSuite) TestRefreshState() {
	state, err := s.states.Get(s.ctx, "news-api")
	s.Require().NoError(err)
	s.Zero(state.TotalRefreshed)

	now := time.Now()
	s.Require().NoError(s.states.Update(s.ctx, &domain.RefreshState{Source: "news-api", LastRefreshedAt: now, TotalRefreshed: 12}))

	got, err := s.states.Get(s.ctx, "news-api")
	s.Require().NoError(err)
	s.Equal(int64(12), got.TotalRefreshed)
	s.WithinDuration(now, got.LastRefreshedAt, time.Millisecond)
}

func TestNew_InMemory(t *testing.T) {
	db, err := New("")
	if err != nil {
		t.Fatalf("open in-memory badger: %v", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := db.HealthCheck(context.Background()); err == nil {
		t.Fatal("expected health check to fail after close")
	}
}
