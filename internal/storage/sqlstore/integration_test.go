//go:build integration

package sqlstore

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"newsreader/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
	cache     *ArticleCache
	states    *RefreshStateStore
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := Open(DriverPostgres, connStr)
	s.Require().NoError(err)
	s.db = db
	s.cache = NewArticleCache(db, NewTransactionManager(db))
	s.states = NewRefreshStateStore(db)
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM articles")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM comments")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM refresh_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestUpsertMany_PreservesDownloadedFlag() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "x", Title: "X"}}))
	s.Require().NoError(s.cache.SetDownloaded(s.ctx, "x", true))

	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{
		{ID: "x", Title: "X updated"},
		{ID: "y", Title: "Y"},
	}))

	x, err := s.cache.GetByID(s.ctx, "x")
	s.Require().NoError(err)
	s.Equal("X updated", x.Title)
	s.True(x.Downloaded)

	y, err := s.cache.GetByID(s.ctx, "y")
	s.Require().NoError(err)
	s.False(y.Downloaded)
}

func (s *PostgresIntegrationSuite) TestSetDownloaded_NotFound() {
	err := s.cache.SetDownloaded(s.ctx, "missing", true)
	s.ErrorIs(err, domain.ErrArticleNotFound)
}

func (s *PostgresIntegrationSuite) TestDeleteAllNotDownloaded() {
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "a"}, {ID: "b"}}))
	s.Require().NoError(s.cache.SetDownloaded(s.ctx, "a", true))

	n, err := s.cache.DeleteAllNotDownloaded(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	downloaded, err := s.cache.GetDownloaded(s.ctx)
	s.Require().NoError(err)
	s.Len(downloaded, 1)
}

func (s *PostgresIntegrationSuite) TestComments_ReplaceAndEvict() {
	comments := NewCommentCache(s.db, NewTransactionManager(s.db))
	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "a"}}))
	s.Require().NoError(comments.ReplaceForArticle(s.ctx, "a", []domain.Comment{
		{ID: "c1", Content: "first", CreatedAt: "2024-03-01T10:00:00.000Z"},
	}))

	got, err := comments.GetByArticle(s.ctx, "a")
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Equal("a", got[0].ArticleID)

	_, err = s.cache.DeleteAllNotDownloaded(s.ctx)
	s.Require().NoError(err)

	got, err = comments.GetByArticle(s.ctx, "a")
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *PostgresIntegrationSuite) TestHealthCheck() {
	s.NoError(HealthCheck(s.ctx, s.db))
}

func (s *PostgresIntegrationSuite) TestRefreshState() {
	now := time.Now()
	s.Require().NoError(s.states.Update(s.ctx, &domain.RefreshState{
		Source:          "news-api",
		LastRefreshedAt: now,
		TotalRefreshed:  3,
	}))

	got, err := s.states.Get(s.ctx, "news-api")
	s.Require().NoError(err)
	s.Equal(int64(3), got.TotalRefreshed)
	s.WithinDuration(now, got.LastRefreshedAt, time.Second)
}
