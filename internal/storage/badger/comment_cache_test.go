package badger

import (
	"newsreader/internal/domain"
)

func (s *BadgerSuite) TestComments_ReplaceOrdersByCreation() {
	comments := NewCommentCache(s.db)

	s.Require().NoError(comments.ReplaceForArticle(s.ctx, "a", []domain.Comment{
		{ID: "2", CreatedAt: "2024-03-02T10:00:00.000Z"},
		{ID: "1", CreatedAt: "2024-03-01T10:00:00.000Z"},
	}))
	s.Require().NoError(comments.Upsert(s.ctx, domain.Comment{ID: "x", ArticleID: "ab"}))

	got, err := comments.GetByArticle(s.ctx, "a")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("1", got[0].ID)
	s.Equal("a", got[0].ArticleID)
	s.Equal("2", got[1].ID)

	s.Require().NoError(comments.ReplaceForArticle(s.ctx, "a", nil))
	got, err = comments.GetByArticle(s.ctx, "a")
	s.Require().NoError(err)
	s.Empty(got)

	other, err := comments.GetByArticle(s.ctx, "ab")
	s.Require().NoError(err)
	s.Len(other, 1)
}

func (s *BadgerSuite) TestComments_EvictedWithArticle() {
	comments := NewCommentCache(s.db)

	s.Require().NoError(s.cache.UpsertMany(s.ctx, []domain.Article{{ID: "keep"}, {ID: "drop"}}))
	s.Require().NoError(s.cache.SetDownloaded(s.ctx, "keep", true))
	s.Require().NoError(comments.Upsert(s.ctx, domain.Comment{ID: "c1", ArticleID: "keep", Content: "stays"}))
	s.Require().NoError(comments.Upsert(s.ctx, domain.Comment{ID: "c2", ArticleID: "drop", Content: "goes"}))

	n, err := s.cache.DeleteAllNotDownloaded(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, n)

	dropped, err := comments.GetByArticle(s.ctx, "drop")
	s.Require().NoError(err)
	s.Empty(dropped)

	kept, err := comments.GetByArticle(s.ctx, "keep")
	s.Require().NoError(err)
	s.Require().Len(kept, 1)
	s.Equal("stays", kept[0].Content)
}
