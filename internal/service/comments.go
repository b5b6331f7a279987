package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
)

// CommentService reads article comment threads through the local cache.
type CommentService struct {
	source   CommentSource
	cache    CommentCache
	validate *validator.Validate
	logger   *logger.Logger
}

func NewCommentService(source CommentSource, cache CommentCache, log *logger.Logger) *CommentService {
	return &CommentService{
		source:   source,
		cache:    cache,
		validate: validator.New(),
		logger:   log.WithComponent("comments"),
	}
}

// Comments returns the thread of articleID. Offline reads only the cache.
// Online fetches the thread and replaces the cached copy; when the remote call
// fails the cached thread is served instead.
func (s *CommentService) Comments(ctx context.Context, articleID string, offline bool) ([]domain.Comment, error) {
	if offline {
		return s.cache.GetByArticle(ctx, articleID)
	}

	comments, err := s.source.Comments(ctx, articleID)
	if err != nil {
		if !errors.Is(err, domain.ErrNetworkUnavailable) && !errors.Is(err, domain.ErrRemoteRequest) {
			return nil, fmt.Errorf("fetch comments: %w", err)
		}
		s.logger.Warn("serving cached comments", "article_id", articleID, "error", err)
		return s.cache.GetByArticle(ctx, articleID)
	}

	if err := s.cache.ReplaceForArticle(ctx, articleID, comments); err != nil {
		s.logger.Warn("failed to cache comments", "article_id", articleID, "error", err)
	}
	return comments, nil
}

func (s *CommentService) CreateComment(ctx context.Context, req domain.CreateCommentRequest) (*domain.Comment, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidComment, err)
	}

	comment, err := s.source.CreateComment(ctx, req.ArticleID, req.Content)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	if err := s.cache.Upsert(ctx, *comment); err != nil {
		return nil, fmt.Errorf("store created comment: %w", err)
	}

	s.logger.Info("comment created", "article_id", comment.ArticleID, "comment_id", comment.ID)
	return comment, nil
}
