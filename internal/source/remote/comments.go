package remote

import (
	"context"
	"strings"

	"newsreader/internal/domain"
)

// Comments returns the thread of an article, oldest first as served.
func (s *Source) Comments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	var items []CommentDTO

	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("newsId", articleID).
		SetResult(&items).
		Get(newsCommentsPath)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	comments := make([]domain.Comment, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		comments = append(comments, s.transformComment(item, articleID))
	}
	return comments, nil
}

func (s *Source) CreateComment(ctx context.Context, articleID, content string) (*domain.Comment, error) {
	var created CommentDTO

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(createCommentRequest{NewsID: articleID, Comment: content}).
		SetResult(&created).
		Post(commentsPath)
	if err := checkResponse(resp, err); err != nil {
		return nil, err
	}

	comment := s.transformComment(created, articleID)
	return &comment, nil
}

func (s *Source) transformComment(item CommentDTO, articleID string) domain.Comment {
	comment := item.toDomain()
	if comment.ArticleID == "" {
		comment.ArticleID = articleID
	}
	if comment.UserName == "" {
		comment.UserName = "Anonymous"
	}
	comment.Content = s.sanitize.Sanitize(strings.TrimSpace(comment.Content))
	return comment
}
