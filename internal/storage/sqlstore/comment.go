package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

const commentColumns = `id, article_id, user_id, user_name, user_email, content, created_at, updated_at`

type CommentCache struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewCommentCache(db *sqlx.DB, tx *TransactionManager) *CommentCache {
	return &CommentCache{db: db, tx: tx}
}

func (s *CommentCache) GetByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	query := s.db.Rebind(`SELECT ` + commentColumns + ` FROM comments WHERE article_id = ? ORDER BY created_at, id`)

	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &comments, query, articleID); err != nil {
		return nil, fmt.Errorf("list comments of %s: %w", articleID, err)
	}
	return comments, nil
}

// ReplaceForArticle swaps the cached thread of articleID for comments in one
// transaction.
func (s *CommentCache) ReplaceForArticle(ctx context.Context, articleID string, comments []domain.Comment) error {
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		del := s.db.Rebind(`DELETE FROM comments WHERE article_id = ?`)
		if _, err := executor(txCtx, s.db).ExecContext(txCtx, del, articleID); err != nil {
			return err
		}

		for _, c := range comments {
			c.ArticleID = articleID
			if err := s.insert(txCtx, c); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: replace comments of %s: %w", domain.ErrCacheWrite, articleID, err)
	}
	return nil
}

func (s *CommentCache) Upsert(ctx context.Context, comment domain.Comment) error {
	if err := s.insert(ctx, comment); err != nil {
		return fmt.Errorf("%w: upsert comment %s: %w", domain.ErrCacheWrite, comment.ID, err)
	}
	return nil
}

func (s *CommentCache) insert(ctx context.Context, c domain.Comment) error {
	query := s.db.Rebind(`
		INSERT INTO comments (` + commentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			article_id = excluded.article_id,
			user_id = excluded.user_id,
			user_name = excluded.user_name,
			user_email = excluded.user_email,
			content = excluded.content,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`)

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		c.ID,
		c.ArticleID,
		c.UserID,
		c.UserName,
		c.UserEmail,
		c.Content,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}
