package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

const articleColumns = `id, title, content, publication_date, author_id, created_at, updated_at, version, downloaded`

// ArticleCache stores articles in a SQL table. The downloaded column is only
// ever OR-ed on upsert so a refresh cannot clear it.
type ArticleCache struct {
	db *sqlx.DB
	tx *TransactionManager
}

func NewArticleCache(db *sqlx.DB, tx *TransactionManager) *ArticleCache {
	return &ArticleCache{db: db, tx: tx}
}

func (s *ArticleCache) GetAll(ctx context.Context) ([]domain.Article, error) {
	return s.list(ctx, `SELECT `+articleColumns+` FROM articles ORDER BY publication_date DESC, id`)
}

func (s *ArticleCache) GetDownloaded(ctx context.Context) ([]domain.Article, error) {
	return s.list(ctx, `SELECT `+articleColumns+` FROM articles WHERE downloaded ORDER BY publication_date DESC, id`)
}

func (s *ArticleCache) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var article domain.Article
	query := s.db.Rebind(`SELECT ` + articleColumns + ` FROM articles WHERE id = ?`)

	err := sqlx.GetContext(ctx, executor(ctx, s.db), &article, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get article %s: %w", id, err)
	}
	return &article, nil
}

func (s *ArticleCache) UpsertMany(ctx context.Context, articles []domain.Article) error {
	if len(articles) == 0 {
		return nil
	}

	query := s.db.Rebind(`
		INSERT INTO articles (` + articleColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			publication_date = excluded.publication_date,
			author_id = excluded.author_id,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			version = excluded.version,
			downloaded = articles.downloaded OR excluded.downloaded`)

	return s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := executor(txCtx, s.db)
		for _, a := range articles {
			_, err := exec.ExecContext(txCtx, query,
				a.ID,
				a.Title,
				a.Content,
				a.PublicationDate,
				a.AuthorID,
				a.CreatedAt,
				a.UpdatedAt,
				a.Version,
				a.Downloaded,
			)
			if err != nil {
				return fmt.Errorf("%w: upsert article %s: %w", domain.ErrCacheWrite, a.ID, err)
			}
		}
		return nil
	})
}

func (s *ArticleCache) SetDownloaded(ctx context.Context, id string, downloaded bool) error {
	query := s.db.Rebind(`UPDATE articles SET downloaded = ? WHERE id = ?`)

	res, err := executor(ctx, s.db).ExecContext(ctx, query, downloaded, id)
	if err != nil {
		return fmt.Errorf("%w: set downloaded %s: %w", domain.ErrCacheWrite, id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: set downloaded %s: %w", domain.ErrCacheWrite, id, err)
	}
	if n == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// DeleteAllNotDownloaded evicts every article not marked downloaded together
// with its cached comments.
func (s *ArticleCache) DeleteAllNotDownloaded(ctx context.Context) (int, error) {
	var deleted int64
	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		exec := executor(txCtx, s.db)

		if _, err := exec.ExecContext(txCtx,
			`DELETE FROM comments WHERE article_id IN (SELECT id FROM articles WHERE NOT downloaded)`,
		); err != nil {
			return err
		}

		res, err := exec.ExecContext(txCtx, `DELETE FROM articles WHERE NOT downloaded`)
		if err != nil {
			return err
		}
		deleted, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("%w: delete not downloaded: %w", domain.ErrCacheWrite, err)
	}
	return int(deleted), nil
}

func (s *ArticleCache) list(ctx context.Context, query string) ([]domain.Article, error) {
	articles := []domain.Article{}
	if err := sqlx.SelectContext(ctx, executor(ctx, s.db), &articles, query); err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}
