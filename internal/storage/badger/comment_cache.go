package badger

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"newsreader/internal/domain"
)

const commentPrefix = "comment:article:"

func commentArticlePrefix(articleID string) []byte {
	return []byte(commentPrefix + articleID + ":")
}

func commentKey(articleID, id string) []byte {
	return append(commentArticlePrefix(articleID), id...)
}

// CommentCache stores comments as JSON under comment:article:<article>:<id>.
type CommentCache struct {
	db *DB
}

func NewCommentCache(db *DB) *CommentCache {
	return &CommentCache{db: db}
}

func (c *CommentCache) GetByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	comments := []domain.Comment{}

	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := commentArticlePrefix(articleID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var comment domain.Comment
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &comment)
			}); err != nil {
				return err
			}
			comments = append(comments, comment)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list comments of %s: %w", articleID, err)
	}

	sort.SliceStable(comments, func(i, j int) bool {
		if comments[i].CreatedAt != comments[j].CreatedAt {
			return comments[i].CreatedAt < comments[j].CreatedAt
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

func (c *CommentCache) ReplaceForArticle(ctx context.Context, articleID string, comments []domain.Comment) error {
	err := c.db.update(func(txn *badger.Txn) error {
		if err := deleteComments(txn, articleID); err != nil {
			return err
		}
		for _, comment := range comments {
			comment.ArticleID = articleID
			if err := putComment(txn, &comment); err != nil {
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

func (c *CommentCache) Upsert(ctx context.Context, comment domain.Comment) error {
	err := c.db.update(func(txn *badger.Txn) error {
		return putComment(txn, &comment)
	})
	if err != nil {
		return fmt.Errorf("%w: upsert comment %s: %w", domain.ErrCacheWrite, comment.ID, err)
	}
	return nil
}

func putComment(txn *badger.Txn, comment *domain.Comment) error {
	data, err := json.Marshal(comment)
	if err != nil {
		return err
	}
	return txn.Set(commentKey(comment.ArticleID, comment.ID), data)
}

func deleteComments(txn *badger.Txn, articleID string) error {
	opts := badger.DefaultIteratorOptions
	opts.PrefetchValues = false
	it := txn.NewIterator(opts)

	var keys [][]byte
	prefix := commentArticlePrefix(articleID)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		keys = append(keys, it.Item().KeyCopy(nil))
	}
	it.Close()

	for _, key := range keys {
		if err := txn.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
