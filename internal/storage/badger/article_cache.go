package badger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v4"

	"newsreader/internal/domain"
)

const articlePrefix = "article:id:"

func articleKey(id string) []byte {
	return []byte(articlePrefix + id)
}

// ArticleCache stores articles as JSON under article:id:<id>.
type ArticleCache struct {
	db *DB
}

func NewArticleCache(db *DB) *ArticleCache {
	return &ArticleCache{db: db}
}

func (c *ArticleCache) GetAll(ctx context.Context) ([]domain.Article, error) {
	return c.scan(func(domain.Article) bool { return true })
}

func (c *ArticleCache) GetDownloaded(ctx context.Context) ([]domain.Article, error) {
	return c.scan(func(a domain.Article) bool { return a.Downloaded })
}

func (c *ArticleCache) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var article *domain.Article
	err := c.db.View(func(txn *badger.Txn) error {
		var err error
		article, err = getArticle(txn, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return article, nil
}

// UpsertMany writes each article in its own transaction. A stored downloaded
// flag is carried over to the incoming record.
func (c *ArticleCache) UpsertMany(ctx context.Context, articles []domain.Article) error {
	for _, incoming := range articles {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := c.db.update(func(txn *badger.Txn) error {
			record := incoming
			existing, err := getArticle(txn, record.ID)
			switch {
			case errors.Is(err, domain.ErrArticleNotFound):
			case err != nil:
				return err
			default:
				record.Downloaded = record.Downloaded || existing.Downloaded
			}
			return putArticle(txn, &record)
		})
		if err != nil {
			return fmt.Errorf("%w: upsert article %s: %w", domain.ErrCacheWrite, incoming.ID, err)
		}
	}
	return nil
}

func (c *ArticleCache) SetDownloaded(ctx context.Context, id string, downloaded bool) error {
	err := c.db.update(func(txn *badger.Txn) error {
		article, err := getArticle(txn, id)
		if err != nil {
			return err
		}
		article.Downloaded = downloaded
		return putArticle(txn, article)
	})
	if errors.Is(err, domain.ErrArticleNotFound) {
		return err
	}
	if err != nil {
		return fmt.Errorf("%w: set downloaded %s: %w", domain.ErrCacheWrite, id, err)
	}
	return nil
}

// DeleteAllNotDownloaded evicts non-downloaded articles and their comment
// threads in one transaction.
func (c *ArticleCache) DeleteAllNotDownloaded(ctx context.Context) (int, error) {
	var deleted int
	err := c.db.update(func(txn *badger.Txn) error {
		deleted = 0

		opts := badger.DefaultIteratorOptions
		prefix := []byte(articlePrefix)
		it := txn.NewIterator(opts)

		var keys [][]byte
		var evicted []string
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var a domain.Article
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &a)
			}); err != nil {
				it.Close()
				return err
			}
			if !a.Downloaded {
				keys = append(keys, item.KeyCopy(nil))
				evicted = append(evicted, a.ID)
			}
		}
		it.Close()

		for _, id := range evicted {
			if err := deleteComments(txn, id); err != nil {
				return err
			}
		}

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: delete not downloaded: %w", domain.ErrCacheWrite, err)
	}
	return deleted, nil
}

func (c *ArticleCache) scan(keep func(domain.Article) bool) ([]domain.Article, error) {
	articles := []domain.Article{}

	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchSize = 100
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(articlePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var a domain.Article
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &a)
			}); err != nil {
				return err
			}
			if keep(a) {
				articles = append(articles, a)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublicationDate > articles[j].PublicationDate
	})
	return articles, nil
}

func getArticle(txn *badger.Txn, id string) (*domain.Article, error) {
	item, err := txn.Get(articleKey(id))
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}

	var article domain.Article
	if err := item.Value(func(val []byte) error {
		return json.Unmarshal(val, &article)
	}); err != nil {
		return nil, err
	}
	return &article, nil
}

func putArticle(txn *badger.Txn, article *domain.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return err
	}
	return txn.Set(articleKey(article.ID), data)
}
