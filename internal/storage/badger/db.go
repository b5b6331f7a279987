package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

const maxConflictRetries = 5

// DB wraps BadgerDB for the local article cache.
type DB struct {
	*badger.DB
}

// New opens a BadgerDB at dbPath. An empty path keeps everything in memory.
func New(dbPath string) (*DB, error) {
	opts := badger.DefaultOptions(dbPath)
	if dbPath == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	return &DB{DB: db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

var errDBClosed = errors.New("badger db closed")

// HealthCheck reports whether the cache still serves reads.
func (db *DB) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if db.IsClosed() {
		return errDBClosed
	}

	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: []byte(articlePrefix)})
		defer it.Close()
		it.Rewind()
		return nil
	})
	if err != nil {
		return fmt.Errorf("read article cache: %w", err)
	}
	return nil
}

// update runs fn in a read-write transaction, retrying when a concurrent
// transaction touched the same keys.
func (db *DB) update(fn func(txn *badger.Txn) error) error {
	var err error
	for range maxConflictRetries {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}
