package badger

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/dgraph-io/badger/v4"

	"newsreader/internal/domain"
)

type RefreshStateStore struct {
	db *DB
}

func NewRefreshStateStore(db *DB) *RefreshStateStore {
	return &RefreshStateStore{db: db}
}

func refreshKey(source string) []byte {
	return []byte("refresh:state:" + source)
}

func (s *RefreshStateStore) Get(ctx context.Context, source string) (*domain.RefreshState, error) {
	state := &domain.RefreshState{Source: source}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(refreshKey(source))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, state)
		})
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

func (s *RefreshStateStore) Update(ctx context.Context, state *domain.RefreshState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.db.update(func(txn *badger.Txn) error {
		return txn.Set(refreshKey(state.Source), data)
	})
}
