package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"newsreader/internal/domain"
)

type RefreshStateStore struct {
	db *sqlx.DB
}

func NewRefreshStateStore(db *sqlx.DB) *RefreshStateStore {
	return &RefreshStateStore{db: db}
}

func (s *RefreshStateStore) Get(ctx context.Context, source string) (*domain.RefreshState, error) {
	var state domain.RefreshState
	query := s.db.Rebind(`
		SELECT source, last_refreshed_at, total_refreshed
		FROM refresh_state
		WHERE source = ?`)

	err := sqlx.GetContext(ctx, executor(ctx, s.db), &state, query, source)
	if errors.Is(err, sql.ErrNoRows) {
		// never refreshed yet
		return &domain.RefreshState{Source: source}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *RefreshStateStore) Update(ctx context.Context, state *domain.RefreshState) error {
	query := s.db.Rebind(`
		INSERT INTO refresh_state (source, last_refreshed_at, total_refreshed)
		VALUES (?, ?, ?)
		ON CONFLICT (source) DO UPDATE SET
			last_refreshed_at = excluded.last_refreshed_at,
			total_refreshed = excluded.total_refreshed`)

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		state.Source,
		state.LastRefreshedAt.UTC(),
		state.TotalRefreshed,
	)
	return err
}
