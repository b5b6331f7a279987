package publisher

import (
	"context"
	"errors"

	"newsreader/internal/domain"
	"newsreader/internal/service"
)

// Multi fans events out to several notifiers. A failing sink does not stop
// the others; their errors are joined.
type Multi struct {
	notifiers []service.ProgressNotifier
}

func NewMulti(notifiers ...service.ProgressNotifier) *Multi {
	return &Multi{notifiers: notifiers}
}

func (m *Multi) Notify(ctx context.Context, event domain.DownloadEvent) error {
	var errs []error
	for _, n := range m.notifiers {
		if err := n.Notify(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m *Multi) Close() error {
	var errs []error
	for i := len(m.notifiers) - 1; i >= 0; i-- {
		if err := m.notifiers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
