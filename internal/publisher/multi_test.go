package publisher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"newsreader/internal/domain"
	"newsreader/internal/logger"
	"newsreader/internal/service/mocks"
)

func TestMulti_NotifiesAllSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockProgressNotifier(ctrl)
	second := mocks.NewMockProgressNotifier(ctrl)

	event := domain.DownloadEvent{Type: domain.EventProgress, BatchID: "b1", Completed: 1, Total: 3}
	first.EXPECT().Notify(gomock.Any(), event).Return(errors.New("broker down"))
	second.EXPECT().Notify(gomock.Any(), event).Return(nil)

	err := NewMulti(first, second).Notify(context.Background(), event)

	assert.ErrorContains(t, err, "broker down")
}

func TestMulti_ClosesInReverseOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockProgressNotifier(ctrl)
	second := mocks.NewMockProgressNotifier(ctrl)

	gomock.InOrder(
		second.EXPECT().Close().Return(nil),
		first.EXPECT().Close().Return(nil),
	)

	assert.NoError(t, NewMulti(first, second).Close())
}

func TestLogNotifier(t *testing.T) {
	n := NewLogNotifier(logger.NewNop())
	for _, typ := range []domain.EventType{
		domain.EventStarted, domain.EventProgress, domain.EventCompleted,
		domain.EventCancelled, domain.EventFailed,
	} {
		assert.NoError(t, n.Notify(context.Background(), domain.DownloadEvent{Type: typ}))
	}
	assert.NoError(t, n.Close())
}

func TestNewEventMessage(t *testing.T) {
	running := newEventMessage(domain.DownloadEvent{Type: domain.EventProgress, Completed: 2, Total: 5, State: domain.BatchRunning})
	assert.Equal(t, &domain.Progress{Completed: 2, Total: 5}, running.Progress)

	done := newEventMessage(domain.DownloadEvent{Type: domain.EventCompleted, Completed: 5, Total: 5, State: domain.BatchCompleted})
	assert.Nil(t, done.Progress)
	assert.False(t, done.Timestamp.IsZero())
}
