package connectivity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsreader/internal/config"
	"newsreader/internal/logger"
)

type fakeProber struct {
	online atomic.Bool
	err    error
	panics bool
	calls  atomic.Int32
}

func (p *fakeProber) Probe(context.Context) (bool, error) {
	p.calls.Add(1)
	if p.panics {
		panic("platform exploded")
	}
	if p.err != nil {
		return false, p.err
	}
	return p.online.Load(), nil
}

func newTestMonitor(p Prober, cfg config.ConnectivityConfig) *Monitor {
	return NewMonitor(p, cfg, logger.NewNop())
}

func TestCheckNow(t *testing.T) {
	p := &fakeProber{}
	p.online.Store(true)
	m := newTestMonitor(p, config.ConnectivityConfig{ProbeTimeout: time.Second})

	assert.True(t, m.CheckNow(context.Background()))
	assert.True(t, m.IsOnline())
	assert.False(t, m.State().LastCheckedAt.IsZero())

	p.online.Store(false)
	assert.False(t, m.CheckNow(context.Background()))
	assert.False(t, m.IsOnline())
}

func TestCheckNow_FailsClosed(t *testing.T) {
	m := newTestMonitor(&fakeProber{err: errors.New("no route")}, config.ConnectivityConfig{})
	assert.False(t, m.CheckNow(context.Background()))

	m = newTestMonitor(&fakeProber{panics: true}, config.ConnectivityConfig{})
	assert.False(t, m.CheckNow(context.Background()))
	assert.False(t, m.IsOnline())
}

func TestStart_ReportsOnlyChanges(t *testing.T) {
	p := &fakeProber{}
	p.online.Store(true)
	m := newTestMonitor(p, config.ConnectivityConfig{})
	require.True(t, m.CheckNow(context.Background()))

	changes := make(chan bool, 10)
	require.NoError(t, m.Start(context.Background(), 5*time.Millisecond, func(online bool) {
		changes <- online
	}))
	defer m.Stop()

	// several ticks with the same value must not notify
	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, changes)

	p.online.Store(false)
	select {
	case online := <-changes:
		assert.False(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("offline transition not reported")
	}

	p.online.Store(true)
	select {
	case online := <-changes:
		assert.True(t, online)
	case <-time.After(2 * time.Second):
		t.Fatal("online transition not reported")
	}

	time.Sleep(30 * time.Millisecond)
	assert.Empty(t, changes)
}

func TestStart_AlreadyPolling(t *testing.T) {
	m := newTestMonitor(&fakeProber{}, config.ConnectivityConfig{})

	require.NoError(t, m.Start(context.Background(), time.Hour, nil))
	assert.ErrorIs(t, m.Start(context.Background(), time.Hour, nil), ErrAlreadyPolling)

	m.Stop()
	require.NoError(t, m.Start(context.Background(), time.Hour, nil))
	m.Stop()
}

func TestStart_InvalidInterval(t *testing.T) {
	m := newTestMonitor(&fakeProber{}, config.ConnectivityConfig{})
	assert.Error(t, m.Start(context.Background(), 0, nil))
}

func TestStart_MaxLifetime(t *testing.T) {
	p := &fakeProber{}
	m := newTestMonitor(p, config.ConnectivityConfig{MaxLifetime: 20 * time.Millisecond})

	require.NoError(t, m.Start(context.Background(), 5*time.Millisecond, nil))

	done := make(chan struct{})
	go func() {
		m.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("poll loop outlived its max lifetime")
	}

	calls := p.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, p.calls.Load())
}

func TestStop_ContextCancel(t *testing.T) {
	m := newTestMonitor(&fakeProber{}, config.ConnectivityConfig{})
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, m.Start(ctx, time.Hour, nil))
	cancel()
	m.Stop()
	m.Stop()
}
