package connectivity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var wifi = []Interface{
	{Name: "lo", Up: true, Loopback: true, HasAddr: true},
	{Name: "wlan0", Up: true, HasAddr: true},
}

func newTestProber(url string, ifaces []Interface, err error) *NetProber {
	p := NewNetProber(url, time.Second)
	p.interfaces = func() ([]Interface, error) { return ifaces, err }
	return p
}

func TestNetProber_Validated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ok, err := newTestProber(srv.URL, wifi, nil).Probe(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNetProber_CaptivePortal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://portal.example.com/login", http.StatusFound)
	}))
	defer srv.Close()

	ok, _ := newTestProber(srv.URL, wifi, nil).Probe(context.Background())
	assert.False(t, ok)
}

func TestNetProber_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ok, err := newTestProber(srv.URL, wifi, nil).Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNetProber_NoInterface(t *testing.T) {
	onlyLoopback := []Interface{{Name: "lo", Up: true, Loopback: true, HasAddr: true}}
	ok, err := newTestProber("http://unused.invalid", onlyLoopback, nil).Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	down := []Interface{{Name: "eth0", Up: false, HasAddr: true}}
	ok, err = newTestProber("http://unused.invalid", down, nil).Probe(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNetProber_InterfaceError(t *testing.T) {
	ok, err := newTestProber("http://unused.invalid", nil, errors.New("permission denied")).Probe(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}
