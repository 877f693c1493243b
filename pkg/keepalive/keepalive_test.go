package keepalive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	p := New(srv.URL, time.Minute)
	assert.Equal(t, http.StatusNoContent, p.Ping(context.Background()))
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits))
}

func TestPing_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	assert.Zero(t, New(url, time.Minute).Ping(context.Background()))
}

func TestStart_WithoutURL(t *testing.T) {
	p := New("", 0)
	assert.Equal(t, 10*time.Minute, p.Interval)
	require.NoError(t, p.Start())
	p.Stop()
}

func TestStart_Schedules(t *testing.T) {
	hits := make(chan struct{}, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case hits <- struct{}{}:
		default:
		}
	}))
	defer srv.Close()

	p := New(srv.URL, time.Second)
	require.NoError(t, p.Start())
	defer p.Stop()

	select {
	case <-hits:
	case <-time.After(5 * time.Second):
		t.Fatal("no keep-alive ping within 5s")
	}
}
