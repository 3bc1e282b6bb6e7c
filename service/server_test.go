package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"faredash/app/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerGracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	addr := ln.Addr().String()

	var served atomic.Int32
	srv := NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Simulate work.
		time.Sleep(100 * time.Millisecond)
		served.Add(1)
		w.WriteHeader(http.StatusOK)
	}), ServerOptions{ShutdownTimeout: time.Second, Logger: logging.Discard()})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	// Start a request, then cancel while it is in flight.
	respCh := make(chan int, 1)
	go func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/", addr))
		if err != nil {
			respCh <- 0
			return
		}
		resp.Body.Close()
		respCh <- resp.StatusCode
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, http.StatusOK, <-respCh)
	assert.Equal(t, int32(1), served.Load())
}

func TestServerRunListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)
	defer ln.Close()

	srv := NewServer(http.NotFoundHandler(), ServerOptions{Addr: ln.Addr().String(), Logger: logging.Discard()})
	err = srv.Run(context.Background())
	assert.ErrorContains(t, err, "failed to listen")
}
