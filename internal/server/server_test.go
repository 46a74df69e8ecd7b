package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, ctx context.Context, stop chan os.Signal) (string, <-chan error) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	})

	done := make(chan error, 1)
	go func() { done <- serve(ctx, ln, handler, stop) }()
	return "http://" + ln.Addr().String(), done
}

func waitDone(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestServe_StopsOnSignal(t *testing.T) {
	stop := make(chan os.Signal, 1)
	base, done := startServer(t, context.Background(), stop)

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "pong"
	}, 2*time.Second, 20*time.Millisecond)

	stop <- syscall.SIGTERM
	assert.NoError(t, waitDone(t, done))
}

func TestServe_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	_, done := startServer(t, ctx, make(chan os.Signal, 1))

	cancel()
	assert.NoError(t, waitDone(t, done))
}
