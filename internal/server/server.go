package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AndrewCheUA/GoIT-Team-3-WEB/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Run serves handler on addr until ctx is cancelled or SIGINT/SIGTERM
// arrives, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGINT)
	defer signal.Stop(c)

	return serve(ctx, ln, handler, c)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, stop <-chan os.Signal) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, groupCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		logger.L.Info("server listening", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	eg.Go(func() error {
		defer func() {
			logger.L.Info("server stopping")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.L.Warn("server forced to shut down", zap.Error(err))
			}
		}()

		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case <-stop:
			return nil
		}
	})

	err := eg.Wait()
	if err != nil && errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.L.Info("server stopped")
	return err
}
