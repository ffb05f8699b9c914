// Package server runs the HTTP listener and drains it on shutdown.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/shashiranjanraj/orderdesk/pkg/logger"
)

// Config holds the listener settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}

// Start serves handler on cfg.Addr until ctx is cancelled, then waits up to
// cfg.ShutdownTimeout for in-flight requests to finish.
func Start(ctx context.Context, cfg Config, handler http.Handler) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return err
	}
	return Serve(ctx, ln, cfg.ShutdownTimeout, handler)
}

// Serve is Start over an existing listener.
func Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration, handler http.Handler) error {
	srv := newHTTPServer(ln.Addr().String(), handler)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server: listening", "addr", ln.Addr().String())
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("server: shutdown signal received, draining in-flight requests")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server: forced to shutdown", "error", err)
		return err
	}
	logger.Info("server: exited gracefully")
	return nil
}
