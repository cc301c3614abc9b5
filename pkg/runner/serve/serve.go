// Package serve runs the trip API over a local store.
package serve

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"tableflip.dev/trip/pkg/server"
	"tableflip.dev/trip/pkg/service"
)

const shutdownTimeout = 10 * time.Second

type Serve struct {
	Services service.Set
	Logger   *slog.Logger
	Addr     string

	// OnListening is called with the bound address once the listener is up.
	OnListening func(net.Addr)
}

// Do serves until ctx is cancelled or the process receives SIGINT or SIGTERM.
func (s *Serve) Do(ctx context.Context) error {
	log := s.Logger
	if log == nil {
		log = slog.Default()
	}
	httpServer := &http.Server{
		Handler:           server.NewRouter(s.Services, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.Addr, err)
	}
	if s.OnListening != nil {
		s.OnListening(ln.Addr())
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting HTTP server", slog.String("address", ln.Addr().String()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			log.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			log.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("Server error", slog.String("error", err.Error()))
		return err
	}
	log.Info("Server stopped")
	return nil
}
