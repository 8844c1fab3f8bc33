package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/go-clip-sync/internal/config"
	"github.com/MKhiriev/go-clip-sync/internal/handler"
	"github.com/MKhiriev/go-clip-sync/internal/logger"
)

const shutdownTimeout = 15 * time.Second

type server struct {
	httpServer *httpServer
	handlers   *handler.Handlers
	deps       Dependencies

	address      string
	shutdownOnce sync.Once

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, deps Dependencies, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		handlers:   handlers,
		deps:       deps,
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

// Shutdown stops the listener, then the gateway, the workers and finally
// the closers. It runs once; later calls return immediately.
func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.shutdown(ctx); err != nil {
		s.logger.Err(err).Msg("shutdown finished with errors")
	}
}

func (s *server) shutdown(ctx context.Context) error {
	var errs []error

	s.shutdownOnce.Do(func() {
		if err := s.httpServer.shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http: %w", err))
		}
		if s.deps.Realtime != nil {
			if err := s.deps.Realtime.Shutdown(ctx); err != nil {
				errs = append(errs, fmt.Errorf("realtime: %w", err))
			}
		}
		if s.deps.Workers != nil {
			s.deps.Workers.Stop()
		}
		s.handlers.HTTP.Close()

		for _, c := range s.deps.Closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	})

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errShutdownIncomplete, errors.Join(errs...))
	}
	return nil
}

// run serves until ctx ends or the listener fails, then shuts down.
func (s *server) run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.address, err)
	}
	return s.serve(ctx, ln)
}

func (s *server) serve(ctx context.Context, ln net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if s.deps.Workers != nil {
		s.deps.Workers.Start(ctx)
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
		serveErr <- s.httpServer.serve(ln)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serveErr:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancelShutdown()

	if err := s.shutdown(shutdownCtx); err != nil {
		return errors.Join(runErr, err)
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return runErr
}
