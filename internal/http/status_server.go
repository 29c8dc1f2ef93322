package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"log-reader/internal/shared/loggers"
)

const (
	readHeaderTimeout = 5 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
)

// StatusServer serves health, progress and metrics while a run is in progress.
type StatusServer struct {
	server *http.Server
	logger loggers.Logger
}

func NewStatusServer(handler http.Handler, logger loggers.Logger) *StatusServer {
	return &StatusServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
		},
		logger: logger,
	}
}

// Start binds listenAddr and serves in the background. It returns the bound address, which
// differs from listenAddr when the port is 0.
func (s *StatusServer) Start(listenAddr string) (string, error) {
	listener, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return "", fmt.Errorf("failed to listen on %s: %w", listenAddr, err)
	}

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("status server stopped")
		}
	}()

	addr := listener.Addr().String()
	s.logger.Info().Msgf("status server listening on %s", addr)
	return addr, nil
}

func (s *StatusServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("status server shutdown failed: %w", err)
	}
	return nil
}
