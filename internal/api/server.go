package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"
)

// ServerConfig is the listen address and timeouts for the score API.
// Host and Port come from HOST and PORT; the timeouts are fixed.
type ServerConfig struct {
	Host string
	Port int

	// Every request and response is a single small JSON document, so a
	// slow body means a stuck client.
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration

	// ShutdownTimeout bounds how long in-flight score writes may finish
	// after SIGINT or SIGTERM.
	ShutdownTimeout time.Duration
}

// DefaultServerConfig listens on :8080
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:              8080,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Server serves the score API until Shutdown is called
type Server struct {
	server *http.Server
	logger *slog.Logger
	config ServerConfig
}

// NewServer binds handler to the configured address. Nothing listens
// until Start.
func NewServer(handler http.Handler, config ServerConfig, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:              net.JoinHostPort(config.Host, strconv.Itoa(config.Port)),
			Handler:           handler,
			ReadHeaderTimeout: config.ReadHeaderTimeout,
			ReadTimeout:       config.ReadTimeout,
			WriteTimeout:      config.WriteTimeout,
		},
		logger: logger,
		config: config,
	}
}

// Start blocks serving requests. It returns nil once Shutdown has closed
// the listener.
func (s *Server) Start() error {
	s.logger.Info("listening", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %s: %w", s.server.Addr, err)
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones, up to
// ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("draining requests", slog.Duration("timeout", s.config.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("server stopped")
	return nil
}

// Addr is host:port as configured, not the resolved listener address
func (s *Server) Addr() string {
	return s.server.Addr
}
