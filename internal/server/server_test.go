package server

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/deppfellow/portfolio-backend/internal/config"
	"github.com/rs/zerolog"
)

func TestNewWithoutRedis(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	cfg := &config.Config{
		Primary:  config.Primary{Env: config.ModeLocal},
		Server:   config.ServerConfig{Port: "0", ReadTimeout: 1, WriteTimeout: 1, IdleTimeout: 1},
		Database: config.DatabaseConfig{SQLitePath: filepath.Join(t.TempDir(), "portfolio.db")},
	}

	s, err := New(cfg, &logger, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Redis != nil || s.Job != nil {
		t.Fatalf("redis and jobs should be disabled without an address")
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
}

func TestStartRequiresSetup(t *testing.T) {
	t.Parallel()

	s := &Server{}
	if err := s.Start(); err == nil {
		t.Fatalf("Start without SetupHTTPServer should fail")
	}
}

func TestSetupHTTPServer(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	s := &Server{
		Config: &config.Config{Server: config.ServerConfig{Port: "8000", ReadTimeout: 5, WriteTimeout: 10, IdleTimeout: 60}},
		Logger: &logger,
	}
	s.SetupHTTPServer(http.NotFoundHandler())

	if s.httpServer.Addr != ":8000" {
		t.Fatalf("addr = %q", s.httpServer.Addr)
	}
	if s.httpServer.WriteTimeout.Seconds() != 10 {
		t.Fatalf("write timeout = %v", s.httpServer.WriteTimeout)
	}

	if err := s.Shutdown(context.Background()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("Shutdown: %v", err)
	}
}
