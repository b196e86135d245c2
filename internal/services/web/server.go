// Package web hosts the browser-facing dashboard service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sofealabs/impactboard/internal/impact"
	"github.com/sofealabs/impactboard/internal/platform/timeouts"
	webapp "github.com/sofealabs/impactboard/internal/services/web/app"
	module "github.com/sofealabs/impactboard/internal/services/web/module"
	"github.com/sofealabs/impactboard/internal/services/web/modules"
	"github.com/sofealabs/impactboard/internal/services/web/platform/httpx"
	"github.com/sofealabs/impactboard/internal/services/web/platform/observability"
	"github.com/sofealabs/impactboard/internal/services/web/routepath"
	webstatic "github.com/sofealabs/impactboard/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	Store    *impact.Store
}

// Server hosts the dashboard HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	store := cfg.Store
	if store == nil {
		store = impact.Fixtures()
	}
	deps := module.Dependencies{Store: store}
	h, err := webapp.Compose(deps, modules.Default()...)
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, webstatic.Handler()))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.TraceRequests(),
		observability.RequestLogger(log.Default()),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
