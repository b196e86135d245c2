// Package web parses configuration and runs the dashboard web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sofealabs/impactboard/internal/impact"
	"github.com/sofealabs/impactboard/internal/platform/config"
	"github.com/sofealabs/impactboard/internal/platform/otel"
	"github.com/sofealabs/impactboard/internal/services/web"
)

const defaultHTTPAddr = "127.0.0.1:8050"

// Config holds the web command configuration. Environment values are the
// baseline; flags override them.
type Config struct {
	HTTPAddr string `env:"IMPACTBOARD_WEB_HTTP_ADDR"`
}

// ParseConfig loads env configuration and parses flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = defaultHTTPAddr
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dashboard server and blocks until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := otel.Setup(ctx, "impactboard-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(ctx, web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Store:    impact.Fixtures(),
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	log.Printf("listening addr=%s", cfg.HTTPAddr)
	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
