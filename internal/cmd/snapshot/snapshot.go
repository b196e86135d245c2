// Package snapshot parses configuration and exports the demo dataset.
package snapshot

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sofealabs/impactboard/internal/impact"
	snapshotsqlite "github.com/sofealabs/impactboard/internal/impact/snapshot/sqlite"
	"github.com/sofealabs/impactboard/internal/platform/config"
)

const defaultOutputPath = "impactboard-snapshot.db"

// Config holds the snapshot command configuration.
type Config struct {
	OutputPath string `env:"IMPACTBOARD_SNAPSHOT_PATH"`
}

// ParseConfig loads env configuration and parses flag overrides.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath
	}

	fs.StringVar(&cfg.OutputPath, "out", cfg.OutputPath, "snapshot database path")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the fixture dataset to the configured SQLite file.
func Run(ctx context.Context, cfg Config) error {
	store, err := snapshotsqlite.Open(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	defer func() { _ = store.Close() }()

	dataset := impact.Fixtures()
	if err := store.WriteSnapshot(ctx, dataset); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	programs, awardees, cohort, err := store.Counts(ctx)
	if err != nil {
		return fmt.Errorf("verify snapshot: %w", err)
	}
	log.Printf("snapshot written path=%s programs=%d awardees=%d cohort=%d", cfg.OutputPath, programs, awardees, cohort)
	return nil
}
