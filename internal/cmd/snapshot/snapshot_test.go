package snapshot

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutputPath != "impactboard-snapshot.db" {
		t.Fatalf("OutputPath = %q, want %q", cfg.OutputPath, "impactboard-snapshot.db")
	}
}

func TestParseConfigFlagOverride(t *testing.T) {
	fs := flag.NewFlagSet("snapshot", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-out", "custom.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutputPath != "custom.db" {
		t.Fatalf("OutputPath = %q, want %q", cfg.OutputPath, "custom.db")
	}
}

func TestRunWritesSnapshotFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.db")
	if err := Run(context.Background(), Config{OutputPath: path}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat snapshot: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("snapshot file is empty")
	}
}
