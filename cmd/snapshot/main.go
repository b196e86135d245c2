// Package main exports the demo dataset to a SQLite snapshot file.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	snapshotcmd "github.com/sofealabs/impactboard/internal/cmd/snapshot"
	"github.com/sofealabs/impactboard/internal/platform/config"
)

func main() {
	cfg, err := snapshotcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[SNAPSHOT] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := snapshotcmd.Run(ctx, cfg); err != nil {
		config.Exitf("snapshot failed: %v", err)
	}
}
