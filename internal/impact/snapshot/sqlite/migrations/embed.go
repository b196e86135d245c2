// Package migrations embeds the snapshot schema.
package migrations

import "embed"

// FS contains embedded SQLite migrations for dataset snapshots.
//
//go:embed *.sql
var FS embed.FS
