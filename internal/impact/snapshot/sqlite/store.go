// Package sqlite exports the in-memory impact dataset to a SQLite file so
// the demo fixtures can be inspected with standard tools.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/sofealabs/impactboard/internal/impact"
	"github.com/sofealabs/impactboard/internal/impact/snapshot/sqlite/migrations"
	"github.com/sofealabs/impactboard/internal/platform/storage/sqlitemigrate"
)

// Store persists dataset snapshots in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a snapshot store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("snapshot path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// WriteSnapshot replaces any previous snapshot with the given dataset.
func (s *Store) WriteSnapshot(ctx context.Context, dataset *impact.Store) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if dataset == nil {
		return fmt.Errorf("dataset is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"cohort_scores", "publications", "awardees", "program_series", "programs"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, program := range dataset.Programs() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO programs (id, name) VALUES (?, ?)",
			string(program.ID), program.Name,
		); err != nil {
			return fmt.Errorf("insert program %s: %w", program.ID, err)
		}
		for _, point := range program.Series {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO program_series (program_id, period, value) VALUES (?, ?, ?)",
				string(program.ID), point.Period, point.Value,
			); err != nil {
				return fmt.Errorf("insert series %s/%d: %w", program.ID, point.Period, err)
			}
		}
	}

	for _, awardee := range dataset.AllAwardees() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO awardees
			 (id, name, program_id, field, award_year, first_pub_year, score, publications, grants, capital_m)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			awardee.ID, awardee.Name, string(awardee.Program), awardee.Field,
			awardee.AwardYear, awardee.FirstPubYear,
			awardee.Metrics.Score, awardee.Metrics.Publications,
			awardee.Metrics.Grants, awardee.Metrics.CapitalM,
		); err != nil {
			return fmt.Errorf("insert awardee %s: %w", awardee.ID, err)
		}
		for _, publication := range awardee.Publications {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO publications (awardee_id, year, journal, orcr) VALUES (?, ?, ?, ?)",
				awardee.ID, publication.Year, publication.Journal, publication.ORCR,
			); err != nil {
				return fmt.Errorf("insert publication %s/%s: %w", awardee.ID, publication.Journal, err)
			}
		}
	}

	for position, score := range dataset.CohortScores() {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO cohort_scores (position, score) VALUES (?, ?)",
			position, score,
		); err != nil {
			return fmt.Errorf("insert cohort score %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot: %w", err)
	}
	return nil
}

// Counts reports snapshot row totals for logging and verification.
func (s *Store) Counts(ctx context.Context) (programs, awardees, cohort int64, err error) {
	if s == nil || s.sqlDB == nil {
		return 0, 0, 0, fmt.Errorf("storage is not configured")
	}
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM programs").Scan(&programs); err != nil {
		return 0, 0, 0, fmt.Errorf("count programs: %w", err)
	}
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM awardees").Scan(&awardees); err != nil {
		return 0, 0, 0, fmt.Errorf("count awardees: %w", err)
	}
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM cohort_scores").Scan(&cohort); err != nil {
		return 0, 0, 0, fmt.Errorf("count cohort scores: %w", err)
	}
	return programs, awardees, cohort, nil
}
