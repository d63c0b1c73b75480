// Package history records sync runs in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/modelsync-hq/modelsync/internal/logger"
)

// Provider outcome statuses within a recorded run.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"
)

// DefaultLimit is how many runs listing queries return when the caller
// does not say.
const DefaultLimit = 20

// Run is one recorded sync run.
type Run struct {
	ID            string
	StartedAt     time.Time
	FinishedAt    time.Time
	RefreshCaps   bool
	ProbesEnabled bool
	TotalModels   int
	ManagedModels int
	OtherModels   int
	DroppedModels int
	Providers     []ProviderRun
}

// ProviderRun is one provider's outcome within a run.
type ProviderRun struct {
	ProviderID string
	Status     string
	Models     int
	Detail     string
}

// Store persists sync runs.
type Store struct {
	db  *sql.DB
	log logger.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS sync_runs (
	id TEXT PRIMARY KEY,
	started_at TIMESTAMP NOT NULL,
	finished_at TIMESTAMP NOT NULL,
	refresh_caps INTEGER NOT NULL DEFAULT 0,
	probes_enabled INTEGER NOT NULL DEFAULT 0,
	total_models INTEGER NOT NULL DEFAULT 0,
	managed_models INTEGER NOT NULL DEFAULT 0,
	other_models INTEGER NOT NULL DEFAULT 0,
	dropped_models INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS sync_run_providers (
	run_id TEXT NOT NULL REFERENCES sync_runs(id) ON DELETE CASCADE,
	provider_id TEXT NOT NULL,
	status TEXT NOT NULL,
	models INTEGER NOT NULL DEFAULT 0,
	detail TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (run_id, provider_id)
);
`

// NewStore opens the history database at dbPath, creating the schema on
// first use.
func NewStore(dbPath string, log logger.Logger) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun stores one completed run with its provider outcomes.
func (s *Store) RecordRun(run Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO sync_runs
			(id, started_at, finished_at, refresh_caps, probes_enabled, total_models, managed_models, other_models, dropped_models)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.RefreshCaps, run.ProbesEnabled,
		run.TotalModels, run.ManagedModels, run.OtherModels, run.DroppedModels,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sync run: %w", err)
	}

	for _, p := range run.Providers {
		_, err := tx.Exec(
			`INSERT INTO sync_run_providers (run_id, provider_id, status, models, detail) VALUES (?, ?, ?, ?, ?)`,
			run.ID, p.ProviderID, p.Status, p.Models, p.Detail,
		)
		if err != nil {
			return fmt.Errorf("failed to insert provider outcome: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history transaction: %w", err)
	}
	s.log.Debugf("recorded sync run %s", run.ID)
	return nil
}

// RecentRuns returns up to limit runs, newest first, with their provider
// outcomes attached.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.db.Query(
		`SELECT id, started_at, finished_at, refresh_caps, probes_enabled, total_models, managed_models, other_models, dropped_models
		FROM sync_runs ORDER BY started_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sync runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(
			&run.ID, &run.StartedAt, &run.FinishedAt, &run.RefreshCaps, &run.ProbesEnabled,
			&run.TotalModels, &run.ManagedModels, &run.OtherModels, &run.DroppedModels,
		); err != nil {
			return nil, fmt.Errorf("failed to scan sync run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sync runs: %w", err)
	}

	for i := range runs {
		providers, err := s.providerRuns(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Providers = providers
	}
	return runs, nil
}

func (s *Store) providerRuns(runID string) ([]ProviderRun, error) {
	rows, err := s.db.Query(
		`SELECT provider_id, status, models, detail FROM sync_run_providers WHERE run_id = ? ORDER BY provider_id`, runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query provider outcomes: %w", err)
	}
	defer rows.Close()

	var providers []ProviderRun
	for rows.Next() {
		var p ProviderRun
		if err := rows.Scan(&p.ProviderID, &p.Status, &p.Models, &p.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan provider outcome: %w", err)
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}
