// Package sqlite provides a SQLite-backed implementation of the repository ports.
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/GustaveMAG/vienna-vibe/internal/core/ports"
)

// Adapter implements the repository ports for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.Store = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	if strings.Contains(storagePath, ":memory:") {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS vibes (
		id TEXT PRIMARY KEY,
		recorded_at DATETIME NOT NULL,
		condition TEXT NOT NULL,
		hour INTEGER NOT NULL,
		temperature_c REAL NOT NULL,
		wind_speed_kph REAL NOT NULL,
		description TEXT,
		observed_at DATETIME,
		offline INTEGER NOT NULL DEFAULT 0,
		mood TEXT NOT NULL,
		seed_genres TEXT NOT NULL,
		target_valence REAL NOT NULL,
		target_energy REAL NOT NULL,
		target_tempo REAL NOT NULL,
		target_acousticness REAL NOT NULL,
		track_limit INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_vibes_recorded_at ON vibes(recorded_at DESC);

	CREATE TABLE IF NOT EXISTS track_features (
		track_id TEXT PRIMARY KEY,
		danceability REAL,
		energy REAL,
		valence REAL,
		tempo REAL,
		instrumentalness REAL,
		acousticness REAL,
		analyzed_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := a.db.Exec(query)
	return err
}
