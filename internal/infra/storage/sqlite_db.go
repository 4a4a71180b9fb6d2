// Package storage persists the session transcript to SQLite. The transcript
// is an audit trail only; the engine never reads it back to restore state.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// InitSQLite opens the local SQLite database and creates the transcript
// schema.
func InitSQLite(dbPath string) (*sql.DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if err := createSchemas(db); err != nil {
		return nil, fmt.Errorf("failed to create schemas: %w", err)
	}

	return db, nil
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS transcript (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			event_type TEXT NOT NULL,
			verb TEXT NOT NULL DEFAULT '',
			target_id TEXT NOT NULL DEFAULT '',
			narrative TEXT NOT NULL DEFAULT '',
			payload TEXT NOT NULL DEFAULT '{}',
			game_day INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_transcript_session ON transcript(session_id);`,
		`CREATE INDEX IF NOT EXISTS idx_transcript_game_day ON transcript(game_day);`,
		`CREATE INDEX IF NOT EXISTS idx_transcript_type ON transcript(event_type);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
