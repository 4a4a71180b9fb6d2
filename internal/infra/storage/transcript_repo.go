package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// TranscriptEvent is the storage shape of one transcript row.
type TranscriptEvent struct {
	ID        string
	SessionID string
	Timestamp time.Time
	EventType string
	Verb      string
	TargetID  string
	Narrative string
	Payload   map[string]interface{}
	GameDay   int
}

// TranscriptRepository writes and reads transcript rows in SQLite.
type TranscriptRepository struct {
	db *sql.DB
}

// NewTranscriptRepository wraps an initialized database handle.
func NewTranscriptRepository(db *sql.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Append stores one event.
func (r *TranscriptRepository) Append(ctx context.Context, event TranscriptEvent) error {
	payloadBytes, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := `
		INSERT INTO transcript (id, session_id, timestamp, event_type, verb, target_id, narrative, payload, game_day)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		event.ID, event.SessionID, event.Timestamp, event.EventType, event.Verb,
		event.TargetID, event.Narrative, string(payloadBytes), event.GameDay,
	)
	if err != nil {
		return fmt.Errorf("failed to append transcript event: %w", err)
	}
	return nil
}

func (r *TranscriptRepository) getMany(ctx context.Context, query string, args ...interface{}) ([]TranscriptEvent, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []TranscriptEvent
	for rows.Next() {
		var e TranscriptEvent
		var payloadStr string
		err := rows.Scan(
			&e.ID, &e.SessionID, &e.Timestamp, &e.EventType, &e.Verb,
			&e.TargetID, &e.Narrative, &payloadStr, &e.GameDay,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(payloadStr), &e.Payload); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

const transcriptColumns = `id, session_id, timestamp, event_type, verb, target_id, narrative, payload, game_day`

// GetBySession returns a session's full transcript in order.
func (r *TranscriptRepository) GetBySession(ctx context.Context, sessionID string) ([]TranscriptEvent, error) {
	query := `SELECT ` + transcriptColumns + ` FROM transcript WHERE session_id = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, sessionID)
}

// GetByGameDay returns a session's events for one game day.
func (r *TranscriptRepository) GetByGameDay(ctx context.Context, sessionID string, day int) ([]TranscriptEvent, error) {
	query := `SELECT ` + transcriptColumns + ` FROM transcript WHERE session_id = ? AND game_day = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, sessionID, day)
}

// GetByEventType returns a session's events of one type.
func (r *TranscriptRepository) GetByEventType(ctx context.Context, sessionID, eventType string) ([]TranscriptEvent, error) {
	query := `SELECT ` + transcriptColumns + ` FROM transcript WHERE session_id = ? AND event_type = ? ORDER BY timestamp ASC`
	return r.getMany(ctx, query, sessionID, eventType)
}
