// Package events provides the append-only session transcript. Every applied
// player action and day tick is recorded here; the network hub polls it to
// push updates, and an optional persister writes it through to storage.
// The engine never reads the transcript back to restore state.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// EventType defines the category of a session event.
type EventType string

const (
	EventTypeAction        EventType = "ACTION"          // verb/target interaction resolved
	EventTypeMove          EventType = "MOVE"            // player walked through an exit
	EventTypeDialogueStart EventType = "DIALOGUE_START"
	EventTypeDialogueEnd   EventType = "DIALOGUE_END"
	EventTypeQuizStart     EventType = "QUIZ_START"
	EventTypeQuizComplete  EventType = "QUIZ_COMPLETE"
	EventTypeLedgerOp      EventType = "LEDGER_OP" // banking/investment/debt operation
	EventTypeDayTick       EventType = "DAY_TICK"
	EventTypeRandomEvent   EventType = "RANDOM_EVENT" // weekly draw
	EventTypeGameWon       EventType = "GAME_WON"
)

// GameEvent is an immutable record of something that happened in a session.
type GameEvent struct {
	ID        string      `json:"id"`
	SessionID string      `json:"session_id"`
	Timestamp time.Time   `json:"timestamp"`
	Type      EventType   `json:"type"`
	Verb      string      `json:"verb,omitempty"`
	TargetID  string      `json:"target_id,omitempty"`
	Narrative string      `json:"narrative,omitempty"`
	Payload   interface{} `json:"payload,omitempty"`
	GameDay   int         `json:"game_day"`
}

// Persister defines how an event is durably stored.
type Persister interface {
	Append(event GameEvent) error
}

// EventLog is the in-memory append-only transcript, optionally written
// through to a Persister.
type EventLog struct {
	mu        sync.RWMutex
	events    []GameEvent
	persister Persister
}

// NewEventLog creates a transcript with an optional persister (nil is fine).
func NewEventLog(persister Persister) *EventLog {
	return &EventLog{
		events:    make([]GameEvent, 0),
		persister: persister,
	}
}

// Append records an event. Events are immutable once appended. Missing ids
// and timestamps are filled in here so callers can stay terse.
func (el *EventLog) Append(event GameEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	el.mu.Lock()
	el.events = append(el.events, event)
	persister := el.persister
	el.mu.Unlock()

	if persister != nil {
		// Write through to persistent storage off the hot path.
		go func(e GameEvent) {
			_ = persister.Append(e)
		}(event)
	}
}

// Replay returns the full transcript in order.
func (el *EventLog) Replay() []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return el.events
}

// GetByDay returns all events recorded on a specific game day.
func (el *EventLog) GetByDay(day int) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.GameDay == day {
			result = append(result, e)
		}
	}
	return result
}

// GetByType returns all events of a given type.
func (el *EventLog) GetByType(t EventType) []GameEvent {
	el.mu.RLock()
	defer el.mu.RUnlock()

	var result []GameEvent
	for _, e := range el.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// Len returns the number of recorded events.
func (el *EventLog) Len() int {
	el.mu.RLock()
	defer el.mu.RUnlock()
	return len(el.events)
}
