package network

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/engine"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/logger"
)

func newDispatchSession(t *testing.T) *engine.Session {
	t.Helper()
	content := engine.Content{
		Start: "pier",
		Locations: map[world.LocationID]world.Location{
			"pier": {
				ID:          "pier",
				Name:        "Pier",
				Description: "A salty pier.",
				Exits:       []world.Exit{{To: "beach", Label: "Beach"}},
				Hotspots:    []world.HotspotID{"crate"},
			},
			"beach": {
				ID:          "beach",
				Name:        "Beach",
				Description: "Soft sand.",
			},
		},
		Hotspots: map[world.HotspotID]world.Hotspot{
			"crate": {ID: "crate", Name: "Crate", Description: "A crate of fish."},
		},
	}
	return engine.NewSession(content, events.NewEventLog(nil), logger.NewNop(), 1)
}

func action(actionType, payload string) PlayerAction {
	return PlayerAction{Type: actionType, Payload: json.RawMessage(payload)}
}

func TestDispatchInteract(t *testing.T) {
	s := newDispatchSession(t)

	require.NoError(t, Dispatch(s, action("SELECT_VERB", `{"verb":"walk"}`)))
	require.NoError(t, Dispatch(s, action("INTERACT", `{"target_id":"beach"}`)))

	assert.Equal(t, "beach", s.Snapshot().Location)
}

func TestDispatchAdvanceDay(t *testing.T) {
	s := newDispatchSession(t)
	require.NoError(t, Dispatch(s, action("ADVANCE_DAY", "")))
	assert.Equal(t, 2, s.Snapshot().Day)
}

func TestDispatchBanking(t *testing.T) {
	s := newDispatchSession(t)
	require.NoError(t, Dispatch(s, action("BANKING", `{"kind":"deposit","amount":5}`)))
	// No account yet, so the deposit softly refuses.
	assert.Equal(t, 10.0, s.Snapshot().Ledger.Cash)
}

func TestDispatchSnapshotIsNoop(t *testing.T) {
	s := newDispatchSession(t)
	require.NoError(t, Dispatch(s, action("SNAPSHOT", "")))
	assert.Equal(t, 1, s.Snapshot().Day)
}

func TestDispatchUnknownType(t *testing.T) {
	s := newDispatchSession(t)
	err := Dispatch(s, action("TELEPORT", "{}"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown PlayerAction type")
}

func TestDispatchBadPayload(t *testing.T) {
	s := newDispatchSession(t)
	err := Dispatch(s, action("SELECT_VERB", `{"verb":`))
	assert.Error(t, err)
	assert.Equal(t, "pier", s.Snapshot().Location, "bad input must not move the player")
}
