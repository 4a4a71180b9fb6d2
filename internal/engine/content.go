package engine

import (
	"github.com/finlit-games/financial-island/server/internal/domain/dialogue"
	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/quiz"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
)

// Command is a verb handler: it reads the explicit state and returns the
// narrative line plus the mutations to apply. Commands never mutate state
// directly; the session reducer applies the returned effects. This keeps
// handlers referentially transparent and free of stale-closure risk.
type Command func(s *player.State) (string, []effect.Effect)

// UseWithCommand handles applying a held inventory item to a hotspot.
type UseWithCommand func(s *player.State, held world.ItemID) (string, []effect.Effect)

// Content aggregates every static table the engine runs on. It is built once
// at session start and never mutated; handlers may read it but the reducer is
// the only writer of player state.
type Content struct {
	Start     world.LocationID
	Locations map[world.LocationID]world.Location
	Hotspots  map[world.HotspotID]world.Hotspot
	Items     map[world.ItemID]world.Item

	// Command tables, split from the describe tables per hotspot/item.
	HotspotCommands map[world.HotspotID]map[world.Verb]Command
	HotspotUseWith  map[world.HotspotID]UseWithCommand
	ItemCommands    map[world.ItemID]map[world.Verb]Command

	Dialogues map[string]dialogue.Tree
	Quizzes   map[string]quiz.Quiz
	Badges    []world.Badge
}

// HotspotVisible evaluates a hotspot's visibility condition against state.
func HotspotVisible(h world.Hotspot, s *player.State) bool {
	v := h.Visible
	if v.RequiresFlag != "" && !s.Flags.Has(player.Flag(v.RequiresFlag)) {
		return false
	}
	if v.RequiresItem != "" && !s.HasItem(v.RequiresItem) {
		return false
	}
	if v.HiddenByFlag != "" && s.Flags.Has(player.Flag(v.HiddenByFlag)) {
		return false
	}
	return true
}
