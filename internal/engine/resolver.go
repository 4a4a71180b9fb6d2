package engine

import (
	"fmt"

	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/events"
)

// resolve maps an armed verb and a target id to a narrative line, applying
// any returned effects. Targets are tried as exits (walk), hotspots in the
// current location, then inventory items. Callers hold the session lock.
func (s *Session) resolve(verb world.Verb, targetID string) string {
	if verb == world.VerbWalk {
		return s.walk(world.LocationID(targetID))
	}

	if hotspot, ok := s.hotspotHere(world.HotspotID(targetID)); ok {
		return s.resolveHotspot(verb, hotspot)
	}

	itemID := world.ItemID(targetID)
	if s.state.HasItem(itemID) {
		return s.resolveItem(verb, itemID)
	}

	return "You don't see that here."
}

// walk moves the player through an exit of the current location.
func (s *Session) walk(dest world.LocationID) string {
	here := s.content.Locations[s.state.Location]
	for _, exit := range here.Exits {
		if exit.To != dest {
			continue
		}
		s.state.Location = dest
		there := s.content.Locations[dest]
		s.eventLog.Append(events.GameEvent{
			SessionID: s.ID,
			Type:      events.EventTypeMove,
			TargetID:  string(dest),
			GameDay:   s.state.Day,
		})
		return there.Description
	}
	return "You can't get there from here."
}

func (s *Session) resolveHotspot(verb world.Verb, h world.Hotspot) string {
	// Applying a held item takes priority over the hotspot's own use handler.
	// The selection is cleared regardless of outcome.
	if verb == world.VerbUse && s.state.SelectedItem != "" {
		held := s.state.SelectedItem
		s.state.SelectedItem = ""
		if useWith, ok := s.content.HotspotUseWith[h.ID]; ok {
			line, effects := useWith(s.state, held)
			s.apply(effects)
			return line
		}
		item := s.content.Items[held]
		return fmt.Sprintf("The %s is no use on that.", item.Name)
	}

	// Talk opens the hotspot's dialogue tree when it is a character.
	if verb == world.VerbTalk && h.Character != "" {
		return s.startDialogue(h.Character)
	}

	// Taking something already carried is idempotent: no handler runs, no
	// mutation happens.
	if verb == world.VerbTake && h.Yields != "" && s.state.HasItem(h.Yields) {
		item := s.content.Items[h.Yields]
		return fmt.Sprintf("You already have the %s.", item.Name)
	}

	if cmd, ok := s.content.HotspotCommands[h.ID][verb]; ok {
		line, effects := cmd(s.state)
		s.apply(effects)
		return line
	}

	if line, ok := h.Describe[verb]; ok {
		if verb == world.VerbTake && h.Yields != "" {
			s.state.AddItem(h.Yields)
		}
		return line
	}

	// Default take for item-yielding hotspots without bespoke text.
	if verb == world.VerbTake && h.Yields != "" {
		s.state.AddItem(h.Yields)
		item := s.content.Items[h.Yields]
		return fmt.Sprintf("You take the %s.", item.Name)
	}

	if verb == world.VerbLook {
		return h.Description
	}

	return CannotDoThat
}

func (s *Session) resolveItem(verb world.Verb, id world.ItemID) string {
	item := s.content.Items[id]

	if cmd, ok := s.content.ItemCommands[id][verb]; ok {
		line, effects := cmd(s.state)
		s.apply(effects)
		return line
	}

	if line, ok := item.Describe[verb]; ok {
		return line
	}

	if verb == world.VerbLook {
		return item.Description
	}

	// Use with no handler of its own starts the combine flow: hold the item
	// and prompt for a second target.
	if verb == world.VerbUse {
		s.state.SelectedItem = id
		return fmt.Sprintf("What do you want to use the %s on?", item.Name)
	}

	return CannotDoThat
}

// hotspotHere returns the hotspot if it is in the current location and
// visible under the player's flags and inventory.
func (s *Session) hotspotHere(id world.HotspotID) (world.Hotspot, bool) {
	here := s.content.Locations[s.state.Location]
	for _, hid := range here.Hotspots {
		if hid != id {
			continue
		}
		h, ok := s.content.Hotspots[id]
		if !ok || !HotspotVisible(h, s.state) {
			return world.Hotspot{}, false
		}
		return h, true
	}
	return world.Hotspot{}, false
}

// visibleHotspots lists the hotspots the player can currently interact with.
func (s *Session) visibleHotspots() []world.Hotspot {
	here := s.content.Locations[s.state.Location]
	var out []world.Hotspot
	for _, hid := range here.Hotspots {
		if h, ok := s.content.Hotspots[hid]; ok && HotspotVisible(h, s.state) {
			out = append(out, h)
		}
	}
	return out
}
