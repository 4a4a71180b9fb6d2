package engine

import (
	"github.com/finlit-games/financial-island/server/internal/domain/ledger"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
)

// ExitView is one walkable exit from the current location.
type ExitView struct {
	To    string `json:"to"`
	Label string `json:"label"`
}

// HotspotView is a visible hotspot, ready for hit-testing by the client.
type HotspotView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ItemView is one inventory entry.
type ItemView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// DialogueView is the active conversation node, if any.
type DialogueView struct {
	Character string   `json:"character"`
	Name      string   `json:"name"`
	Text      string   `json:"text"`
	Responses []string `json:"responses"`
}

// QuizView is the active quiz question, if any.
type QuizView struct {
	QuizID   string   `json:"quiz_id"`
	Name     string   `json:"name"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Number   int      `json:"number"`
	Total    int      `json:"total"`
}

// Snapshot is the full read-only view handed to the presentation layer after
// every input.
type Snapshot struct {
	SessionID   string          `json:"session_id"`
	Day         int             `json:"day"`
	Location    string          `json:"location"`
	LocationName string         `json:"location_name"`
	Description string          `json:"description"`
	Narrative   string          `json:"narrative"`
	Verb        string          `json:"verb"`
	Exits       []ExitView      `json:"exits"`
	Hotspots    []HotspotView   `json:"hotspots"`
	Inventory   []ItemView      `json:"inventory"`
	Dialogue    *DialogueView   `json:"dialogue,omitempty"`
	Quiz        *QuizView       `json:"quiz,omitempty"`
	Ledger      ledger.Ledger   `json:"ledger"`
	Budget      *player.Budget  `json:"budget,omitempty"`
	Flags       map[string]bool `json:"flags"`
	Badges      []world.Badge   `json:"badges"`
	Won         bool            `json:"won"`
}

// Snapshot captures the current state for the presentation boundary.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state
	here := s.content.Locations[st.Location]

	snap := Snapshot{
		SessionID:    s.ID,
		Day:          st.Day,
		Location:     string(here.ID),
		LocationName: here.Name,
		Description:  here.Description,
		Narrative:    s.lastLine,
		Verb:         string(s.verb),
		Ledger:       *st.Ledger,
		Budget:       st.Budget,
		Flags:        make(map[string]bool, len(player.AllFlags)),
		Dialogue:     s.activeDialogue(),
		Quiz:         s.activeQuiz(),
		Won:          st.Flags.Has(player.FlagCompletedFinancialFreedom),
	}

	for _, exit := range here.Exits {
		snap.Exits = append(snap.Exits, ExitView{To: string(exit.To), Label: exit.Label})
	}
	for _, h := range s.visibleHotspots() {
		snap.Hotspots = append(snap.Hotspots, HotspotView{ID: string(h.ID), Name: h.Name})
	}
	for _, id := range st.Inventory {
		item := s.content.Items[id]
		snap.Inventory = append(snap.Inventory, ItemView{
			ID:       string(id),
			Name:     item.Name,
			Selected: st.SelectedItem == id,
		})
	}
	for _, flag := range player.AllFlags {
		snap.Flags[string(flag)] = st.Flags.Has(flag)
	}
	for _, badge := range s.content.Badges {
		if st.Flags.Has(player.Flag(badge.Flag)) {
			snap.Badges = append(snap.Badges, badge)
		}
	}
	return snap
}
