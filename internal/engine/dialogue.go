package engine

import (
	"github.com/finlit-games/financial-island/server/internal/domain/dialogue"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

// dialogueCursor tracks the one active conversation. Terminal state is
// implicit: a nil cursor means nobody is talking.
type dialogueCursor struct {
	treeID string
	node   int
}

// startDialogue opens a conversation at node 0. Callers hold the lock.
func (s *Session) startDialogue(treeID string) string {
	tree, ok := s.content.Dialogues[treeID]
	if !ok {
		s.logger.Warn("Dialogue tree not found: " + treeID)
		return CannotDoThat
	}
	s.dialogue = &dialogueCursor{treeID: treeID}
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeDialogueStart,
		TargetID:  treeID,
		GameDay:   s.state.Day,
	})
	return tree.Nodes[0].Text
}

// SelectDialogueResponse advances the active conversation by the chosen
// response. When the response targets the End sentinel, the node's terminal
// effects fire exactly once and the conversation closes.
func (s *Session) SelectDialogueResponse(index int) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialogue == nil {
		return s.narrate("Nobody is talking to you.")
	}
	tree := s.content.Dialogues[s.dialogue.treeID]
	node := tree.Nodes[s.dialogue.node]
	if index < 0 || index >= len(node.Responses) {
		return s.narrate("They wait for an actual answer.")
	}

	response := node.Responses[index]
	if response.Next == dialogue.End {
		// The only place dialogue mutates flags, ledger, or narrative.
		s.dialogue = nil
		s.apply(node.OnEnd)
		metrics.DialogueEnds.Inc()
		s.eventLog.Append(events.GameEvent{
			SessionID: s.ID,
			Type:      events.EventTypeDialogueEnd,
			TargetID:  tree.Character,
			GameDay:   s.state.Day,
		})
		if node.OnEndText != "" {
			return s.narrate(node.OnEndText)
		}
		return s.narrate("The conversation ends.")
	}

	s.dialogue.node = response.Next
	return s.narrate(tree.Nodes[response.Next].Text)
}

// activeDialogue returns the current node view, or nil when no conversation
// is open. Callers hold the lock.
func (s *Session) activeDialogue() *DialogueView {
	if s.dialogue == nil {
		return nil
	}
	tree := s.content.Dialogues[s.dialogue.treeID]
	node := tree.Nodes[s.dialogue.node]
	view := &DialogueView{
		Character: tree.Character,
		Name:      tree.Name,
		Text:      node.Text,
	}
	for _, r := range node.Responses {
		view.Responses = append(view.Responses, r.Text)
	}
	return view
}
