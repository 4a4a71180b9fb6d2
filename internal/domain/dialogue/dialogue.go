// Package dialogue defines branching conversation trees as flat node arenas.
// Responses point at node indices or the End sentinel; terminal side effects
// are data-described commands, so trees can be validated without running them.
package dialogue

import "github.com/finlit-games/financial-island/server/internal/domain/effect"

// End is the sentinel response target that terminates a conversation.
const End = -1

// Response is one player-selectable reply.
type Response struct {
	Text string `json:"text"`
	Next int    `json:"next"` // node index in the tree, or End
}

// Node is one line of character dialogue plus the player's options.
// OnEnd fires only when the conversation terminates via this node.
type Node struct {
	Text      string          `json:"text"`
	Responses []Response      `json:"responses"`
	OnEnd     []effect.Effect `json:"on_end,omitempty"`
	// OnEndText replaces the node text as the closing narrative line, when set.
	OnEndText string `json:"on_end_text,omitempty"`
}

// Tree is the full conversation for one character. Conversations always start
// at node 0.
type Tree struct {
	Character string `json:"character"`
	Name      string `json:"name"`
	Nodes     []Node `json:"nodes"`
}

// Valid checks structural integrity: at least one node, every node has at
// least one response, and every response targets a real node or End.
// A tree with no path to End is a content defect caught by content tests,
// not a runtime condition the engine guards.
func (t Tree) Valid() bool {
	if len(t.Nodes) == 0 {
		return false
	}
	for _, n := range t.Nodes {
		if len(n.Responses) == 0 {
			return false
		}
		for _, r := range n.Responses {
			if r.Next != End && (r.Next < 0 || r.Next >= len(t.Nodes)) {
				return false
			}
		}
	}
	return true
}

// ReachesEnd reports whether some response path starting at node 0 terminates.
func (t Tree) ReachesEnd() bool {
	seen := make(map[int]bool)
	var walk func(idx int) bool
	walk = func(idx int) bool {
		if seen[idx] {
			return false
		}
		seen[idx] = true
		for _, r := range t.Nodes[idx].Responses {
			if r.Next == End {
				return true
			}
			if r.Next >= 0 && r.Next < len(t.Nodes) && walk(r.Next) {
				return true
			}
		}
		return false
	}
	if len(t.Nodes) == 0 {
		return false
	}
	return walk(0)
}
