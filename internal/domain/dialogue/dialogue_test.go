package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tree(nodes ...Node) Tree {
	return Tree{Character: "npc", Name: "NPC", Nodes: nodes}
}

func TestValid(t *testing.T) {
	good := tree(
		Node{Text: "a", Responses: []Response{{Text: "on", Next: 1}, {Text: "bye", Next: End}}},
		Node{Text: "b", Responses: []Response{{Text: "back", Next: 0}, {Text: "bye", Next: End}}},
	)
	assert.True(t, good.Valid())

	empty := tree()
	assert.False(t, empty.Valid())

	dangling := tree(
		Node{Text: "a", Responses: []Response{{Text: "on", Next: 5}}},
	)
	assert.False(t, dangling.Valid())

	negative := tree(
		Node{Text: "a", Responses: []Response{{Text: "on", Next: -2}}},
	)
	assert.False(t, negative.Valid())
}

func TestReachesEnd(t *testing.T) {
	terminating := tree(
		Node{Text: "a", Responses: []Response{{Text: "on", Next: 1}}},
		Node{Text: "b", Responses: []Response{{Text: "bye", Next: End}}},
	)
	assert.True(t, terminating.ReachesEnd())

	// Two nodes pointing at each other with no way out.
	trapped := tree(
		Node{Text: "a", Responses: []Response{{Text: "on", Next: 1}}},
		Node{Text: "b", Responses: []Response{{Text: "back", Next: 0}}},
	)
	assert.False(t, trapped.ReachesEnd())

	// The exit exists but only past the loop.
	eventually := tree(
		Node{Text: "a", Responses: []Response{{Text: "loop", Next: 0}, {Text: "on", Next: 1}}},
		Node{Text: "b", Responses: []Response{{Text: "bye", Next: End}}},
	)
	assert.True(t, eventually.ReachesEnd())
}

func TestReachesEndIgnoresUnreachableNodes(t *testing.T) {
	// Node 2 terminates but nothing points at it; node 0 must still reach End
	// on its own.
	orphaned := tree(
		Node{Text: "a", Responses: []Response{{Text: "loop", Next: 1}}},
		Node{Text: "b", Responses: []Response{{Text: "back", Next: 0}}},
		Node{Text: "c", Responses: []Response{{Text: "bye", Next: End}}},
	)
	assert.False(t, orphaned.ReachesEnd())
}
