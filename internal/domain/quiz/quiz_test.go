package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	good := Quiz{
		ID: "q",
		Questions: []Question{
			{Text: "?", Options: []string{"a", "b"}, Correct: 1},
			{Text: "?", Options: []string{"a", "b", "c"}, Correct: 0},
		},
	}
	assert.True(t, good.Valid())

	assert.False(t, Quiz{ID: "empty"}.Valid())

	single := Quiz{Questions: []Question{{Text: "?", Options: []string{"only"}, Correct: 0}}}
	assert.False(t, single.Valid(), "a question needs at least two options")

	outOfRange := Quiz{Questions: []Question{{Text: "?", Options: []string{"a", "b"}, Correct: 2}}}
	assert.False(t, outOfRange.Valid())

	negative := Quiz{Questions: []Question{{Text: "?", Options: []string{"a", "b"}, Correct: -1}}}
	assert.False(t, negative.Valid())
}
