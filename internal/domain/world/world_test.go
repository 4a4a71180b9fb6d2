package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVerb(t *testing.T) {
	for _, v := range Verbs {
		assert.True(t, IsVerb(v))
	}
	assert.False(t, IsVerb("dance"))
	assert.False(t, IsVerb(""))
}
