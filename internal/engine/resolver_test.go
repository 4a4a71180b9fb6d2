package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlit-games/financial-island/server/internal/domain/world"
)

func TestWalkThroughExit(t *testing.T) {
	s := newTestSession(t)
	line := do(s, world.VerbWalk, string(testCabin))
	assert.Equal(t, "A cosy cabin.", line)
	assert.Equal(t, testCabin, s.state.Location)
}

func TestWalkWithoutExit(t *testing.T) {
	s := newTestSession(t)
	line := do(s, world.VerbWalk, "nowhere")
	assert.Equal(t, "You can't get there from here.", line)
	assert.Equal(t, testStreet, s.state.Location)
}

func TestSelectVerbRejectsUnknown(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, CannotDoThat, s.SelectVerb("dance"))
	// The previous verb stays armed.
	line := s.Interact(string(testSign))
	assert.Equal(t, "A weathered sign.", line)
}

func TestLookFallsBackToDescription(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "A locked door.", do(s, world.VerbLook, string(testDoor)))
}

func TestReadUsesDescribeTable(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "Welcome to the street.", do(s, world.VerbRead, string(testSign)))
}

func TestUnhandledVerbRefusal(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, CannotDoThat, do(s, world.VerbRead, string(testDoor)))
}

func TestTargetNotHere(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "You don't see that here.", do(s, world.VerbLook, "ghost"))
}

func TestTakeIsIdempotent(t *testing.T) {
	s := newTestSession(t)

	line := do(s, world.VerbTake, string(testChest))
	assert.Equal(t, "You fish a coin out of the chest.", line)
	require.True(t, s.state.HasItem(testCoin))
	require.Len(t, s.state.Inventory, 1)

	line = do(s, world.VerbTake, string(testChest))
	assert.Equal(t, "You already have the coin.", line)
	assert.Len(t, s.state.Inventory, 1, "second take must not duplicate the item")
}

func TestHotspotCommandAppliesEffects(t *testing.T) {
	s := newTestSession(t)

	line := do(s, world.VerbUse, string(testDoor))
	assert.Equal(t, "You push the door open.", line)
	assert.True(t, s.state.Flags.Has(testFlagDoorOpen))

	line = do(s, world.VerbUse, string(testDoor))
	assert.Equal(t, "The door is already open.", line)
}

func TestHiddenHotspotIsUnreachable(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, "You don't see that here.", do(s, world.VerbLook, string(testVault)))

	do(s, world.VerbUse, string(testDoor))
	assert.Equal(t, "An open vault.", do(s, world.VerbLook, string(testVault)))
}

func TestSelectItemRequiresPossession(t *testing.T) {
	s := newTestSession(t)
	assert.Equal(t, "You are not carrying that.", s.SelectItem(testKey))
	assert.Empty(t, s.state.SelectedItem)
}

func TestCombineFlowAppliesItemToHotspot(t *testing.T) {
	s := newTestSession(t)
	s.state.AddItem(testKey)

	line := s.SelectItem(testKey)
	assert.Equal(t, "What do you want to use the key on?", line)
	assert.Equal(t, testKey, s.state.SelectedItem)

	line = do(s, world.VerbUse, string(testDoor))
	assert.Equal(t, "The key turns with a satisfying clunk.", line)
	assert.True(t, s.state.Flags.Has(testFlagDoorOpen))
	assert.False(t, s.state.HasItem(testKey))
	assert.Empty(t, s.state.SelectedItem)
}

func TestCombineFlowClearsSelectionOnFailure(t *testing.T) {
	s := newTestSession(t)
	s.state.AddItem(testKey)
	do(s, world.VerbTake, string(testChest))

	s.SelectItem(testCoin)
	line := do(s, world.VerbUse, string(testDoor))
	assert.Equal(t, "That does not fit the lock.", line)
	assert.Empty(t, s.state.SelectedItem, "selection clears even when the combination fails")
	assert.True(t, s.state.HasItem(testCoin))
}

func TestUseItemWithoutHandlerStartsCombine(t *testing.T) {
	s := newTestSession(t)
	do(s, world.VerbTake, string(testChest))

	line := do(s, world.VerbUse, string(testCoin))
	assert.Equal(t, "What do you want to use the coin on?", line)
	assert.Equal(t, testCoin, s.state.SelectedItem)
}

func TestInteractBlockedDuringDialogue(t *testing.T) {
	s := newTestSession(t)
	do(s, world.VerbTalk, string(testHermit))

	line := do(s, world.VerbLook, string(testSign))
	assert.Equal(t, "Finish the conversation first.", line)
}

func TestSnapshotListsVisibleHotspotsAndExits(t *testing.T) {
	s := newTestSession(t)
	snap := s.Snapshot()

	assert.Equal(t, string(testStreet), snap.Location)
	require.Len(t, snap.Exits, 1)
	assert.Equal(t, string(testCabin), snap.Exits[0].To)
	assert.Len(t, snap.Hotspots, 4, "the vault stays hidden until the door opens")
}
