package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finlit-games/financial-island/server/internal/domain/world"
)

func TestNewState(t *testing.T) {
	s := NewState("town_square")
	assert.Equal(t, world.LocationID("town_square"), s.Location)
	assert.Equal(t, 1, s.Day)
	assert.Equal(t, 10.0, s.Ledger.Cash)
	assert.Empty(t, s.Inventory)
	for _, f := range AllFlags {
		assert.False(t, s.Flags.Has(f))
	}
}

func TestFlagsSetClearHas(t *testing.T) {
	f := Flags{}
	assert.False(t, f.Has(FlagHasJob))
	f.Set(FlagHasJob)
	assert.True(t, f.Has(FlagHasJob))
	f.Clear(FlagHasJob)
	assert.False(t, f.Has(FlagHasJob))
}

func TestBudgetFor(t *testing.T) {
	b := BudgetFor(20)
	assert.InDelta(t, 10, b.Needs, 1e-9)
	assert.InDelta(t, 6, b.Wants, 1e-9)
	assert.InDelta(t, 4, b.Savings, 1e-9)
}

func TestAddItemExactlyOnce(t *testing.T) {
	s := NewState("start")
	require.True(t, s.AddItem("coin"))
	assert.False(t, s.AddItem("coin"))
	assert.Len(t, s.Inventory, 1)
	assert.True(t, s.HasItem("coin"))
}

func TestRemoveItem(t *testing.T) {
	s := NewState("start")
	s.AddItem("coin")
	s.AddItem("key")

	assert.True(t, s.RemoveItem("coin"))
	assert.False(t, s.RemoveItem("coin"))
	assert.Equal(t, []world.ItemID{"key"}, s.Inventory)
}

func TestRemoveItemClearsSelection(t *testing.T) {
	s := NewState("start")
	s.AddItem("key")
	s.SelectedItem = "key"

	s.RemoveItem("key")
	assert.Empty(t, s.SelectedItem)

	s.AddItem("coin")
	s.AddItem("rope")
	s.SelectedItem = "rope"
	s.RemoveItem("coin")
	assert.Equal(t, world.ItemID("rope"), s.SelectedItem, "removing another item keeps the selection")
}
