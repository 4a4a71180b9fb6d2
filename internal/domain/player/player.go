// Package player defines the mutable per-session state: progress flags,
// inventory, position, and the financial ledger. This package is PURE and
// must NOT import any infrastructure packages.
package player

import (
	"github.com/finlit-games/financial-island/server/internal/domain/ledger"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
)

// Flag names durable player progress. Flags are monotonic: once raised they
// stay raised, with the single exception of debt-tied flags (FlagPaidDebt),
// which track the current debt level.
type Flag string

const (
	FlagHasJob                    Flag = "hasJob"
	FlagHasBank                   Flag = "hasBank"
	FlagHasBudget                 Flag = "hasBudget"
	FlagHasCreditKnowledge        Flag = "hasCreditKnowledge"
	FlagHasInvestmentKnowledge    Flag = "hasInvestmentKnowledge"
	FlagHasEmergencyFund          Flag = "hasEmergencyFund"
	FlagHasRetirementPlan         Flag = "hasRetirementPlan"
	FlagPaidDebt                  Flag = "hasPaidDebt"
	FlagCompletedFinancialFreedom Flag = "completedFinancialFreedom"
)

// AllFlags lists every known flag for snapshots and validation.
var AllFlags = []Flag{
	FlagHasJob, FlagHasBank, FlagHasBudget, FlagHasCreditKnowledge,
	FlagHasInvestmentKnowledge, FlagHasEmergencyFund, FlagHasRetirementPlan,
	FlagPaidDebt, FlagCompletedFinancialFreedom,
}

// Flags is the set of raised progress flags.
type Flags map[Flag]bool

// Set raises a flag. There is deliberately no generic unset; use Clear only
// for debt-tied flags.
func (f Flags) Set(flag Flag) { f[flag] = true }

// Clear lowers a flag. Reserved for debt-tied flags.
func (f Flags) Clear(flag Flag) { delete(f, flag) }

// Has reports whether a flag is raised.
func (f Flags) Has(flag Flag) bool { return f[flag] }

// Budget is the 50/30/20 split of daily income, created once the budgeting
// quiz is passed.
type Budget struct {
	Needs   float64 `json:"needs"`
	Wants   float64 `json:"wants"`
	Savings float64 `json:"savings"`
}

// BudgetFor splits a daily income 50/30/20.
func BudgetFor(income float64) Budget {
	return Budget{
		Needs:   income * 0.5,
		Wants:   income * 0.3,
		Savings: income * 0.2,
	}
}

// State is the full mutable state of one session. It is handed explicitly to
// every handler; nothing closes over it.
type State struct {
	Location     world.LocationID
	Day          int
	Ledger       *ledger.Ledger
	Flags        Flags
	Inventory    []world.ItemID
	SelectedItem world.ItemID // held for the next use-interaction, empty when none
	Budget       *Budget
}

// NewState returns the new-game state positioned at the given location.
func NewState(start world.LocationID) *State {
	return &State{
		Location: start,
		Day:      1,
		Ledger:   ledger.New(),
		Flags:    make(Flags),
	}
}

// HasItem reports whether the item is in the inventory.
func (s *State) HasItem(id world.ItemID) bool {
	for _, held := range s.Inventory {
		if held == id {
			return true
		}
	}
	return false
}

// AddItem adds an item exactly once. Returns false when already held.
func (s *State) AddItem(id world.ItemID) bool {
	if s.HasItem(id) {
		return false
	}
	s.Inventory = append(s.Inventory, id)
	return true
}

// RemoveItem drops an item if held.
func (s *State) RemoveItem(id world.ItemID) bool {
	for i, held := range s.Inventory {
		if held == id {
			s.Inventory = append(s.Inventory[:i], s.Inventory[i+1:]...)
			if s.SelectedItem == id {
				s.SelectedItem = ""
			}
			return true
		}
	}
	return false
}
