// Package content holds the static tables for Financial Island: the world
// graph, hotspots, items, dialogue trees, quizzes, and badges. Content is
// constructed once at session start and never mutated; all behavior is
// expressed as describe tables plus commands returning effect records.
package content

import (
	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/engine"
)

// Island assembles the full content table set for a new game.
func Island() engine.Content {
	return engine.Content{
		Start:           locStart,
		Locations:       locations(),
		Hotspots:        hotspots(),
		Items:           items(),
		HotspotCommands: hotspotCommands(),
		HotspotUseWith:  hotspotUseWith(),
		ItemCommands:    itemCommands(),
		Dialogues:       dialogues(),
		Quizzes:         quizzes(),
		Badges:          badges(),
	}
}

// badges maps progress flags to earnable achievements.
func badges() []world.Badge {
	return []world.Badge{
		{ID: "first_paycheck", Name: "First Paycheck", Flag: "hasJob"},
		{ID: "account_holder", Name: "Account Holder", Flag: "hasBank"},
		{ID: "budget_boss", Name: "Budget Boss", Flag: "hasBudget"},
		{ID: "credit_savvy", Name: "Credit Savvy", Flag: "hasCreditKnowledge"},
		{ID: "market_minded", Name: "Market Minded", Flag: "hasInvestmentKnowledge"},
		{ID: "rainy_day_ready", Name: "Rainy Day Ready", Flag: "hasEmergencyFund"},
		{ID: "golden_years", Name: "Golden Years", Flag: "hasRetirementPlan"},
		{ID: "clean_slate", Name: "Clean Slate", Flag: "hasPaidDebt"},
		{ID: "financially_free", Name: "Financially Free", Flag: "completedFinancialFreedom"},
	}
}
