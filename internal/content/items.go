package content

import (
	"fmt"

	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/engine"
)

// Item ids.
const (
	itemPiggyBank     world.ItemID = "piggy_bank"
	itemBudgetPlanner world.ItemID = "budget_planner"
	itemBrochure      world.ItemID = "brochure"
)

func items() map[world.ItemID]world.Item {
	all := []world.Item{
		{
			ID:          itemPiggyBank,
			Name:        "piggy bank",
			Description: "A ceramic pig with a hopeful expression. Something rattles inside.",
			Describe: map[world.Verb]string{
				world.VerbLook: "The pig stares back. It rattles when shaken, maybe two dollars' worth.",
			},
		},
		{
			ID:          itemBudgetPlanner,
			Name:        "budget planner",
			Description: "A spiral notebook with columns for needs, wants, and savings.",
			Describe: map[world.Verb]string{
				world.VerbLook: "Blank columns labeled needs, wants, and savings wait to be filled in.",
			},
		},
		{
			ID:          itemBrochure,
			Name:        "investing brochure",
			Description: "\"Compound Interest and You\" in cheerful seaside colors.",
			Describe: map[world.Verb]string{
				world.VerbLook: "A glossy brochure promising that time in the market beats timing the market.",
				world.VerbRead: "\"A dollar invested today quietly earns while you sleep. Diversify, be patient, and let the years compound.\"",
			},
		},
	}

	byID := make(map[world.ItemID]world.Item, len(all))
	for _, item := range all {
		byID[item.ID] = item
	}
	return byID
}

func itemCommands() map[world.ItemID]map[world.Verb]engine.Command {
	return map[world.ItemID]map[world.Verb]engine.Command{
		itemBudgetPlanner: {
			// Using the planner walks you through your budget, or into the
			// budgeting quiz if you haven't earned one yet.
			world.VerbUse: func(s *player.State) (string, []effect.Effect) {
				if s.Budget != nil {
					return fmt.Sprintf(
						"Your plan: $%.2f for needs, $%.2f for wants, $%.2f saved, every day.",
						s.Budget.Needs, s.Budget.Wants, s.Budget.Savings,
					), nil
				}
				return "You open the planner, but where to start? Maybe answer its quiz page first.",
					[]effect.Effect{effect.StartQuiz(quizBudgeting)}
			},
		},
	}
}
