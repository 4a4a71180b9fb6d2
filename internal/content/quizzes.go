package content

import (
	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/quiz"
)

// Quiz ids.
const (
	quizBudgeting = "budgeting"
	quizCredit    = "credit"
	quizInvesting = "investing"
)

func quizzes() map[string]quiz.Quiz {
	return map[string]quiz.Quiz{
		quizBudgeting: {
			ID:   quizBudgeting,
			Name: "Budgeting Basics",
			Questions: []quiz.Question{
				{
					Text: "In the 50/30/20 rule, what does the 50 stand for?",
					Options: []string{
						"Half your income goes to needs",
						"Fifty dollars of fun money",
						"Save fifty percent",
					},
					Correct: 0,
				},
				{
					Text: "A streaming subscription is a...",
					Options: []string{
						"Need",
						"Want",
						"Savings goal",
					},
					Correct: 1,
				},
				{
					Text: "What share of income does the rule send to savings?",
					Options: []string{
						"Thirty percent",
						"Whatever's left over",
						"Twenty percent",
					},
					Correct: 2,
				},
			},
			Reward: []effect.Effect{
				effect.SetFlag(string(player.FlagHasBudget)),
				effect.MakeBudget(),
			},
			RewardText:  "Maria stamps your planner: certified budgeter. Your 50/30/20 plan is ready.",
			WrongAnswer: "Maria shakes her head kindly. \"Close! Think it through and try again.\"",
		},
		quizCredit: {
			ID:   quizCredit,
			Name: "Credit Basics",
			Questions: []quiz.Question{
				{
					Text: "What happens to unpaid debt over time?",
					Options: []string{
						"Nothing, debt is static",
						"It grows with compound interest",
						"The bank forgets about it",
					},
					Correct: 1,
				},
				{
					Text: "A higher credit score generally means...",
					Options: []string{
						"Cheaper borrowing",
						"Higher taxes",
						"Free money",
					},
					Correct: 0,
				},
				{
					Text: "The safest amount to borrow is...",
					Options: []string{
						"As much as they'll give you",
						"Whatever your neighbors borrow",
						"Only what you can repay",
					},
					Correct: 2,
				},
			},
			Reward: []effect.Effect{
				effect.SetFlag(string(player.FlagHasCreditKnowledge)),
				effect.Credit(30),
			},
			RewardText:  "Rose nods, almost smiling. You understand credit now, and your score already thanks you.",
			WrongAnswer: "Rose taps the card. \"Read it again. Carefully this time.\"",
		},
		quizInvesting: {
			ID:   quizInvesting,
			Name: "Investing Basics",
			Questions: []quiz.Question{
				{
					Text: "Compound growth means your money...",
					Options: []string{
						"Earns on what it already earned",
						"Doubles every year",
						"Is locked away forever",
					},
					Correct: 0,
				},
				{
					Text: "Why diversify your investments?",
					Options: []string{
						"It impresses brokers",
						"So one bad bet can't sink you",
						"It's legally required",
					},
					Correct: 1,
				},
				{
					Text: "The best friend of an investor is...",
					Options: []string{
						"Luck",
						"Hot tips",
						"Time",
					},
					Correct: 2,
				},
			},
			Reward: []effect.Effect{
				effect.SetFlag(string(player.FlagHasInvestmentKnowledge)),
			},
			RewardText:  "Sam grins. \"You're ready. Start small, stay steady.\" You understand investing now.",
			WrongAnswer: "Sam winces at the screen. \"Markets punish guesses. Try again.\"",
		},
	}
}
