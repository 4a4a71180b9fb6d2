package content

import (
	"github.com/finlit-games/financial-island/server/internal/domain/dialogue"
	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
)

// Character ids keying dialogue trees.
const (
	charBanker    = "banker_lee"
	charLibrarian = "librarian_rose"
	charBroker    = "broker_sam"
	charCoach     = "coach_maria"
	charGrocer    = "grocer_ivy"
)

func dialogues() map[string]dialogue.Tree {
	return map[string]dialogue.Tree{
		charBanker: {
			Character: charBanker,
			Name:      "Mr. Lee",
			Nodes: []dialogue.Node{
				{
					Text: "Welcome to Island Bank. Savings, deposits, honest rates. What can I do for you?",
					Responses: []dialogue.Response{
						{Text: "I'd like to open an account.", Next: 1},
						{Text: "Just looking around.", Next: dialogue.End},
					},
				},
				{
					Text: "Wise choice. An account keeps your money safe, and it even earns a little interest every day. Shall I set you up?",
					Responses: []dialogue.Response{
						{Text: "Yes, open it.", Next: dialogue.End},
						{Text: "Maybe later.", Next: 0},
					},
					OnEnd: []effect.Effect{
						effect.SetFlag(string(player.FlagHasBank)),
					},
					OnEndText: "Mr. Lee slides a crisp new passbook across the counter. You have a bank account!",
				},
			},
		},
		charLibrarian: {
			Character: charLibrarian,
			Name:      "Rose",
			Nodes: []dialogue.Node{
				{
					Text: "Shhh. Unless you're here about the finance section, in which case, speak up.",
					Responses: []dialogue.Response{
						{Text: "What should I know about credit?", Next: 1},
						{Text: "Sorry, wrong room.", Next: dialogue.End},
					},
				},
				{
					Text: "Credit is borrowed trust. Use it well and doors open; use it badly and the interest eats you alive. Care to prove you've been listening?",
					Responses: []dialogue.Response{
						{Text: "Quiz me.", Next: dialogue.End},
						{Text: "Not today.", Next: 0},
					},
					OnEnd: []effect.Effect{
						effect.StartQuiz(quizCredit),
					},
					OnEndText: "Rose produces a quiz card from her cardigan with alarming speed.",
				},
			},
		},
		charBroker: {
			Character: charBroker,
			Name:      "Sam",
			Nodes: []dialogue.Node{
				{
					Text: "Markets are up. Or down. Depends when you ask. What brings you in?",
					Responses: []dialogue.Response{
						{Text: "How does investing work?", Next: 1},
						{Text: "Just admiring the screens.", Next: dialogue.End},
					},
				},
				{
					Text: "You buy a slice of something productive and let time do the heavy lifting. Around seven percent a year if you're patient, panic if you're not. Want to test your instincts?",
					Responses: []dialogue.Response{
						{Text: "Test me.", Next: dialogue.End},
						{Text: "What about the risks?", Next: 2},
					},
					OnEnd: []effect.Effect{
						effect.StartQuiz(quizInvesting),
					},
					OnEndText: "Sam spins his chair around and pulls up a quiz on the center screen.",
				},
				{
					Text: "Risk is the price of return. Diversify so no single bad day sinks you, and never invest the rent money.",
					Responses: []dialogue.Response{
						{Text: "Alright, test me.", Next: 1},
						{Text: "I'll think about it.", Next: dialogue.End},
					},
				},
			},
		},
		charCoach: {
			Character: charCoach,
			Name:      "Maria",
			Nodes: []dialogue.Node{
				{
					Text: "Free budgeting help! Fifty, thirty, twenty, it'll change your life. Got a minute?",
					Responses: []dialogue.Response{
						{Text: "What's fifty-thirty-twenty?", Next: 1},
						{Text: "No time, sorry.", Next: dialogue.End},
					},
				},
				{
					Text: "Half your income on needs, thirty percent on wants, twenty percent saved. Simple enough to stick to. Ready for the quiz?",
					Responses: []dialogue.Response{
						{Text: "Ready.", Next: dialogue.End},
						{Text: "Run that by me again?", Next: 1},
					},
					OnEnd: []effect.Effect{
						effect.StartQuiz(quizBudgeting),
					},
					OnEndText: "Maria flips her clipboard around. Quiz time.",
				},
			},
		},
		charGrocer: {
			Character: charGrocer,
			Name:      "Ivy",
			Nodes: []dialogue.Node{
				{
					Text: "Fresh oranges! You look like someone counting every dollar. Smart.",
					Responses: []dialogue.Response{
						{Text: "Any money tips, Ivy?", Next: 1},
						{Text: "Just passing through.", Next: dialogue.End},
					},
				},
				{
					Text: "Pay yourself first, haggle second, and never shop hungry. That last one's free.",
					Responses: []dialogue.Response{
						{Text: "Thanks, Ivy.", Next: dialogue.End},
					},
					OnEndText: "Ivy tosses you a wink and goes back to her orange pyramid.",
				},
			},
		},
	}
}
