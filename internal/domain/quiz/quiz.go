// Package quiz defines knowledge-check content: ordered multiple-choice
// questions with a data-described reward applied once on full completion.
package quiz

import "github.com/finlit-games/financial-island/server/internal/domain/effect"

// Question is one multiple-choice step.
type Question struct {
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Correct int      `json:"correct"`
}

// Quiz is an ordered sequence of questions. Reward fires exactly once, on the
// last correct answer. Wrong answers are never recorded or penalized.
type Quiz struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Questions   []Question      `json:"questions"`
	Reward      []effect.Effect `json:"reward"`
	RewardText  string          `json:"reward_text"`
	WrongAnswer string          `json:"wrong_answer"` // retry prompt
}

// Valid checks that every question has options and an in-range correct index.
func (q Quiz) Valid() bool {
	if len(q.Questions) == 0 {
		return false
	}
	for _, question := range q.Questions {
		if len(question.Options) < 2 {
			return false
		}
		if question.Correct < 0 || question.Correct >= len(question.Options) {
			return false
		}
	}
	return true
}
