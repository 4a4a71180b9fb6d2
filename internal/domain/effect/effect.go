// Package effect describes state mutations as plain data. Interaction
// handlers, dialogue terminals, and quiz rewards all return Effects instead of
// mutating anything themselves; the engine applies them at a single reducer.
// Keeping effects as tagged records makes content serializable and testable
// without a rendering harness.
package effect

// Kind tags an Effect variant.
type Kind string

const (
	KindCash          Kind = "CASH"           // Amount: cash delta, floored at zero
	KindBank          Kind = "BANK"           // Amount: bank balance delta
	KindDebt          Kind = "DEBT"           // Amount: debt delta
	KindIncome        Kind = "INCOME"         // Amount: daily income delta
	KindCredit        Kind = "CREDIT"         // Amount: credit score delta
	KindSetFlag       Kind = "SET_FLAG"       // Flag: progress flag to raise
	KindClearFlag     Kind = "CLEAR_FLAG"     // Flag: only debt-tied flags ever clear
	KindAddExpense    Kind = "ADD_EXPENSE"    // Name + Amount: recurring daily expense
	KindAddItem       Kind = "ADD_ITEM"       // Item: idempotent inventory add
	KindRemoveItem    Kind = "REMOVE_ITEM"    // Item
	KindAddInvestment Kind = "ADD_INVESTMENT" // Name (type) + Amount (principal)
	KindMakeBudget    Kind = "MAKE_BUDGET"    // 50/30/20 split of income, computed at apply time
	KindStartDialogue Kind = "START_DIALOGUE" // Target: character id
	KindStartQuiz     Kind = "START_QUIZ"     // Target: quiz id
)

// Effect is one data-described mutation command.
type Effect struct {
	Kind   Kind    `json:"kind"`
	Amount float64 `json:"amount,omitempty"`
	Flag   string  `json:"flag,omitempty"`
	Item   string  `json:"item,omitempty"`
	Name   string  `json:"name,omitempty"`
	Target string  `json:"target,omitempty"`
}

// Constructors keep content tables terse.

func Cash(amount float64) Effect   { return Effect{Kind: KindCash, Amount: amount} }
func Bank(amount float64) Effect   { return Effect{Kind: KindBank, Amount: amount} }
func Debt(amount float64) Effect   { return Effect{Kind: KindDebt, Amount: amount} }
func Income(amount float64) Effect { return Effect{Kind: KindIncome, Amount: amount} }
func Credit(delta float64) Effect  { return Effect{Kind: KindCredit, Amount: delta} }

func SetFlag(flag string) Effect   { return Effect{Kind: KindSetFlag, Flag: flag} }
func ClearFlag(flag string) Effect { return Effect{Kind: KindClearFlag, Flag: flag} }

func AddExpense(name string, amount float64) Effect {
	return Effect{Kind: KindAddExpense, Name: name, Amount: amount}
}

func AddItem(item string) Effect    { return Effect{Kind: KindAddItem, Item: item} }
func RemoveItem(item string) Effect { return Effect{Kind: KindRemoveItem, Item: item} }

func AddInvestment(kind string, principal float64) Effect {
	return Effect{Kind: KindAddInvestment, Name: kind, Amount: principal}
}

func MakeBudget() Effect { return Effect{Kind: KindMakeBudget} }

func StartDialogue(characterID string) Effect {
	return Effect{Kind: KindStartDialogue, Target: characterID}
}

func StartQuiz(quizID string) Effect { return Effect{Kind: KindStartQuiz, Target: quizID} }
