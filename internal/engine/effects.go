package engine

import (
	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/ledger"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
)

// apply is the single reducer: the only place effect commands touch player
// state. Content handlers return effects; everything funnels through here.
func (s *Session) apply(effects []effect.Effect) {
	for _, e := range effects {
		s.applyOne(e)
	}
}

func (s *Session) applyOne(e effect.Effect) {
	st := s.state
	switch e.Kind {
	case effect.KindCash:
		st.Ledger.AddCash(e.Amount)
	case effect.KindBank:
		st.Ledger.BankBalance += e.Amount
		if st.Ledger.BankBalance < 0 {
			st.Ledger.BankBalance = 0
		}
	case effect.KindDebt:
		st.Ledger.Debt += e.Amount
		if st.Ledger.Debt < 0 {
			st.Ledger.Debt = 0
		}
	case effect.KindIncome:
		st.Ledger.DailyIncome += e.Amount
		if st.Budget != nil {
			// Budget tracks income once created.
			b := player.BudgetFor(st.Ledger.DailyIncome)
			st.Budget = &b
		}
	case effect.KindCredit:
		st.Ledger.AdjustCreditScore(int(e.Amount))
	case effect.KindSetFlag:
		st.Flags.Set(player.Flag(e.Flag))
	case effect.KindClearFlag:
		st.Flags.Clear(player.Flag(e.Flag))
	case effect.KindAddExpense:
		st.Ledger.Expenses = append(st.Ledger.Expenses, ledger.Expense{Name: e.Name, Amount: e.Amount})
	case effect.KindAddItem:
		st.AddItem(world.ItemID(e.Item))
	case effect.KindRemoveItem:
		st.RemoveItem(world.ItemID(e.Item))
	case effect.KindAddInvestment:
		st.Ledger.Investments = append(st.Ledger.Investments, ledger.Investment{
			Type:         e.Name,
			Principal:    e.Amount,
			CurrentValue: e.Amount,
			PurchaseDay:  st.Day,
		})
	case effect.KindMakeBudget:
		b := player.BudgetFor(st.Ledger.DailyIncome)
		st.Budget = &b
	case effect.KindStartDialogue:
		s.startDialogue(e.Target)
	case effect.KindStartQuiz:
		s.startQuiz(e.Target)
	default:
		s.logger.Warn("Unknown effect kind: " + string(e.Kind))
	}
}
