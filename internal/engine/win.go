package engine

import (
	"github.com/finlit-games/financial-island/server/internal/domain/ledger"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
)

// EvaluateWin is the pure win-condition predicate:
//
//	emergencyFund: bank balance covers three months of recurring expenses
//	passiveIncome: monthly investment growth covers half of monthly expenses
//	won:           both of the above, plus a retirement plan and zero debt
//
// Passive income is projected from each holding's original principal, the
// same basis the daily tick uses.
func EvaluateWin(l *ledger.Ledger, flags player.Flags) (emergencyFund, passiveIncome, won bool) {
	monthly := l.MonthlyExpenses()
	emergencyFund = l.BankBalance >= 3*monthly
	passiveIncome = l.MonthlyPassiveIncome() >= 0.5*monthly
	won = emergencyFund && passiveIncome && flags.Has(player.FlagHasRetirementPlan) && l.Debt == 0
	return emergencyFund, passiveIncome, won
}
