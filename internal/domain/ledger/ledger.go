// Package ledger defines the player's economic state and the operations that
// move money through it. This package is PURE and must NOT import any
// infrastructure packages (network, events, platform).
package ledger

import "fmt"

// Daily compounding rates. Applied once per in-game day.
const (
	InvestmentDailyRate = 0.0002  // ~7%/year, applied to original principal
	DebtDailyRate       = 0.0005  // ~18%/year
	SavingsDailyRate    = 0.00003 // ~1%/year
)

// Credit score bounds.
const (
	CreditScoreMin = 300
	CreditScoreMax = 850
)

// RetirementCost is the one-time deposit required to open a retirement account.
const RetirementCost = 100.0

// Expense is a recurring daily cost.
type Expense struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Investment is a single holding. CurrentValue is tracked for display, but
// daily growth is computed from Principal and credited to the bank balance
// (see Ledger.GrowInvestments).
type Investment struct {
	Type         string  `json:"type"`
	Principal    float64 `json:"principal"`
	CurrentValue float64 `json:"current_value"`
	PurchaseDay  int     `json:"purchase_day"`
}

// Ledger holds all mutable economic state for a session.
type Ledger struct {
	Cash        float64      `json:"cash"`
	BankBalance float64      `json:"bank_balance"`
	Debt        float64      `json:"debt"`
	DailyIncome float64      `json:"daily_income"`
	Expenses    []Expense    `json:"expenses"`
	Investments []Investment `json:"investments"`
	CreditScore int          `json:"credit_score"`
}

// New returns a ledger with starting-game values.
func New() *Ledger {
	return &Ledger{
		Cash:        10,
		CreditScore: 650,
	}
}

// DailyExpenses returns the sum of all recurring daily expenses.
func (l *Ledger) DailyExpenses() float64 {
	var total float64
	for _, e := range l.Expenses {
		total += e.Amount
	}
	return total
}

// MonthlyExpenses is the 30-day projection of recurring expenses.
func (l *Ledger) MonthlyExpenses() float64 {
	return l.DailyExpenses() * 30
}

// MonthlyPassiveIncome projects 30 days of investment growth. Growth is
// computed from each holding's original principal, never from accumulated value.
func (l *Ledger) MonthlyPassiveIncome() float64 {
	var total float64
	for _, inv := range l.Investments {
		total += inv.Principal * InvestmentDailyRate * 30
	}
	return total
}

// Deposit moves cash into the bank. Fails softly when the player does not
// hold enough cash; no state changes on failure.
func (l *Ledger) Deposit(amount float64) (string, bool) {
	if amount <= 0 {
		return "That is not an amount the teller can work with.", false
	}
	if amount > l.Cash {
		return "You do not have that much cash on you.", false
	}
	l.Cash -= amount
	l.BankBalance += amount
	return fmt.Sprintf("You deposit $%.2f. Your balance is now $%.2f.", amount, l.BankBalance), true
}

// Withdraw moves bank balance back into cash. Fails softly when the balance
// cannot cover the amount.
func (l *Ledger) Withdraw(amount float64) (string, bool) {
	if amount <= 0 {
		return "That is not an amount the teller can work with.", false
	}
	if amount > l.BankBalance {
		return "Your balance cannot cover that withdrawal.", false
	}
	l.BankBalance -= amount
	l.Cash += amount
	return fmt.Sprintf("You withdraw $%.2f. Your balance is now $%.2f.", amount, l.BankBalance), true
}

// Invest converts cash into a new holding of the given type.
func (l *Ledger) Invest(kind string, amount float64, day int) (string, bool) {
	if amount <= 0 {
		return "The broker squints. That is not a real investment.", false
	}
	if amount > l.Cash {
		return "You cannot invest money you do not have.", false
	}
	l.Cash -= amount
	l.Investments = append(l.Investments, Investment{
		Type:         kind,
		Principal:    amount,
		CurrentValue: amount,
		PurchaseDay:  day,
	})
	return fmt.Sprintf("You invest $%.2f in %s. Time will do the rest.", amount, kind), true
}

// PayDebt pays down debt with cash. The payment is capped at the outstanding
// debt, so overpayment is impossible. Returns whether the debt is now cleared.
func (l *Ledger) PayDebt(amount float64) (msg string, cleared bool, ok bool) {
	if l.Debt <= 0 {
		return "You are debt free. There is nothing to pay.", false, false
	}
	if amount <= 0 {
		return "You will need to pay more than that.", false, false
	}
	if amount > l.Debt {
		amount = l.Debt
	}
	if amount > l.Cash {
		return "You do not have enough cash for that payment.", false, false
	}
	l.Cash -= amount
	l.Debt -= amount
	if l.Debt <= 0 {
		l.Debt = 0
		l.AdjustCreditScore(40)
		return "You make the final payment. The debt is gone.", true, true
	}
	return fmt.Sprintf("You pay $%.2f toward your debt. $%.2f remains.", amount, l.Debt), false, true
}

// Borrow takes on new debt in exchange for immediate cash. Knowledge gating
// happens at the resolver layer, not here.
func (l *Ledger) Borrow(amount float64) (string, bool) {
	if amount <= 0 {
		return "The terminal blinks. Loan amount invalid.", false
	}
	l.Cash += amount
	l.Debt += amount
	l.AdjustCreditScore(-20)
	return fmt.Sprintf("Approved. $%.2f lands in your pocket, and on your record.", amount), true
}

// OpenRetirement opens a retirement account for a fixed cost and books it as
// a holding so it earns passive income like any other investment.
func (l *Ledger) OpenRetirement(day int) (string, bool) {
	if l.Cash < RetirementCost {
		return fmt.Sprintf("Opening a retirement account takes $%.0f. Come back when you have it.", RetirementCost), false
	}
	l.Cash -= RetirementCost
	l.Investments = append(l.Investments, Investment{
		Type:         "retirement",
		Principal:    RetirementCost,
		CurrentValue: RetirementCost,
		PurchaseDay:  day,
	})
	return "You open a retirement account. Future you nods in approval.", true
}

// SettleIncome credits one day of income to cash.
func (l *Ledger) SettleIncome() {
	l.Cash += l.DailyIncome
}

// SettleExpenses debits one day of recurring expenses, flooring cash at zero.
func (l *Ledger) SettleExpenses() {
	l.Cash -= l.DailyExpenses()
	if l.Cash < 0 {
		l.Cash = 0
	}
}

// GrowInvestments applies one day of growth to every holding and returns the
// total increment. The increment raises each holding's CurrentValue, but the
// cash lands in the bank balance rather than compounding inside the holding.
func (l *Ledger) GrowInvestments() float64 {
	var total float64
	for i := range l.Investments {
		growth := l.Investments[i].Principal * InvestmentDailyRate
		l.Investments[i].CurrentValue += growth
		total += growth
	}
	l.BankBalance += total
	return total
}

// CompoundDebt applies one day of interest to outstanding debt.
func (l *Ledger) CompoundDebt() {
	if l.Debt > 0 {
		l.Debt += l.Debt * DebtDailyRate
	}
}

// CompoundSavings applies one day of interest to the bank balance.
func (l *Ledger) CompoundSavings() {
	if l.BankBalance > 0 {
		l.BankBalance += l.BankBalance * SavingsDailyRate
	}
}

// AddCash applies a cash delta, flooring at zero. Used for random events and
// interaction effects; never fails.
func (l *Ledger) AddCash(delta float64) {
	l.Cash += delta
	if l.Cash < 0 {
		l.Cash = 0
	}
}

// AdjustCreditScore moves the credit score by delta, clamped to valid bounds.
func (l *Ledger) AdjustCreditScore(delta int) {
	l.CreditScore += delta
	if l.CreditScore < CreditScoreMin {
		l.CreditScore = CreditScoreMin
	}
	if l.CreditScore > CreditScoreMax {
		l.CreditScore = CreditScoreMax
	}
}
