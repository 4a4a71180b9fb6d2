package engine

import (
	"fmt"
	"strings"

	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

// weeklyEvent is one entry of the fixed random-event table drawn every
// seventh day.
type weeklyEvent struct {
	CashDelta float64
	Text      string
}

// weeklyEvents is the full table. Exactly four entries; the draw is uniform.
var weeklyEvents = [4]weeklyEvent{
	{CashDelta: 5, Text: "You find $5 tucked into an old coat pocket."},
	{CashDelta: -3, Text: "A sudden downpour ruins your groceries. You lose $3."},
	{CashDelta: 0, Text: "A quiet week. The sea breeze is free."},
	{CashDelta: 10, Text: "A neighbor pays you $10 for an afternoon of yard work."},
}

// advanceDay runs the ordered day-tick settlement. Arithmetic never fails;
// every clamp is a silent floor at zero. Callers hold the lock.
func (s *Session) advanceDay() string {
	st := s.state
	led := st.Ledger
	var lines []string

	if st.Flags.Has(player.FlagHasJob) {
		led.SettleIncome()
	}
	led.SettleExpenses()
	led.GrowInvestments()
	led.CompoundDebt()
	led.CompoundSavings()

	st.Day++
	lines = append(lines, fmt.Sprintf("Day %d dawns over Financial Island.", st.Day))

	if st.Day%7 == 0 {
		ev := weeklyEvents[s.rng.Intn(len(weeklyEvents))]
		led.AddCash(ev.CashDelta)
		lines = append(lines, ev.Text)
		s.eventLog.Append(events.GameEvent{
			SessionID: s.ID,
			Type:      events.EventTypeRandomEvent,
			Narrative: ev.Text,
			Payload:   ev,
			GameDay:   st.Day,
		})
	}

	if line := s.checkWin(); line != "" {
		lines = append(lines, line)
	}

	metrics.DayTicks.Inc()
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeDayTick,
		Narrative: lines[0],
		GameDay:   st.Day,
	})
	s.logger.Event("DAY_TICK", s.ID, fmt.Sprintf("day=%d cash=%.2f bank=%.2f debt=%.2f", st.Day, led.Cash, led.BankBalance, led.Debt))

	return strings.Join(lines, " ")
}

// checkWin re-evaluates the win condition and raises achievement flags.
// completedFinancialFreedom is permanent once set, even if the predicate
// would later fail. Returns the terminal narrative the first time it fires.
func (s *Session) checkWin() string {
	st := s.state
	emergencyFund, _, won := EvaluateWin(st.Ledger, st.Flags)

	if emergencyFund && st.Ledger.BankBalance > 0 {
		st.Flags.Set(player.FlagHasEmergencyFund)
	}
	if !won || st.Flags.Has(player.FlagCompletedFinancialFreedom) {
		return ""
	}

	st.Flags.Set(player.FlagCompletedFinancialFreedom)
	line := "Your emergency fund is stocked, your investments pay your bills, and you owe no one. You have reached financial freedom!"
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeGameWon,
		Narrative: line,
		GameDay:   st.Day,
	})
	s.logger.Event("GAME_WON", s.ID, "financial freedom reached")
	return line
}
