// Package engine contains the interactive-fiction core of Financial Island:
// the interaction resolver, dialogue and quiz runners, and the simulation
// clock. Content tables are read-only; all mutation funnels through the
// session's effect reducer.
package engine

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/logger"
	"github.com/finlit-games/financial-island/server/internal/platform/metrics"
)

// CannotDoThat is the fixed refusal line for verbs with no handler on a
// target. This is normal flow, not an error.
const CannotDoThat = "You can't do that."

// Session is one playthrough: content tables plus mutable state, driven by a
// single logical actor. The mutex serializes the auto-tick goroutine against
// player actions so all effects of day N land before any action of day N+1.
type Session struct {
	ID      string
	content Content

	mu       sync.Mutex
	state    *player.State
	verb     world.Verb
	dialogue *dialogueCursor
	quiz     *quizCursor
	rewarded map[string]bool // quizzes whose reward already fired
	lastLine string

	rng      *rand.Rand
	eventLog *events.EventLog
	logger   *logger.Logger
}

// NewSession starts a new game over the given content. The RNG seed drives
// the weekly event draw; pass a fixed seed for deterministic runs.
func NewSession(content Content, eventLog *events.EventLog, log *logger.Logger, seed int64) *Session {
	return &Session{
		ID:       uuid.NewString(),
		content:  content,
		state:    player.NewState(content.Start),
		verb:     world.VerbLook,
		rewarded: make(map[string]bool),
		rng:      rand.New(rand.NewSource(seed)),
		eventLog: eventLog,
		logger:   log,
	}
}

// SelectVerb arms a verb for the next interaction.
func (s *Session) SelectVerb(v world.Verb) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !world.IsVerb(v) {
		return s.narrate(CannotDoThat)
	}
	s.verb = v
	return s.narrate(fmt.Sprintf("You decide to %s.", v))
}

// SelectItem holds an inventory item for the next use-interaction.
func (s *Session) SelectItem(id world.ItemID) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.HasItem(id) {
		return s.narrate("You are not carrying that.")
	}
	s.state.SelectedItem = id
	item := s.content.Items[id]
	return s.narrate(fmt.Sprintf("What do you want to use the %s on?", item.Name))
}

// Interact applies the armed verb to a target: a hotspot in the current
// location, an inventory item, or (for walk) a location exit.
func (s *Session) Interact(targetID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dialogue != nil {
		return s.narrate("Finish the conversation first.")
	}
	if s.quiz != nil {
		return s.narrate("Answer the question first.")
	}

	line := s.resolve(s.verb, targetID)
	metrics.ActionsResolved.WithLabelValues(string(s.verb)).Inc()
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeAction,
		Verb:      string(s.verb),
		TargetID:  targetID,
		Narrative: line,
		GameDay:   s.state.Day,
	})
	return s.narrate(line)
}

// BankingAction performs a deposit or withdrawal. Requires an account.
func (s *Session) BankingAction(kind string, amount float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Flags.Has(player.FlagHasBank) {
		return s.narrate("You do not have a bank account yet. Talk to the teller.")
	}

	var line string
	switch kind {
	case "deposit":
		line, _ = s.state.Ledger.Deposit(amount)
	case "withdraw":
		line, _ = s.state.Ledger.Withdraw(amount)
	default:
		line = CannotDoThat
	}
	s.recordLedgerOp(kind, line)
	return s.narrate(line)
}

// InvestmentAction buys a holding of the given type with cash.
func (s *Session) InvestmentAction(kind string, amount float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, _ := s.state.Ledger.Invest(kind, amount, s.state.Day)
	s.recordLedgerOp("invest", line)
	return s.narrate(line)
}

// DebtAction pays down or takes on debt. Borrowing is gated on credit
// knowledge here, at the resolver layer, not inside the ledger operation.
func (s *Session) DebtAction(kind string, amount float64) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var line string
	switch kind {
	case "pay":
		var cleared, ok bool
		line, cleared, ok = s.state.Ledger.PayDebt(amount)
		if ok && cleared {
			s.state.Flags.Set(player.FlagPaidDebt)
		}
	case "borrow":
		if !s.state.Flags.Has(player.FlagHasCreditKnowledge) {
			line = "The credit terminal flashes red. You should learn how credit works first."
			break
		}
		var ok bool
		line, ok = s.state.Ledger.Borrow(amount)
		if ok {
			// Debt-tied flag: new debt revokes the paid-off achievement.
			s.state.Flags.Clear(player.FlagPaidDebt)
		}
	default:
		line = CannotDoThat
	}
	s.recordLedgerOp(kind, line)
	return s.narrate(line)
}

// AdvanceDay runs one day tick: settlement, compounding, the weekly draw, and
// the win check.
func (s *Session) AdvanceDay() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.narrate(s.advanceDay())
}

// Day returns the current day counter.
func (s *Session) Day() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Day
}

func (s *Session) recordLedgerOp(kind, line string) {
	s.eventLog.Append(events.GameEvent{
		SessionID: s.ID,
		Type:      events.EventTypeLedgerOp,
		Verb:      kind,
		Narrative: line,
		GameDay:   s.state.Day,
	})
}

// narrate stores and returns the current narrative line. Callers hold the lock.
func (s *Session) narrate(line string) string {
	s.lastLine = line
	return line
}
