// Package main - island-sim
// Headless scripted playthrough of Financial Island. It plays a full
// early-game line (job, quizzes, bank account, investing, debt) and then
// fast-forwards the clock, checking ledger and flag invariants at each step.
package main

import (
	"fmt"
	"os"

	"github.com/finlit-games/financial-island/server/internal/content"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/engine"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/logger"
)

const simDays = 60

type check struct {
	name   string
	passed bool
}

type sim struct {
	session *engine.Session
	results []check
}

func (s *sim) expect(name string, ok bool) {
	s.results = append(s.results, check{name: name, passed: ok})
	mark := "✅"
	if !ok {
		mark = "❌"
	}
	fmt.Printf("   %s %s\n", mark, name)
}

func (s *sim) do(verb world.Verb, target string) string {
	s.session.SelectVerb(verb)
	return s.session.Interact(target)
}

func main() {
	fmt.Println("🏝️  FINANCIAL ISLAND - SCRIPTED PLAYTHROUGH")
	fmt.Println("==========================================")

	log := logger.NewNop()
	eventLog := events.NewEventLog(nil)
	s := &sim{session: engine.NewSession(content.Island(), eventLog, log, 1)}

	fmt.Println("\n🧪 Act 1: getting a job")
	s.do(world.VerbWalk, "job_center")
	s.do(world.VerbUse, "resume_workshop")
	snap := s.session.Snapshot()
	s.expect("workshop sets hasJob", snap.Flags[string(player.FlagHasJob)])
	s.expect("workshop costs 5 cash", snap.Ledger.Cash == 5)
	s.expect("workshop grants daily income", snap.Ledger.DailyIncome == 15)

	fmt.Println("\n🧪 Act 2: budgeting quiz")
	s.do(world.VerbWalk, "town_square")
	s.do(world.VerbTalk, "budget_coach")
	s.session.SelectDialogueResponse(0)
	s.session.SelectDialogueResponse(0)
	s.session.AnswerQuiz("budgeting", 0)
	s.session.AnswerQuiz("budgeting", 1)
	s.session.AnswerQuiz("budgeting", 2)
	snap = s.session.Snapshot()
	s.expect("quiz sets hasBudget", snap.Flags[string(player.FlagHasBudget)])
	s.expect("budget computed from income", snap.Budget != nil && snap.Budget.Savings > 2.99 && snap.Budget.Savings < 3.01)

	fmt.Println("\n🧪 Act 3: opening an account")
	s.do(world.VerbWalk, "bank")
	s.do(world.VerbTalk, "bank_teller")
	s.session.SelectDialogueResponse(0)
	s.session.SelectDialogueResponse(0)
	snap = s.session.Snapshot()
	s.expect("teller opens account", snap.Flags[string(player.FlagHasBank)])

	fmt.Println("\n🧪 Act 4: credit and investing lessons")
	s.do(world.VerbWalk, "town_square")
	s.do(world.VerbWalk, "library")
	s.do(world.VerbTalk, "librarian")
	s.session.SelectDialogueResponse(0)
	s.session.SelectDialogueResponse(0)
	s.session.AnswerQuiz("credit", 1)
	s.session.AnswerQuiz("credit", 0)
	s.session.AnswerQuiz("credit", 2)
	s.do(world.VerbWalk, "town_square")
	s.do(world.VerbWalk, "broker_office")
	s.do(world.VerbTalk, "broker")
	s.session.SelectDialogueResponse(0)
	s.session.SelectDialogueResponse(0)
	s.session.AnswerQuiz("investing", 0)
	s.session.AnswerQuiz("investing", 1)
	s.session.AnswerQuiz("investing", 2)
	snap = s.session.Snapshot()
	s.expect("librarian quiz teaches credit", snap.Flags[string(player.FlagHasCreditKnowledge)])
	s.expect("broker quiz teaches investing", snap.Flags[string(player.FlagHasInvestmentKnowledge)])

	fmt.Println("\n🧪 Act 5: money in motion")
	for i := 0; i < 10; i++ {
		s.session.AdvanceDay()
	}
	s.session.BankingAction("deposit", 50)
	s.session.InvestmentAction("index_fund", 25)
	s.session.DebtAction("borrow", 20)
	s.session.DebtAction("pay", 20.1)
	snap = s.session.Snapshot()
	s.expect("deposit moved cash to bank", snap.Ledger.BankBalance >= 50)
	s.expect("investment principal recorded", len(snap.Ledger.Investments) == 1)
	s.expect("debt paid off sets hasPaidDebt", snap.Flags[string(player.FlagPaidDebt)])
	s.expect("debt cleared", snap.Ledger.Debt == 0)

	fmt.Println("\n🧪 Act 6: fast-forward")
	for day := s.session.Day(); day <= simDays; day++ {
		s.session.AdvanceDay()
		snap = s.session.Snapshot()
		if snap.Ledger.Cash < 0 {
			s.expect(fmt.Sprintf("cash non-negative on day %d", snap.Day), false)
		}
		if snap.Ledger.CreditScore < 300 || snap.Ledger.CreditScore > 850 {
			s.expect(fmt.Sprintf("credit score in range on day %d", snap.Day), false)
		}
	}
	snap = s.session.Snapshot()
	s.expect(fmt.Sprintf("clock reached day %d", snap.Day), snap.Day > simDays)
	s.expect("investments grew past principal", snap.Ledger.Investments[0].CurrentValue > snap.Ledger.Investments[0].Principal)
	s.expect("job survived the fast-forward", snap.Flags[string(player.FlagHasJob)])

	fmt.Println("\n📒 FINAL LEDGER")
	fmt.Printf("   Day %d | cash %.2f | bank %.2f | debt %.2f | credit %d\n",
		snap.Day, snap.Ledger.Cash, snap.Ledger.BankBalance, snap.Ledger.Debt, snap.Ledger.CreditScore)
	fmt.Printf("   Badges: %d | won: %v\n", len(snap.Badges), snap.Won)

	passed, failed := 0, 0
	for _, r := range s.results {
		if r.passed {
			passed++
		} else {
			failed++
		}
	}

	fmt.Println("\n📊 SUMMARY")
	fmt.Printf("   ✅ Passed: %d\n", passed)
	fmt.Printf("   ❌ Failed: %d\n", failed)

	if failed > 0 {
		fmt.Println("\n⚠️  The island needs rebalancing")
		os.Exit(1)
	}
	fmt.Println("\n✅ The island is ready for players")
}
