package content

import (
	"fmt"

	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/ledger"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/engine"
)

// Hotspot ids.
const (
	hsNoticeBoard    world.HotspotID = "notice_board"
	hsFountain       world.HotspotID = "fountain"
	hsCoach          world.HotspotID = "budget_coach"
	hsTeller         world.HotspotID = "bank_teller"
	hsATM            world.HotspotID = "atm"
	hsCreditTerminal world.HotspotID = "credit_terminal"
	hsRetirementDesk world.HotspotID = "retirement_desk"
	hsResumeWorkshop world.HotspotID = "resume_workshop"
	hsJobBoard       world.HotspotID = "job_board"
	hsGrocer         world.HotspotID = "grocer"
	hsLibrarian      world.HotspotID = "librarian"
	hsFinanceBook    world.HotspotID = "finance_book"
	hsBroker         world.HotspotID = "broker"
	hsMarketScreen   world.HotspotID = "market_screen"
	hsBrochureRack   world.HotspotID = "brochure_rack"
	hsPiggyBankShelf world.HotspotID = "piggy_bank_shelf"
	hsPlannerShelf   world.HotspotID = "planner_shelf"
	hsBed            world.HotspotID = "bed"
)

// resumeWorkshopCost is the sign-up fee for the resume workshop.
const resumeWorkshopCost = 5.0

func hotspots() map[world.HotspotID]world.Hotspot {
	all := []world.Hotspot{
		{
			ID:          hsNoticeBoard,
			Name:        "notice board",
			Description: "Community announcements, half of them about overdue loans.",
			Describe: map[world.Verb]string{
				world.VerbLook: "Flyers flutter in the breeze. One warns: \"Debt compounds daily. So does interest on savings, just slower.\"",
				world.VerbRead: "\"Town tip: keep three months of expenses in the bank before you call yourself safe.\"",
			},
		},
		{
			ID:          hsFountain,
			Name:        "fountain",
			Description: "Coins glitter at the bottom. Other people's wishes.",
			Describe: map[world.Verb]string{
				world.VerbLook: "You count the coins in the fountain. Fishing them out would be a bad look.",
			},
		},
		{
			ID:          hsCoach,
			Name:        "Maria, budgeting coach",
			Description: "Maria runs a free budgeting stand by the fountain.",
			Character:   charCoach,
			Describe: map[world.Verb]string{
				world.VerbLook: "Maria waves you over, clipboard at the ready.",
			},
		},
		{
			ID:          hsTeller,
			Name:        "bank teller",
			Description: "Mr. Lee has worked this window for thirty years.",
			Character:   charBanker,
			Describe: map[world.Verb]string{
				world.VerbLook: "Mr. Lee polishes his glasses and smiles the patient smile of a man who counts money for a living.",
			},
		},
		{
			ID:          hsATM,
			Name:        "ATM",
			Description: "A cash machine with a sun-faded screen.",
		},
		{
			ID:          hsCreditTerminal,
			Name:        "credit terminal",
			Description: "A self-service loan kiosk. The fine print scrolls forever.",
		},
		{
			ID:          hsRetirementDesk,
			Name:        "retirement desk",
			Description: "A quiet corner desk with a bowl of complimentary mints.",
		},
		{
			ID:          hsResumeWorkshop,
			Name:        "resume workshop",
			Description: "A sign-up sheet for today's resume workshop. Five dollars, guaranteed job placement.",
			Describe: map[world.Verb]string{
				world.VerbLook: "The sheet promises: \"Pay $5, leave employed.\" Bold claim, but the reviews on the wall agree.",
			},
		},
		{
			ID:          hsJobBoard,
			Name:        "job board",
			Description: "Openings pinned three layers deep.",
			Describe: map[world.Verb]string{
				world.VerbLook: "Dockhand, clerk, lighthouse keeper. All of them want a resume.",
				world.VerbRead: "Most listings pay around $15 a day. Commuting will cost you, though.",
			},
		},
		{
			ID:          hsGrocer,
			Name:        "Ivy the grocer",
			Description: "Ivy stacks oranges into an improbable pyramid.",
			Character:   charGrocer,
			Describe: map[world.Verb]string{
				world.VerbLook: "Ivy's stall is the busiest in the market, and she knows everyone's business.",
			},
		},
		{
			ID:          hsLibrarian,
			Name:        "Rose the librarian",
			Description: "Rose guards the finance section like a dragon guards gold.",
			Character:   charLibrarian,
			Describe: map[world.Verb]string{
				world.VerbLook: "Rose peers over her glasses, daring you to ask a good question.",
			},
		},
		{
			ID:          hsFinanceBook,
			Name:        "finance book",
			Description: "\"The Island Guide to Not Being Broke\", 3rd edition.",
			Describe: map[world.Verb]string{
				world.VerbLook: "The spine is cracked from a hundred readers. Promising.",
				world.VerbRead: "\"Rule one: spend less than you earn. Rule two: make the difference work for you. The rest is detail.\"",
			},
		},
		{
			ID:          hsBroker,
			Name:        "Sam the broker",
			Description: "Sam watches three screens and still notices you walk in.",
			Character:   charBroker,
			Describe: map[world.Verb]string{
				world.VerbLook: "Sam's tie is loud, but his track record is louder.",
			},
		},
		{
			ID:          hsMarketScreen,
			Name:        "market screen",
			Description: "Tickers crawl across the wall in green and red.",
			Describe: map[world.Verb]string{
				world.VerbLook: "Numbers rise and fall. Sam insists the trick is not to blink... or to look at all, some years.",
			},
		},
		{
			ID:          hsBrochureRack,
			Name:        "brochure rack",
			Description: "Free reading material about making money slowly.",
			Yields:      itemBrochure,
			Describe: map[world.Verb]string{
				world.VerbLook: "A rack of brochures. \"Compound Interest and You\" catches your eye.",
				world.VerbTake: "You take an investing brochure. It is free, your favorite price.",
			},
		},
		{
			ID:          hsPiggyBankShelf,
			Name:        "piggy bank",
			Description: "Your childhood piggy bank sits on the shelf, judging your spending.",
			Yields:      itemPiggyBank,
			Describe: map[world.Verb]string{
				world.VerbLook: "The pig has seen you through many birthdays. It rattles faintly.",
				world.VerbTake: "You pocket the piggy bank. For emergencies, obviously.",
			},
		},
		{
			ID:          hsPlannerShelf,
			Name:        "budget planner",
			Description: "A blank budget planner you bought in an optimistic moment.",
			Yields:      itemBudgetPlanner,
			Describe: map[world.Verb]string{
				world.VerbLook: "Still blank. Optimism only gets a planner so far.",
				world.VerbTake: "You grab the budget planner. Today is the day, probably.",
			},
		},
		{
			ID:          hsBed,
			Name:        "bed",
			Description: "Your bed. The cheapest luxury on the island.",
			Describe: map[world.Verb]string{
				world.VerbLook: "The covers are made. A rare personal victory.",
				world.VerbUse:  "Not yet. The island rewards people who finish their errands first.",
			},
		},
	}

	byID := make(map[world.HotspotID]world.Hotspot, len(all))
	for _, h := range all {
		byID[h.ID] = h
	}
	return byID
}

func hotspotCommands() map[world.HotspotID]map[world.Verb]engine.Command {
	return map[world.HotspotID]map[world.Verb]engine.Command{
		hsResumeWorkshop: {
			world.VerbTake: signUpForWorkshop,
			world.VerbUse:  signUpForWorkshop,
		},
		hsATM: {
			world.VerbUse: func(s *player.State) (string, []effect.Effect) {
				if !s.Flags.Has(player.FlagHasBank) {
					return "The ATM asks for a card you do not have. The teller can open you an account.", nil
				}
				return fmt.Sprintf("The ATM flickers to life. Balance: $%.2f.", s.Ledger.BankBalance), nil
			},
		},
		hsCreditTerminal: {
			world.VerbUse: func(s *player.State) (string, []effect.Effect) {
				if !s.Flags.Has(player.FlagHasCreditKnowledge) {
					return "The terminal lists rates and terms you do not understand yet. Rose at the library could fix that.", nil
				}
				if s.Ledger.Debt > 0 {
					return fmt.Sprintf("The terminal shows your outstanding debt: $%.2f, growing daily.", s.Ledger.Debt), nil
				}
				return "The terminal offers loan options. Borrow only what you can pay back.", nil
			},
		},
		hsRetirementDesk: {
			world.VerbUse: func(s *player.State) (string, []effect.Effect) {
				if s.Flags.Has(player.FlagHasRetirementPlan) {
					return "Your retirement account is already open and quietly growing.", nil
				}
				if s.Ledger.Cash < ledger.RetirementCost {
					return fmt.Sprintf("Opening a retirement account takes $%.0f up front. You are short.", ledger.RetirementCost), nil
				}
				return "You sign the paperwork and fund your retirement account. Future you nods in approval.",
					[]effect.Effect{
						effect.Cash(-ledger.RetirementCost),
						effect.AddInvestment("retirement", ledger.RetirementCost),
						effect.SetFlag(string(player.FlagHasRetirementPlan)),
					}
			},
		},
	}
}

// signUpForWorkshop is the one-shot job acquisition: pay the fee, gain a job,
// income, and a commuting expense.
func signUpForWorkshop(s *player.State) (string, []effect.Effect) {
	if s.Flags.Has(player.FlagHasJob) {
		return "You already have a job. The workshop organizer gives you a thumbs up.", nil
	}
	if s.Ledger.Cash < resumeWorkshopCost {
		return fmt.Sprintf("The workshop costs $%.0f. You will have to scrape that together first.", resumeWorkshopCost), nil
	}
	return "You pay $5, polish your resume, and walk out with a job at the docks. $15 a day, minus the commute.",
		[]effect.Effect{
			effect.Cash(-resumeWorkshopCost),
			effect.SetFlag(string(player.FlagHasJob)),
			effect.Income(15),
			effect.AddExpense("Transportation to Work", 3),
		}
}

func hotspotUseWith() map[world.HotspotID]engine.UseWithCommand {
	return map[world.HotspotID]engine.UseWithCommand{
		// Cracking the piggy bank at the ATM converts it into spendable cash.
		hsATM: func(s *player.State, held world.ItemID) (string, []effect.Effect) {
			if held != itemPiggyBank {
				return "The ATM has no slot for that.", nil
			}
			return "You crack open the piggy bank over the ATM's coin tray. Two dollars, mostly in nickels.",
				[]effect.Effect{
					effect.RemoveItem(string(itemPiggyBank)),
					effect.Cash(2),
				}
		},
	}
}
