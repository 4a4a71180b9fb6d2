package content

import "github.com/finlit-games/financial-island/server/internal/domain/world"

// Location ids.
const (
	locTownSquare world.LocationID = "town_square"
	locBank       world.LocationID = "bank"
	locJobCenter  world.LocationID = "job_center"
	locMarket     world.LocationID = "market"
	locLibrary    world.LocationID = "library"
	locBroker     world.LocationID = "broker_office"
	locHome       world.LocationID = "home"
)

// locStart is where every new game begins.
const locStart = locTownSquare

func locations() map[world.LocationID]world.Location {
	all := []world.Location{
		{
			ID:          locTownSquare,
			Name:        "Town Square",
			Description: "The heart of Financial Island. A fountain burbles in the middle, and every road on the island meets here.",
			Exits: []world.Exit{
				{To: locBank, Label: "Island Bank"},
				{To: locJobCenter, Label: "Job Center"},
				{To: locMarket, Label: "Market"},
				{To: locLibrary, Label: "Library"},
				{To: locBroker, Label: "Broker's Office"},
				{To: locHome, Label: "Home"},
			},
			Hotspots: []world.HotspotID{hsNoticeBoard, hsFountain, hsCoach},
		},
		{
			ID:          locBank,
			Name:        "Island Bank",
			Description: "Cool marble floors and the soft clatter of a coin counter. A teller waits behind the glass.",
			Exits: []world.Exit{
				{To: locTownSquare, Label: "Town Square"},
			},
			Hotspots: []world.HotspotID{hsTeller, hsATM, hsCreditTerminal, hsRetirementDesk},
		},
		{
			ID:          locJobCenter,
			Name:        "Job Center",
			Description: "Corkboards full of openings and a faint smell of fresh coffee. People here want you employed.",
			Exits: []world.Exit{
				{To: locTownSquare, Label: "Town Square"},
			},
			Hotspots: []world.HotspotID{hsResumeWorkshop, hsJobBoard},
		},
		{
			ID:          locMarket,
			Name:        "Market",
			Description: "Stalls of fruit, fish, and haggling. Money moves fast here, mostly away from you.",
			Exits: []world.Exit{
				{To: locTownSquare, Label: "Town Square"},
			},
			Hotspots: []world.HotspotID{hsGrocer},
		},
		{
			ID:          locLibrary,
			Name:        "Library",
			Description: "Shelves of well-thumbed books. The finance section looks suspiciously popular.",
			Exits: []world.Exit{
				{To: locTownSquare, Label: "Town Square"},
			},
			Hotspots: []world.HotspotID{hsLibrarian, hsFinanceBook},
		},
		{
			ID:          locBroker,
			Name:        "Broker's Office",
			Description: "A wall of flickering tickers and a desk stacked with prospectuses.",
			Exits: []world.Exit{
				{To: locTownSquare, Label: "Town Square"},
			},
			Hotspots: []world.HotspotID{hsBroker, hsMarketScreen, hsBrochureRack},
		},
		{
			ID:          locHome,
			Name:        "Home",
			Description: "Your little house by the shore. Modest, but the rent is paid and the view is free.",
			Exits: []world.Exit{
				{To: locTownSquare, Label: "Town Square"},
			},
			Hotspots: []world.HotspotID{hsPiggyBankShelf, hsPlannerShelf, hsBed},
		},
	}

	byID := make(map[world.LocationID]world.Location, len(all))
	for _, loc := range all {
		byID[loc.ID] = loc
	}
	return byID
}
