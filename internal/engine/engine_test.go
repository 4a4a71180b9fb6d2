package engine

import (
	"testing"

	"github.com/finlit-games/financial-island/server/internal/domain/dialogue"
	"github.com/finlit-games/financial-island/server/internal/domain/effect"
	"github.com/finlit-games/financial-island/server/internal/domain/player"
	"github.com/finlit-games/financial-island/server/internal/domain/quiz"
	"github.com/finlit-games/financial-island/server/internal/domain/world"
	"github.com/finlit-games/financial-island/server/internal/events"
	"github.com/finlit-games/financial-island/server/internal/platform/logger"
)

// Fixture world: a street with a chest, a sign, a door, a hermit to talk to,
// and a vault that only appears once the door is open.
const (
	testStreet world.LocationID = "street"
	testCabin  world.LocationID = "cabin"

	testChest  world.HotspotID = "chest"
	testSign   world.HotspotID = "sign"
	testDoor   world.HotspotID = "door"
	testVault  world.HotspotID = "vault"
	testHermit world.HotspotID = "hermit"

	testCoin world.ItemID = "coin"
	testKey  world.ItemID = "key"

	testFlagDoorOpen  player.Flag = "doorOpen"
	testFlagMetHermit player.Flag = "metHermit"
	testFlagPassed    player.Flag = "passedArithmetic"
)

func testContent() Content {
	return Content{
		Start: testStreet,
		Locations: map[world.LocationID]world.Location{
			testStreet: {
				ID:          testStreet,
				Name:        "Street",
				Description: "A quiet street.",
				Exits:       []world.Exit{{To: testCabin, Label: "Cabin"}},
				Hotspots:    []world.HotspotID{testChest, testSign, testDoor, testVault, testHermit},
			},
			testCabin: {
				ID:          testCabin,
				Name:        "Cabin",
				Description: "A cosy cabin.",
				Exits:       []world.Exit{{To: testStreet, Label: "Street"}},
			},
		},
		Hotspots: map[world.HotspotID]world.Hotspot{
			testChest: {
				ID:          testChest,
				Name:        "Chest",
				Description: "A wooden chest.",
				Yields:      testCoin,
				Describe: map[world.Verb]string{
					world.VerbTake: "You fish a coin out of the chest.",
				},
			},
			testSign: {
				ID:          testSign,
				Name:        "Sign",
				Description: "A weathered sign.",
				Describe: map[world.Verb]string{
					world.VerbRead: "Welcome to the street.",
				},
			},
			testDoor: {
				ID:          testDoor,
				Name:        "Door",
				Description: "A locked door.",
			},
			testVault: {
				ID:          testVault,
				Name:        "Vault",
				Description: "An open vault.",
				Visible:     world.Visibility{RequiresFlag: string(testFlagDoorOpen)},
			},
			testHermit: {
				ID:          testHermit,
				Name:        "Hermit",
				Description: "A hermit with opinions.",
				Character:   "hermit",
			},
		},
		Items: map[world.ItemID]world.Item{
			testCoin: {ID: testCoin, Name: "coin", Description: "A dull coin."},
			testKey:  {ID: testKey, Name: "key", Description: "A heavy key."},
		},
		HotspotCommands: map[world.HotspotID]map[world.Verb]Command{
			testDoor: {
				world.VerbUse: func(s *player.State) (string, []effect.Effect) {
					if s.Flags.Has(testFlagDoorOpen) {
						return "The door is already open.", nil
					}
					return "You push the door open.", []effect.Effect{
						effect.SetFlag(string(testFlagDoorOpen)),
					}
				},
			},
		},
		HotspotUseWith: map[world.HotspotID]UseWithCommand{
			testDoor: func(s *player.State, held world.ItemID) (string, []effect.Effect) {
				if held != testKey {
					return "That does not fit the lock.", nil
				}
				return "The key turns with a satisfying clunk.", []effect.Effect{
					effect.SetFlag(string(testFlagDoorOpen)),
					effect.RemoveItem(string(testKey)),
				}
			},
		},
		Dialogues: map[string]dialogue.Tree{
			"hermit": {
				Character: "hermit",
				Name:      "The Hermit",
				Nodes: []dialogue.Node{
					{
						Text: "Few come this way.",
						Responses: []dialogue.Response{
							{Text: "Tell me more.", Next: 1},
							{Text: "Goodbye.", Next: dialogue.End},
						},
					},
					{
						Text: "The street remembers everyone who walks it.",
						Responses: []dialogue.Response{
							{Text: "Farewell.", Next: dialogue.End},
							{Text: "Start over.", Next: 0},
						},
						OnEnd: []effect.Effect{
							effect.SetFlag(string(testFlagMetHermit)),
							effect.Cash(7),
						},
						OnEndText: "The hermit presses seven dollars into your hand.",
					},
				},
			},
		},
		Quizzes: map[string]quiz.Quiz{
			"arithmetic": {
				ID:   "arithmetic",
				Name: "Arithmetic",
				Questions: []quiz.Question{
					{Text: "Two plus two?", Options: []string{"Three", "Four"}, Correct: 1},
					{Text: "Ten minus ten?", Options: []string{"Zero", "Ten"}, Correct: 0},
				},
				Reward: []effect.Effect{
					effect.SetFlag(string(testFlagPassed)),
					effect.Cash(3),
				},
				RewardText:  "The hermit applauds.",
				WrongAnswer: "The hermit frowns.",
			},
		},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(testContent(), events.NewEventLog(nil), logger.NewNop(), 42)
}

// do arms a verb and interacts in one step, the way a client drives the
// session.
func do(s *Session, verb world.Verb, target string) string {
	s.SelectVerb(verb)
	return s.Interact(target)
}
