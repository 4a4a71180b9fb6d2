// Package world defines the static content types for the island: locations,
// hotspots, inventory items, and the verb vocabulary. This package is PURE
// data; interaction handlers live next to the content tables and are wired by
// the engine, so nothing here imports mutable state.
package world

// Verb is one of the fixed interaction vocabulary, selected before a target.
type Verb string

const (
	VerbLook Verb = "look"
	VerbTake Verb = "take"
	VerbUse  Verb = "use"
	VerbTalk Verb = "talk"
	VerbWalk Verb = "walk"
	VerbRead Verb = "read"
)

// Verbs lists the full vocabulary in presentation order.
var Verbs = []Verb{VerbLook, VerbTake, VerbUse, VerbTalk, VerbWalk, VerbRead}

// IsVerb reports whether v is part of the vocabulary.
func IsVerb(v Verb) bool {
	for _, known := range Verbs {
		if v == known {
			return true
		}
	}
	return false
}

type (
	// LocationID keys a location in the content tables.
	LocationID string
	// HotspotID keys an interactive object or character.
	HotspotID string
	// ItemID keys an inventory item definition.
	ItemID string
)

// Exit connects a location to another under a display label.
type Exit struct {
	To    LocationID `json:"to"`
	Label string     `json:"label"`
}

// Location is an immutable place on the island.
type Location struct {
	ID          LocationID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Exits       []Exit     `json:"exits"`
	Hotspots    []HotspotID `json:"hotspots"`
}

// Visibility gates a hotspot on player progress. Zero value means always
// visible. Conditions are data so content stays serializable.
type Visibility struct {
	RequiresFlag string // visible only once this flag is set
	RequiresItem ItemID // visible only while this item is held
	HiddenByFlag string // hidden once this flag is set
}

// Hotspot is a clickable in-world object or character. The Describe table
// carries static narrative per verb; stateful handlers are registered
// separately in the engine's command tables, keeping this struct pure.
type Hotspot struct {
	ID          HotspotID
	Name        string
	Description string
	Visible     Visibility
	Describe    map[Verb]string
	// Character, when set, names the dialogue tree opened by the talk verb.
	Character string
	// Yields, when set, names the item granted by the take verb. Acquisition
	// is idempotent: taking it again runs no handler and changes nothing.
	Yields ItemID
}

// Item is an inventory item definition. Items support a subset of verbs,
// typically look and use; acquisition is idempotent.
type Item struct {
	ID          ItemID
	Name        string
	Description string
	Describe    map[Verb]string
}

// Badge is an achievement unlocked by a progress flag.
type Badge struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}
