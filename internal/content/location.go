// Package content loads a declarative TOML world description into an
// internal/worldmodel.AmbleWorld plus the trigger/goal/spinner/scoring
// layers the turn loop needs alongside it. Loading is two-phase: every
// raw record is decoded and its authoring token registered in an
// ids.SymbolTable, then a resolve pass turns tokens into ids and a final
// placement pass fills in the derived indexes (room contents, NPC
// inventories, and so on) that worldmodel.AmbleWorld.PlacePass maintains.
package content

import (
	"fmt"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// RawLocation is the TOML table shape used for every entity's starting
// location: exactly one of its keys is present, naming which Location
// variant it resolves to. An absent location (a zero-value RawLocation)
// resolves to Nowhere, the same default applied by the original author's
// loader when no location table is present for scenery that only spawns
// programmatically.
type RawLocation struct {
	Room      string `toml:"Room"`
	Chest     string `toml:"Chest"`
	Npc       string `toml:"Npc"`
	Inventory bool   `toml:"Inventory"`
}

// resolveLocation converts a RawLocation into a worldmodel.Location,
// looking up whichever token is present in symbols. Exactly one of
// Room/Chest/Npc/Inventory is expected to be set; if more than one is,
// Room takes precedence, then Chest, then Npc, then Inventory, mirroring
// the field-priority checks in the original loader's resolve_location.
func resolveLocation(loc RawLocation, symbols *ids.SymbolTable) (worldmodel.Location, error) {
	switch {
	case loc.Room != "":
		id, ok := symbols.Rooms[loc.Room]
		if !ok {
			return worldmodel.Location{}, fmt.Errorf("room token %q not found in symbol table", loc.Room)
		}
		return worldmodel.InRoom(id), nil
	case loc.Chest != "":
		id, ok := symbols.Items[loc.Chest]
		if !ok {
			return worldmodel.Location{}, fmt.Errorf("chest token %q not found in symbol table", loc.Chest)
		}
		return worldmodel.InItem(id), nil
	case loc.Npc != "":
		id, ok := symbols.Characters[loc.Npc]
		if !ok {
			return worldmodel.Location{}, fmt.Errorf("npc token %q not found in symbol table", loc.Npc)
		}
		return worldmodel.InNpc(id), nil
	case loc.Inventory:
		return worldmodel.InInventory(), nil
	default:
		return worldmodel.Nowhere(), nil
	}
}
