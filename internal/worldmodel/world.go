package worldmodel

import (
	"fmt"
	"math/rand"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
)

// Triggers, scripted actions, goals, and the scheduler event queue live in
// their own packages (internal/trigger, internal/action, internal/goal,
// internal/scheduler) to keep this package free of a dependency cycle
// with the trigger engine; AmbleWorld does not hold them — the content
// loader's World and the turn loop do.

// AmbleWorld is the single mutable value the turn loop owns: every room,
// item, NPC, and the player, keyed by id.
type AmbleWorld struct {
	Version   string
	Rooms     map[ids.Id]*Room
	Items     map[ids.Id]*Item
	Npcs      map[ids.Id]*Npc
	Player    *Player
	TurnCount int
	MaxScore  int

	// RNG is the single source of randomness for the whole session:
	// spinners, chance conditions, and random NPC movement all draw from
	// it so that a seeded world replays identically.
	RNG *rand.Rand
}

// NewEmptyWorld returns a world with empty entity collections and an
// unseeded deterministic RNG source(seed 0); callers that need
// reproducibility should call SeedRNG explicitly.
func NewEmptyWorld(version string) *AmbleWorld {
	return &AmbleWorld{
		Version: version,
		Rooms:   make(map[ids.Id]*Room),
		Items:   make(map[ids.Id]*Item),
		Npcs:    make(map[ids.Id]*Npc),
		RNG:     rand.New(rand.NewSource(0)),
	}
}

// SeedRNG replaces the world's RNG source with one seeded from seed.
func (w *AmbleWorld) SeedRNG(seed int64) {
	w.RNG = rand.New(rand.NewSource(seed))
}

// PlayerRoom returns the room the player currently occupies, or nil if
// the player is not in a room (e.g. mid-transition or Nowhere).
func (w *AmbleWorld) PlayerRoom() *Room {
	roomID, ok := w.Player.Location.UnwrapRoom()
	if !ok {
		return nil
	}
	return w.Rooms[roomID]
}

// Holder returns the ItemHolder addressed by loc, or nil if loc is
// Nowhere or names an entity that doesn't exist (e.g. a dangling
// reference after corrupt content).
func (w *AmbleWorld) Holder(loc Location) ItemHolder {
	switch loc.Kind {
	case LocationRoom:
		if r, ok := w.Rooms[loc.RoomID]; ok {
			return r
		}
	case LocationItem:
		if i, ok := w.Items[loc.ContainerID]; ok {
			return i
		}
	case LocationNpc:
		if n, ok := w.Npcs[loc.NpcID]; ok {
			return n
		}
	case LocationInventory:
		return w.Player
	}
	return nil
}

// MoveItem relocates item to newLoc, updating the old holder's contents,
// the new holder's contents, and the item's own Location, in that order
// so there is no window where the item is missing from every index or
// present in two at once from an external observer's point of view
// (Go's single-threaded execution makes this ordering a documentation
// aid, not a concurrency requirement, but trigger actions that inspect
// world state mid-dispatch still see it respected).
func (w *AmbleWorld) MoveItem(itemID ids.Id, newLoc Location) error {
	item, ok := w.Items[itemID]
	if !ok {
		return fmt.Errorf("move item: unknown item %s", itemID)
	}
	if old := w.Holder(item.Location); old != nil {
		old.RemoveItem(itemID)
	}
	switch newLoc.Kind {
	case LocationInventory:
		item.SetLocationInventory()
	case LocationRoom:
		item.SetLocationRoom(newLoc.RoomID)
	case LocationItem:
		item.SetLocationItem(newLoc.ContainerID)
	case LocationNpc:
		item.SetLocationNpc(newLoc.NpcID)
	default:
		item.Location = Nowhere()
	}
	if nh := w.Holder(item.Location); nh != nil {
		nh.AddItem(itemID)
	}
	return nil
}

// PlacePass runs the post-load placement described by the loader's
// two-phase build: every entity's declared Location is the authoritative
// source of truth, and this pass populates the derived contents/inventory
// indexes from it, in the order required for nested containers to
// resolve correctly:
//
//  1. items located Item(container) → into that container's contents
//  2. items located Room(room)      → into that room's contents
//  3. items located Npc(npc)        → into that NPC's inventory
//  4. items located Inventory       → into the player
//  5. NPCs located Room(room)       → into that room's npcs set
//
// An NPC whose location is anything other than Room or Nowhere is a
// fatal load error.
func (w *AmbleWorld) PlacePass() error {
	for id, item := range w.Items {
		if item.Location.Kind != LocationItem {
			continue
		}
		container, ok := w.Items[item.Location.ContainerID]
		if !ok {
			return fmt.Errorf("placement: item %s located in unknown container %s", id, item.Location.ContainerID)
		}
		if !container.IsContainer() {
			return fmt.Errorf("placement: item %s located in non-container item %s", id, item.Location.ContainerID)
		}
		container.AddItem(id)
	}
	for id, item := range w.Items {
		if item.Location.Kind != LocationRoom {
			continue
		}
		room, ok := w.Rooms[item.Location.RoomID]
		if !ok {
			return fmt.Errorf("placement: item %s located in unknown room %s", id, item.Location.RoomID)
		}
		room.AddItem(id)
	}
	for id, item := range w.Items {
		if item.Location.Kind != LocationNpc {
			continue
		}
		npc, ok := w.Npcs[item.Location.NpcID]
		if !ok {
			return fmt.Errorf("placement: item %s located on unknown npc %s", id, item.Location.NpcID)
		}
		npc.AddItem(id)
	}
	for id, item := range w.Items {
		if item.Location.Kind != LocationInventory {
			continue
		}
		if w.Player == nil {
			return fmt.Errorf("placement: item %s located in inventory but no player loaded", id)
		}
		w.Player.AddItem(id)
	}
	for id, npc := range w.Npcs {
		switch npc.Location.Kind {
		case LocationNowhere:
			continue
		case LocationRoom:
			room, ok := w.Rooms[npc.Location.RoomID]
			if !ok {
				return fmt.Errorf("placement: npc %s located in unknown room %s", id, npc.Location.RoomID)
			}
			room.AddNpc(id)
		default:
			return fmt.Errorf("placement: npc %s has an invalid location (must be Room or Nowhere)", id)
		}
	}
	return nil
}
