// Package worldmodel holds the core entity types — rooms, items, NPCs,
// the player — and the location invariants that bind them together.
package worldmodel

import "github.com/pygmy-twylyte/amble-go/internal/ids"

// LocationKind discriminates the variants of Location.
type LocationKind int

const (
	// LocationNowhere is the zero value: unspawned, not placed anywhere.
	LocationNowhere LocationKind = iota
	LocationRoom
	LocationItem
	LocationNpc
	LocationInventory
)

// Location is a tagged union over where an entity currently is. Exactly
// one of these five shapes is valid at a time; RoomID/ContainerID/NpcID
// are meaningful only for their corresponding Kind.
type Location struct {
	Kind        LocationKind
	RoomID      ids.Id
	ContainerID ids.Id
	NpcID       ids.Id
}

// Nowhere returns the unspawned location.
func Nowhere() Location { return Location{Kind: LocationNowhere} }

// InRoom returns a location inside room.
func InRoom(room ids.Id) Location { return Location{Kind: LocationRoom, RoomID: room} }

// InItem returns a location inside container item.
func InItem(container ids.Id) Location { return Location{Kind: LocationItem, ContainerID: container} }

// InNpc returns a location inside an NPC's inventory.
func InNpc(npc ids.Id) Location { return Location{Kind: LocationNpc, NpcID: npc} }

// InInventory returns the player's inventory location.
func InInventory() Location { return Location{Kind: LocationInventory} }

// IsRoom reports whether l names a room.
func (l Location) IsRoom() bool { return l.Kind == LocationRoom }

// IsNowhere reports whether l is unspawned.
func (l Location) IsNowhere() bool { return l.Kind == LocationNowhere }

// UnwrapRoom returns the room id and true if l is a room location.
func (l Location) UnwrapRoom() (ids.Id, bool) {
	if l.Kind != LocationRoom {
		return ids.Id{}, false
	}
	return l.RoomID, true
}

// Equal reports whether two locations name the same place.
func (l Location) Equal(other Location) bool {
	if l.Kind != other.Kind {
		return false
	}
	switch l.Kind {
	case LocationRoom:
		return l.RoomID == other.RoomID
	case LocationItem:
		return l.ContainerID == other.ContainerID
	case LocationNpc:
		return l.NpcID == other.NpcID
	default:
		return true
	}
}

// Rooms, items, NPCs, and the player all expose ID, Name, Description,
// and Location as plain fields rather than through a common interface:
// Go field access already gives every call site the uniform read surface
// the original's WorldObject trait provided, without a name collision
// between an exported field and a same-named method.

// ItemHolder is implemented by anything that can hold items: rooms,
// container items, NPCs, and the player. Mutators are uniform across all
// four so the placement pass and trigger actions can operate generically.
type ItemHolder interface {
	AddItem(item ids.Id)
	RemoveItem(item ids.Id)
	ContainsItem(item ids.Id) bool
}
