package worldmodel

import "github.com/pygmy-twylyte/amble-go/internal/ids"

// Exit connects one room to another, optionally gated by flags/items.
type Exit struct {
	To             ids.Id
	Hidden         bool
	Locked         bool
	RequiredFlags  map[string]bool
	RequiredItems  map[ids.Id]bool
	BarredMessage  string
}

// NewExit returns an unlocked, unhidden exit to room.
func NewExit(to ids.Id) Exit {
	return Exit{
		To:            to,
		RequiredFlags: make(map[string]bool),
		RequiredItems: make(map[ids.Id]bool),
	}
}

// OverlayConditionKind discriminates OverlayCondition.
type OverlayConditionKind int

const (
	OverlayFlagSet OverlayConditionKind = iota
	OverlayFlagUnset
	OverlayItemPresent
	OverlayItemAbsent
)

// OverlayCondition gates whether a RoomOverlay's text is shown.
type OverlayCondition struct {
	Kind   OverlayConditionKind
	Flag   string
	ItemID ids.Id
}

// RoomOverlay is a conditional fragment appended to a room's description.
type RoomOverlay struct {
	Condition OverlayCondition
	Text      string
}

// Applies reports whether overlay's condition currently holds for room
// roomID, given the player's flags and the overlay item's location.
func (o RoomOverlay) Applies(roomID ids.Id, playerFlags map[string]Flag, items map[ids.Id]*Item) bool {
	switch o.Condition.Kind {
	case OverlayFlagSet:
		_, ok := playerFlags[o.Condition.Flag]
		return ok
	case OverlayFlagUnset:
		_, ok := playerFlags[o.Condition.Flag]
		return !ok
	case OverlayItemPresent:
		item, ok := items[o.Condition.ItemID]
		if !ok {
			return false
		}
		room, isRoom := item.Location.UnwrapRoom()
		return isRoom && room == roomID
	case OverlayItemAbsent:
		item, ok := items[o.Condition.ItemID]
		if !ok {
			return true
		}
		room, isRoom := item.Location.UnwrapRoom()
		return !(isRoom && room == roomID)
	default:
		return false
	}
}

// Room is a visitable location in the world.
type Room struct {
	ID              ids.Id
	Symbol          string
	Name            string
	BaseDescription string
	Overlays        []RoomOverlay
	Location        Location // always Nowhere; rooms are not placed inside anything
	Visited         bool
	Exits           map[string]Exit // keyed by direction
	Contents        map[ids.Id]bool
	Npcs            map[ids.Id]bool
}

// NewRoom returns a Room with its collections initialized.
func NewRoom(id ids.Id, symbol, name, description string) *Room {
	return &Room{
		ID:              id,
		Symbol:          symbol,
		Name:            name,
		BaseDescription: description,
		Location:        Nowhere(),
		Exits:           make(map[string]Exit),
		Contents:        make(map[ids.Id]bool),
		Npcs:            make(map[ids.Id]bool),
	}
}

func (r *Room) AddItem(itemID ids.Id)    { r.Contents[itemID] = true }
func (r *Room) RemoveItem(itemID ids.Id) { delete(r.Contents, itemID) }
func (r *Room) ContainsItem(itemID ids.Id) bool { return r.Contents[itemID] }

func (r *Room) AddNpc(npcID ids.Id)    { r.Npcs[npcID] = true }
func (r *Room) RemoveNpc(npcID ids.Id) { delete(r.Npcs, npcID) }
func (r *Room) HasNpc(npcID ids.Id) bool { return r.Npcs[npcID] }
