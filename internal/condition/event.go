// Package condition implements the trigger engine's predicate vocabulary:
// event conditions, matched by equality against the turn's observed event
// list, and state conditions, evaluated as pure functions of world state.
package condition

import "github.com/pygmy-twylyte/amble-go/internal/ids"

// EventKind enumerates the observable outcomes a command handler may
// report for the current turn. This list is closed; the trigger engine's
// event-condition matching is exhaustive over it.
type EventKind int

const (
	EventEnter EventKind = iota
	EventTake
	EventUseItemOnItem
	EventGiveToNpc
	EventTalkToNpc
	EventOpen
	EventUnlock
	EventDrop
	EventLeave
	EventInsert
	EventTakeFromNpc
)

// Event is one outcome observed during the current turn's command
// handling. Only the fields relevant to Kind are meaningful.
type Event struct {
	Kind EventKind

	RoomID      ids.Id // Enter, Leave
	ItemID      ids.Id // Take, Drop, Insert, TakeFromNpc, GiveToNpc (item), UseItemOnItem (tool)
	TargetID    ids.Id // UseItemOnItem (target item), Insert (container)
	NpcID       ids.Id // GiveToNpc, TalkToNpc, TakeFromNpc
	Interaction int    // UseItemOnItem: worldmodel.ItemInteraction, kept as int to avoid importing worldmodel here
}

// Equal reports whether two events are equal under the trigger engine's
// exact-value-equality matching rule.
func (e Event) Equal(other Event) bool {
	return e == other
}

// NewEnter returns an Enter event for room.
func NewEnter(room ids.Id) Event { return Event{Kind: EventEnter, RoomID: room} }

// NewLeave returns a Leave event for room.
func NewLeave(room ids.Id) Event { return Event{Kind: EventLeave, RoomID: room} }

// NewTake returns a Take event for item.
func NewTake(item ids.Id) Event { return Event{Kind: EventTake, ItemID: item} }

// NewDrop returns a Drop event for item.
func NewDrop(item ids.Id) Event { return Event{Kind: EventDrop, ItemID: item} }

// NewOpen returns an Open event for item.
func NewOpen(item ids.Id) Event { return Event{Kind: EventOpen, ItemID: item} }

// NewUnlock returns an Unlock event for item.
func NewUnlock(item ids.Id) Event { return Event{Kind: EventUnlock, ItemID: item} }

// NewInsert returns an Insert event for item placed into container.
func NewInsert(item, container ids.Id) Event {
	return Event{Kind: EventInsert, ItemID: item, TargetID: container}
}

// NewGiveToNpc returns a GiveToNpc event.
func NewGiveToNpc(item, npc ids.Id) Event {
	return Event{Kind: EventGiveToNpc, ItemID: item, NpcID: npc}
}

// NewTakeFromNpc returns a TakeFromNpc event.
func NewTakeFromNpc(item, npc ids.Id) Event {
	return Event{Kind: EventTakeFromNpc, ItemID: item, NpcID: npc}
}

// NewTalkToNpc returns a TalkToNpc event.
func NewTalkToNpc(npc ids.Id) Event { return Event{Kind: EventTalkToNpc, NpcID: npc} }

// NewUseItemOnItem returns a UseItemOnItem event.
func NewUseItemOnItem(interaction int, tool, target ids.Id) Event {
	return Event{Kind: EventUseItemOnItem, Interaction: interaction, ItemID: tool, TargetID: target}
}
