package condition

import (
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Kind enumerates every condition variant, event and state alike. The
// open question in the source material about consolidating GoalComplete
// / FlagComplete / a flag-sequence-completion predicate under one
// vocabulary is resolved here: FlagComplete (is a sequence flag at its
// limit?) and GoalComplete (is a goal Complete?) are both represented as
// ordinary Kind values in this single Condition type, alongside every
// other state and event condition. There is no second, overlapping
// condition type to reconcile.
type Kind int

const (
	// Event conditions — matched against the turn's observed Event list.
	KindEnter Kind = iota
	KindTake
	KindUseItemOnItem
	KindGiveToNpc
	KindTalkToNpc
	KindOpen
	KindUnlock
	KindDrop
	KindLeave
	KindInsert
	KindTakeFromNpc

	// State conditions — pure predicates over world state.
	KindHasItem
	KindHasFlag
	KindMissingFlag
	KindFlagInProgress
	KindFlagComplete
	KindInRoom
	KindWithNpc
	KindNpcHasItem
	KindNpcInState
	KindContainerHasItem
	KindHasVisited
	KindAmbient
	KindChancePercent
	KindGoalComplete
)

// IsEventCondition reports whether k belongs to the event-condition
// family (matched by equality against the observed event list) as
// opposed to the state-condition family (evaluated against world state).
func (k Kind) IsEventCondition() bool {
	return k <= KindTakeFromNpc
}

// Condition is the trigger engine's unified predicate type. Only the
// fields relevant to Kind are meaningful for a given value.
type Condition struct {
	Kind Kind

	RoomID      ids.Id
	ItemID      ids.Id
	TargetID    ids.Id
	NpcID       ids.Id
	Interaction int

	FlagName string
	NpcState worldmodel.NpcState
	GoalID   ids.Id

	SpinnerType string
	Rooms       []ids.Id
	Percent     int
}

// IsCondition satisfies worldmodel.ConditionRef, letting Item.VisibleWhen
// hold a Condition without worldmodel importing this package.
func (Condition) IsCondition() {}

// AsEvent converts an event-kind Condition into the Event it should match
// against the observed list. The second return value is false for state
// conditions.
func (c Condition) AsEvent() (Event, bool) {
	if !c.Kind.IsEventCondition() {
		return Event{}, false
	}
	return Event{
		Kind:        EventKind(c.Kind),
		RoomID:      c.RoomID,
		ItemID:      c.ItemID,
		TargetID:    c.TargetID,
		NpcID:       c.NpcID,
		Interaction: c.Interaction,
	}, true
}

// MatchesAny reports whether this event condition's shape appears
// (exact value equality) anywhere in observed.
func (c Condition) MatchesAny(observed []Event) bool {
	want, ok := c.AsEvent()
	if !ok {
		return false
	}
	for _, e := range observed {
		if e.Equal(want) {
			return true
		}
	}
	return false
}

// GoalStatusKind is the subset of goal status the GoalComplete condition
// needs; declared here rather than imported from internal/goal to avoid
// a cycle (internal/goal's own predicates are Conditions).
type GoalStatusKind int

const (
	GoalInactive GoalStatusKind = iota
	GoalActive
	GoalComplete
	GoalFailed
)

// GoalStatusFunc looks up a goal's current derived status. The turn loop
// supplies internal/goal's Status function bound to the live world so
// state-condition evaluation never imports internal/goal directly.
type GoalStatusFunc func(goalID ids.Id) GoalStatusKind

// Evaluate checks a state condition against world w. Called on an event
// condition it returns false; event conditions are matched through
// MatchesAny instead, and the trigger engine partitions conditions up
// front.
func Evaluate(c Condition, w *worldmodel.AmbleWorld, goalStatus GoalStatusFunc) bool {
	switch c.Kind {
	case KindHasItem:
		return w.Player.ContainsItem(c.ItemID)
	case KindHasFlag:
		return w.Player.Flags.Has(c.FlagName)
	case KindMissingFlag:
		return !w.Player.Flags.Has(c.FlagName)
	case KindFlagInProgress:
		f, ok := w.Player.Flags[c.FlagName]
		return ok && f.Kind == worldmodel.FlagSequence && !f.Complete()
	case KindFlagComplete:
		f, ok := w.Player.Flags[c.FlagName]
		return ok && f.Complete()
	case KindInRoom:
		room, ok := w.Player.Location.UnwrapRoom()
		return ok && room == c.RoomID
	case KindWithNpc:
		npc, ok := w.Npcs[c.NpcID]
		if !ok {
			return false
		}
		playerRoom, ok := w.Player.Location.UnwrapRoom()
		if !ok {
			return false
		}
		npcRoom, ok := npc.Location.UnwrapRoom()
		return ok && npcRoom == playerRoom
	case KindNpcHasItem:
		npc, ok := w.Npcs[c.NpcID]
		return ok && npc.ContainsItem(c.ItemID)
	case KindNpcInState:
		npc, ok := w.Npcs[c.NpcID]
		return ok && npc.State.Equal(c.NpcState)
	case KindContainerHasItem:
		container, ok := w.Items[c.TargetID]
		return ok && container.ContainsItem(c.ItemID)
	case KindHasVisited:
		room, ok := w.Rooms[c.RoomID]
		return ok && room.Visited
	case KindAmbient:
		return roomInList(w, c.Rooms)
	case KindChancePercent:
		return w.RNG.Intn(100) < c.Percent
	case KindGoalComplete:
		return goalStatus(c.GoalID) == GoalComplete
	default:
		return false
	}
}

func roomInList(w *worldmodel.AmbleWorld, rooms []ids.Id) bool {
	current, ok := w.Player.Location.UnwrapRoom()
	if !ok {
		return false
	}
	for _, r := range rooms {
		if r == current {
			return true
		}
	}
	return false
}
