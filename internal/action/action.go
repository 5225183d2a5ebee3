// Package action implements the trigger/scheduler action vocabulary: each
// Action is a pure description of an effect, and Dispatch is the only
// place those effects actually touch world state and the view.
package action

import (
	"fmt"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/health"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Kind enumerates the closed action vocabulary from the narrative, flag,
// item, NPC, player, scheduler, and control families.
type Kind int

const (
	KindShowMessage Kind = iota
	KindAmbientEvent
	KindDenyRead

	KindAddFlag
	KindRemoveFlag
	KindStartSequence
	KindAdvanceSequence
	KindResetSequence

	KindSpawnItemIntoRoom
	KindSpawnItemInInventory
	KindDespawnItem
	KindMoveItem
	KindReplaceItem
	KindSetContainerState

	KindSetNpcState
	KindMoveNpc
	KindAddNpcDialogueLine

	KindTeleportPlayer
	KindDamagePlayer
	KindHealPlayer
	KindApplyHealthEffect
	KindRemoveHealthEffect
	KindAwardPoints
	KindAddAchievement

	KindScheduleIn
	KindScheduleOn
	KindScheduleInIf
	KindScheduleOnIf
	KindCancelScheduled

	KindEndGame
)

// OnFalseKind discriminates OnFalse.
type OnFalseKind int

const (
	OnFalseRetryNextTurn OnFalseKind = iota
	OnFalseRetryAfter
	OnFalseCancel
)

// OnFalse is the scheduler's re-check failure policy for a conditional
// event.
type OnFalse struct {
	Kind OnFalseKind
	N    int // meaningful only for OnFalseRetryAfter
}

// Action is a single described effect. Only the fields relevant to Kind
// are meaningful for a given value.
type Action struct {
	Kind Kind

	Text   string
	Reason string

	FlagName string
	Limit    *int

	ItemID        ids.Id
	RoomID        ids.Id
	NpcID         ids.Id
	ReplacementID ids.Id
	NewLocation   worldmodel.Location
	ContainerKind worldmodel.ContainerStateKind

	NpcState     worldmodel.NpcState
	DialogueLine string

	Amount int
	Cause  string
	Effect worldmodel.HealthEffect

	Points      int
	Achievement string

	TurnsAhead int
	Turn       int
	Note       string
	Nested     []Action
	Condition  *condition.Condition
	OnFalse    OnFalse
}

// Scheduler is the subset of internal/scheduler's Scheduler that the
// action package needs, expressed as an interface so this package never
// imports internal/scheduler (which itself dispatches Actions, and would
// otherwise form an import cycle).
type Scheduler interface {
	ScheduleIn(turnsAhead int, actions []Action, note string)
	ScheduleOn(turn int, actions []Action, note string)
	ScheduleInIf(turnsAhead int, cond condition.Condition, onFalse OnFalse, actions []Action, note string)
	ScheduleOnIf(turn int, cond condition.Condition, onFalse OnFalse, actions []Action, note string)
	CancelByNote(note string)
}

// Result accumulates the outcome of dispatching an action list: any new
// events observed (deferred to the next trigger check, never the current
// one) and the reason the game ended, if an EndGame action ran.
type Result struct {
	NewEvents []condition.Event
	EndGame   string // empty unless an EndGame action fired
}

// Dispatch applies actions, in order, to world w, emitting view items to
// v and queuing events to sched as needed. An action that fails (unknown
// target id) reports a view error and continues with the rest of the
// list — trigger and scheduler dispatch are both best-effort within a
// turn.
func Dispatch(actions []Action, w *worldmodel.AmbleWorld, v *view.View, sched Scheduler) Result {
	var result Result
	for _, a := range actions {
		if reason, ended := dispatchOne(a, w, v, sched, &result); ended {
			result.EndGame = reason
		}
	}
	return result
}

func dispatchOne(a Action, w *worldmodel.AmbleWorld, v *view.View, sched Scheduler, result *Result) (string, bool) {
	switch a.Kind {
	case KindShowMessage:
		v.Push(view.Item{Kind: view.KindActionResult, Text: a.Text})

	case KindAmbientEvent:
		v.Push(view.Item{Kind: view.KindAmbientEvent, Text: a.Text})

	case KindDenyRead:
		v.Push(view.Item{Kind: view.KindActionFailure, Text: a.Reason})

	case KindAddFlag:
		w.Player.Flags.Set(worldmodel.NewSimpleFlag(a.FlagName, w.TurnCount))

	case KindRemoveFlag:
		w.Player.Flags.Remove(a.FlagName)

	case KindStartSequence:
		w.Player.Flags.Set(worldmodel.NewSequenceFlag(a.FlagName, a.Limit, w.TurnCount))

	case KindAdvanceSequence:
		if f, ok := w.Player.Flags[a.FlagName]; ok {
			w.Player.Flags.Set(f.Advanced())
		}

	case KindResetSequence:
		if f, ok := w.Player.Flags[a.FlagName]; ok && f.Kind == worldmodel.FlagSequence {
			w.Player.Flags.Set(worldmodel.NewSequenceFlag(a.FlagName, f.Limit, w.TurnCount))
		}

	case KindSpawnItemIntoRoom:
		if err := w.MoveItem(a.ItemID, worldmodel.InRoom(a.RoomID)); err != nil {
			reportError(v, err)
		}

	case KindSpawnItemInInventory:
		if err := w.MoveItem(a.ItemID, worldmodel.InInventory()); err != nil {
			reportError(v, err)
		}

	case KindDespawnItem:
		if item, ok := w.Items[a.ItemID]; ok {
			if old := w.Holder(item.Location); old != nil {
				old.RemoveItem(a.ItemID)
			}
			item.Location = worldmodel.Nowhere()
		} else {
			reportError(v, fmt.Errorf("despawn: unknown item %s", a.ItemID))
		}

	case KindMoveItem:
		if err := w.MoveItem(a.ItemID, a.NewLocation); err != nil {
			reportError(v, err)
		} else if a.NewLocation.Kind == worldmodel.LocationItem {
			result.NewEvents = append(result.NewEvents, condition.NewInsert(a.ItemID, a.NewLocation.ContainerID))
		}

	case KindReplaceItem:
		original, ok := w.Items[a.ItemID]
		replacement, rok := w.Items[a.ReplacementID]
		if !ok || !rok {
			reportError(v, fmt.Errorf("replace item: unknown item %s or %s", a.ItemID, a.ReplacementID))
			break
		}
		loc := original.Location
		if old := w.Holder(loc); old != nil {
			old.RemoveItem(a.ItemID)
		}
		original.Location = worldmodel.Nowhere()
		if err := w.MoveItem(a.ReplacementID, loc); err != nil {
			reportError(v, err)
		}
		_ = replacement

	case KindSetContainerState:
		if item, ok := w.Items[a.ItemID]; ok {
			state := a.ContainerKind
			item.ContainerState = &state
		} else {
			reportError(v, fmt.Errorf("set container state: unknown item %s", a.ItemID))
		}

	case KindSetNpcState:
		if npc, ok := w.Npcs[a.NpcID]; ok {
			npc.State = a.NpcState
		} else {
			reportError(v, fmt.Errorf("set npc state: unknown npc %s", a.NpcID))
		}

	case KindMoveNpc:
		if npc, ok := w.Npcs[a.NpcID]; ok {
			if oldRoom, ok := npc.Location.UnwrapRoom(); ok {
				if r, ok := w.Rooms[oldRoom]; ok {
					r.RemoveNpc(a.NpcID)
				}
			}
			npc.Location = worldmodel.InRoom(a.RoomID)
			if r, ok := w.Rooms[a.RoomID]; ok {
				r.AddNpc(a.NpcID)
			}
		} else {
			reportError(v, fmt.Errorf("move npc: unknown npc %s", a.NpcID))
		}

	case KindAddNpcDialogueLine:
		if npc, ok := w.Npcs[a.NpcID]; ok {
			if a.NpcState.Kind == worldmodel.NpcCustom {
				npc.CustomDialogue[a.NpcState.Custom] = append(npc.CustomDialogue[a.NpcState.Custom], a.DialogueLine)
			} else {
				npc.Dialogue[a.NpcState.Kind] = append(npc.Dialogue[a.NpcState.Kind], a.DialogueLine)
			}
		} else {
			reportError(v, fmt.Errorf("add npc dialogue: unknown npc %s", a.NpcID))
		}

	case KindTeleportPlayer:
		w.Player.Location = worldmodel.InRoom(a.RoomID)

	case KindDamagePlayer:
		w.Player.Health.Queue(worldmodel.InstantDamage(a.Amount, a.Cause))

	case KindHealPlayer:
		w.Player.Health.Queue(worldmodel.InstantHeal(a.Amount, a.Cause))

	case KindApplyHealthEffect:
		w.Player.Health.Queue(a.Effect)

	case KindRemoveHealthEffect:
		w.Player.Health.RemoveByCause(a.Cause)

	case KindAwardPoints:
		w.Player.Score += a.Points
		v.Push(view.Item{Kind: view.KindPointsAwarded, Amount: a.Points})

	case KindAddAchievement:
		w.Player.Achievements[a.Achievement] = true

	case KindScheduleIn:
		sched.ScheduleIn(a.TurnsAhead, a.Nested, a.Note)

	case KindScheduleOn:
		sched.ScheduleOn(a.Turn, a.Nested, a.Note)

	case KindScheduleInIf:
		sched.ScheduleInIf(a.TurnsAhead, *a.Condition, a.OnFalse, a.Nested, a.Note)

	case KindScheduleOnIf:
		sched.ScheduleOnIf(a.Turn, *a.Condition, a.OnFalse, a.Nested, a.Note)

	case KindCancelScheduled:
		sched.CancelByNote(a.Note)

	case KindEndGame:
		return a.Reason, true
	}
	return "", false
}

func reportError(v *view.View, err error) {
	v.Push(view.Item{Kind: view.KindError, Text: err.Error()})
}

// TickHealth runs the health tick for entity name's health state, pushing
// harm/heal view items and a death item if it died this tick.
func TickHealth(name string, hs *worldmodel.HealthState, v *view.View) (deathCause string) {
	result := health.Tick(hs)
	for _, change := range result.Changes {
		kind := view.KindCharacterHarmed
		if change.Kind == health.ChangeHeal {
			kind = view.KindCharacterHealed
		}
		v.Push(view.Item{Kind: kind, NpcName: name, Amount: change.Amount, Cause: change.Cause})
	}
	if result.DeathCause != "" {
		v.Push(view.Item{Kind: view.KindCharacterDeath, NpcName: name, Cause: result.DeathCause})
	}
	return result.DeathCause
}
