// Package trigger implements the declarative rule engine: a Trigger
// matches a conjunction of event- and state-conditions against the
// current turn's observed events and world state, and dispatches its
// action list when every condition holds.
package trigger

import (
	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Trigger is a declarative rule: when every condition holds, its action
// list fires. OnlyOnce triggers are checked for Fired before evaluation
// and never reconsidered once they have fired.
type Trigger struct {
	ID         ids.Id
	Name       string
	Conditions []condition.Condition
	Actions    []action.Action
	OnlyOnce   bool
	Fired      bool
}

// satisfied reports whether every one of t's conditions holds: its event
// conditions must each match something in observed, and its state
// conditions must each evaluate true against w.
func (t *Trigger) satisfied(observed []condition.Event, w *worldmodel.AmbleWorld, goalStatus condition.GoalStatusFunc) bool {
	for _, c := range t.Conditions {
		if c.Kind.IsEventCondition() {
			if !c.MatchesAny(observed) {
				return false
			}
			continue
		}
		if !condition.Evaluate(c, w, goalStatus) {
			return false
		}
	}
	return true
}

// Check evaluates every trigger in triggers, in order, against observed
// and w. Triggers whose conditions are all satisfied fire: their actions
// dispatch in declaration order (action streams across multiple firing
// triggers are concatenated in trigger order, since dispatch itself runs
// trigger-by-trigger in the loop below), only-once triggers are marked
// Fired, and their ids are returned in firing order. New events produced
// by dispatch are collected but never fed back into this same Check
// call — the caller re-checks on the next turn.
func Check(
	triggers []*Trigger,
	observed []condition.Event,
	w *worldmodel.AmbleWorld,
	v *view.View,
	sched action.Scheduler,
	goalStatus condition.GoalStatusFunc,
) (fired []ids.Id, newEvents []condition.Event, endGame string) {
	for _, t := range triggers {
		if t.OnlyOnce && t.Fired {
			continue
		}
		if !t.satisfied(observed, w, goalStatus) {
			continue
		}

		v.Push(view.Item{Kind: view.KindTriggeredEvent, Text: t.Name})
		result := action.Dispatch(t.Actions, w, v, sched)
		newEvents = append(newEvents, result.NewEvents...)
		if result.EndGame != "" {
			endGame = result.EndGame
		}

		if t.OnlyOnce {
			t.Fired = true
		}
		fired = append(fired, t.ID)
	}
	return fired, newEvents, endGame
}
