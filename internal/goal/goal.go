// Package goal derives goal status from flag/item/room/goal predicates.
// Status is always computed, never stored, so it can never drift from
// the state it describes.
package goal

import (
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Group discriminates what a goal contributes to: the score-affecting
// main line, an optional side objective, or a purely informational
// status effect marker (e.g. "poisoned") with no scoring weight.
type Group int

const (
	GroupRequired Group = iota
	GroupOptional
	GroupStatusEffect
)

// Status is the derived state of a Goal at a point in time.
type Status int

const (
	StatusInactive Status = iota
	StatusActive
	StatusComplete
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusInactive:
		return "Inactive"
	case StatusActive:
		return "Active"
	case StatusComplete:
		return "Complete"
	case StatusFailed:
		return "Failed"
	default:
		return "Inactive"
	}
}

// Goal is a declarative objective. ActivateWhen and FailedWhen are
// optional; FinishedWhen is required.
type Goal struct {
	ID            ids.Id
	Name          string
	Description   string
	Group         Group
	ActivateWhen  *condition.Condition
	FinishedWhen  condition.Condition
	FailedWhen    *condition.Condition
}

// Status derives goal's current status against world w, consulting goals
// for GoalComplete{goal_id} conditions via allGoals.
//
// Precedence: Failed > Complete > Active > Inactive. A goal whose own
// predicates reference itself via GoalComplete is treated as not
// complete for that reference — a goal cannot depend on its own
// completion to activate or finish, which the original implementation
// this was ported from left unguarded.
func Status(goal *Goal, w *worldmodel.AmbleWorld, allGoals map[ids.Id]*Goal) Status {
	statusFn := selfGuardedStatusFunc(goal.ID, w, allGoals)

	if goal.FailedWhen != nil && condEval(*goal.FailedWhen, w, statusFn) {
		return StatusFailed
	}

	activated := goal.ActivateWhen == nil || condEval(*goal.ActivateWhen, w, statusFn)
	if !activated {
		return StatusInactive
	}

	if condEval(goal.FinishedWhen, w, statusFn) {
		return StatusComplete
	}
	return StatusActive
}

// selfGuardedStatusFunc returns a condition.GoalStatusFunc that computes
// the real status of any goal other than selfID; a reference to selfID
// is reported as not-complete, breaking the direct self-reference cycle
// without needing full cycle detection across the goal graph.
func selfGuardedStatusFunc(selfID ids.Id, w *worldmodel.AmbleWorld, allGoals map[ids.Id]*Goal) condition.GoalStatusFunc {
	return func(goalID ids.Id) condition.GoalStatusKind {
		if goalID == selfID {
			return condition.GoalActive
		}
		other, ok := allGoals[goalID]
		if !ok {
			return condition.GoalInactive
		}
		return toConditionKind(Status(other, w, allGoals))
	}
}

func toConditionKind(s Status) condition.GoalStatusKind {
	switch s {
	case StatusInactive:
		return condition.GoalInactive
	case StatusActive:
		return condition.GoalActive
	case StatusComplete:
		return condition.GoalComplete
	case StatusFailed:
		return condition.GoalFailed
	default:
		return condition.GoalInactive
	}
}

// condEval evaluates a state condition, or an event condition's presence
// against an empty observed list (goal predicates are defined over state
// conditions; an event-kind condition used here can never match and
// evaluates false).
func condEval(c condition.Condition, w *worldmodel.AmbleWorld, statusFn condition.GoalStatusFunc) bool {
	if c.Kind.IsEventCondition() {
		return c.MatchesAny(nil)
	}
	return condition.Evaluate(c, w, statusFn)
}
