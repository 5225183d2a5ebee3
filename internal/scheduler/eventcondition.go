package scheduler

import (
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// EventConditionKind discriminates EventCondition.
type EventConditionKind int

const (
	ECLeaf EventConditionKind = iota
	ECAll
	ECAny
)

// EventCondition is the scheduler's re-check predicate tree: a leaf wraps
// a single state condition (scheduled events have no per-turn observed
// event list to match against, so an event-kind leaf condition can never
// hold), and All/Any combine children conjunctively/disjunctively.
type EventCondition struct {
	Kind     EventConditionKind
	Leaf     condition.Condition
	Children []EventCondition
}

// Leaf returns a single-condition EventCondition.
func Leaf(c condition.Condition) EventCondition {
	return EventCondition{Kind: ECLeaf, Leaf: c}
}

// All returns an EventCondition requiring every child to hold.
func All(children ...EventCondition) EventCondition {
	return EventCondition{Kind: ECAll, Children: children}
}

// Any returns an EventCondition requiring at least one child to hold.
func Any(children ...EventCondition) EventCondition {
	return EventCondition{Kind: ECAny, Children: children}
}

// Evaluate checks ec against world w.
func Evaluate(ec EventCondition, w *worldmodel.AmbleWorld, goalStatus condition.GoalStatusFunc) bool {
	switch ec.Kind {
	case ECLeaf:
		if ec.Leaf.Kind.IsEventCondition() {
			return false
		}
		return condition.Evaluate(ec.Leaf, w, goalStatus)
	case ECAll:
		for _, child := range ec.Children {
			if !Evaluate(child, w, goalStatus) {
				return false
			}
		}
		return true
	case ECAny:
		for _, child := range ec.Children {
			if Evaluate(child, w, goalStatus) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
