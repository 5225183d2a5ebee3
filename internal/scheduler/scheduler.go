// Package scheduler implements the deterministic priority queue that
// delivers scripted actions at absolute or relative turn counts, with
// optional re-checked conditions and on-false retry/cancel policies.
package scheduler

import (
	"container/heap"

	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Event is a pending action bundle due at a specific turn.
type Event struct {
	DueTurn int
	seq     int // monotonically increasing insertion counter; breaks due_turn ties

	Condition *EventCondition // nil means unconditional
	OnFalse   action.OnFalse
	Actions   []action.Action
	Note      string
}

// pqueue implements container/heap.Interface, ordered by (DueTurn, seq)
// so popping always yields non-decreasing due turns, ties broken by
// insertion order.
type pqueue []*Event

func (q pqueue) Len() int { return len(q) }
func (q pqueue) Less(i, j int) bool {
	if q[i].DueTurn != q[j].DueTurn {
		return q[i].DueTurn < q[j].DueTurn
	}
	return q[i].seq < q[j].seq
}
func (q pqueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *pqueue) Push(x any)   { *q = append(*q, x.(*Event)) }
func (q *pqueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Scheduler owns the pending-event heap. It implements action.Scheduler
// so trigger and scheduler action dispatch can both queue new events
// through the same interface.
type Scheduler struct {
	queue       pqueue
	nextSeq     int
	goalFunc    condition.GoalStatusFunc
	currentTurn int
}

// New returns an empty Scheduler. goalStatus is consulted whenever a
// scheduled event's condition references GoalComplete; pass nil if the
// world has no goals.
func New(goalStatus condition.GoalStatusFunc) *Scheduler {
	return &Scheduler{goalFunc: goalStatus}
}

// Len reports the number of outstanding (not yet fired) events.
func (s *Scheduler) Len() int { return len(s.queue) }

// Outstanding returns every pending event, for introspection. The slice
// is a live view; callers must not mutate it.
func (s *Scheduler) Outstanding() []*Event { return s.queue }

func (s *Scheduler) push(e *Event) {
	e.seq = s.nextSeq
	s.nextSeq++
	heap.Push(&s.queue, e)
}

// ScheduleEventIn queues actions, unconditionally, turnsAhead turns from
// the scheduler's own frame of reference (the caller's current turn); see
// Tick for how DueTurn is resolved against the live turn counter.
func (s *Scheduler) ScheduleEventIn(currentTurn, turnsAhead int, actions []action.Action, note string) {
	s.push(&Event{DueTurn: currentTurn + turnsAhead, Actions: actions, Note: note})
}

// ScheduleEventOn queues actions, unconditionally, for absolute turn.
func (s *Scheduler) ScheduleEventOn(turn int, actions []action.Action, note string) {
	s.push(&Event{DueTurn: turn, Actions: actions, Note: note})
}

// ScheduleEventConditional queues actions gated by an arbitrary
// EventCondition tree, for callers (NPC movement, tests) that need All/
// Any combinators rather than the single-condition action vocabulary.
func (s *Scheduler) ScheduleEventConditional(dueTurn int, ec EventCondition, onFalse action.OnFalse, actions []action.Action, note string) {
	s.push(&Event{DueTurn: dueTurn, Condition: &ec, OnFalse: onFalse, Actions: actions, Note: note})
}

// CancelByNote removes every outstanding event whose Note equals note.
func (s *Scheduler) CancelByNote(note string) {
	kept := s.queue[:0]
	for _, e := range s.queue {
		if e.Note != note {
			kept = append(kept, e)
		}
	}
	s.queue = kept
	heap.Init(&s.queue)
}

// --- action.Scheduler implementation ---
//
// These five methods let trigger/scheduler action dispatch queue new
// work without the action package needing to import this one. They
// resolve turnsAhead/turn against currentTurn, which the turn loop sets
// via SetCurrentTurn before each dispatch that might call them.

func (s *Scheduler) SetCurrentTurn(turn int) { s.currentTurn = turn }

func (s *Scheduler) ScheduleIn(turnsAhead int, actions []action.Action, note string) {
	s.push(&Event{DueTurn: s.currentTurn + turnsAhead, Actions: actions, Note: note})
}

func (s *Scheduler) ScheduleOn(turn int, actions []action.Action, note string) {
	s.push(&Event{DueTurn: turn, Actions: actions, Note: note})
}

func (s *Scheduler) ScheduleInIf(turnsAhead int, cond condition.Condition, onFalse action.OnFalse, actions []action.Action, note string) {
	ec := Leaf(cond)
	s.push(&Event{DueTurn: s.currentTurn + turnsAhead, Condition: &ec, OnFalse: onFalse, Actions: actions, Note: note})
}

func (s *Scheduler) ScheduleOnIf(turn int, cond condition.Condition, onFalse action.OnFalse, actions []action.Action, note string) {
	ec := Leaf(cond)
	s.push(&Event{DueTurn: turn, Condition: &ec, OnFalse: onFalse, Actions: actions, Note: note})
}

// Tick processes every event whose DueTurn is at or before turnCount.
// Events newly queued by dispatch during this call (via the
// action.Scheduler methods above, invoked transitively through
// action.Dispatch) are never processed in this same Tick call, even if
// their due turn has already passed — they wait for the next tick,
// bounding per-turn work and guaranteeing progress.
func (s *Scheduler) Tick(turnCount int, w *worldmodel.AmbleWorld, v *view.View) {
	s.currentTurn = turnCount

	var due []*Event
	for s.queue.Len() > 0 && s.queue[0].DueTurn <= turnCount {
		e := heap.Pop(&s.queue).(*Event)
		due = append(due, e)
	}

	for _, e := range due {
		if e.Condition == nil {
			action.Dispatch(e.Actions, w, v, s)
			continue
		}
		if Evaluate(*e.Condition, w, s.goalFunc) {
			action.Dispatch(e.Actions, w, v, s)
			continue
		}
		switch e.OnFalse.Kind {
		case action.OnFalseRetryNextTurn:
			s.push(&Event{DueTurn: turnCount + 1, Condition: e.Condition, OnFalse: e.OnFalse, Actions: e.Actions, Note: e.Note})
		case action.OnFalseRetryAfter:
			s.push(&Event{DueTurn: turnCount + e.OnFalse.N, Condition: e.Condition, OnFalse: e.OnFalse, Actions: e.Actions, Note: e.Note})
		case action.OnFalseCancel:
			// dropped
		}
	}
}
