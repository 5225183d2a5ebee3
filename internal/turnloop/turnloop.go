// Package turnloop implements the single authoritative per-turn sequence
// that ties every other package together: parse the player's line,
// dispatch it to the matching repl.Session handler, check triggers
// against the events the handler observed, advance the turn counter,
// tick the scheduler, tick health for the player and every NPC, and hand
// the accumulated view output back to the caller for rendering. No other
// package calls trigger.Check or scheduler.Tick — this is the one place
// those two run, once per turn, in that order.
package turnloop

import (
	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/command"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/goal"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/repl"
	"github.com/pygmy-twylyte/amble-go/internal/scheduler"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
	"github.com/pygmy-twylyte/amble-go/internal/system"
	"github.com/pygmy-twylyte/amble-go/internal/trigger"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"go.uber.org/zap"
)

// Loop owns the scheduler and the trigger-carried event list across
// turns, alongside the repl.Session every handler runs against.
type Loop struct {
	Session *repl.Session
	Sched   *scheduler.Scheduler
	Log     *zap.Logger

	// carry holds the newEvents a trigger check produced last turn; §4.8
	// requires they be folded into the very next turn's observed events
	// rather than the check that produced them.
	carry []condition.Event
}

// New builds a Loop around session, wiring a fresh Scheduler to the
// session's world's goal-status function. log may be nil, in which case
// Step logs nothing.
func New(session *repl.Session, log *zap.Logger) *Loop {
	if log == nil {
		log = zap.NewNop()
	}
	l := &Loop{Session: session, Log: log}
	l.Sched = scheduler.New(l.goalStatus)
	return l
}

// goalStatus adapts internal/goal's derived Status into the
// condition.GoalStatusFunc shape trigger.Check and scheduler.New need.
// internal/goal keeps toConditionKind unexported, so this mapping is
// duplicated here rather than shared.
func (l *Loop) goalStatus(goalID ids.Id) condition.GoalStatusKind {
	w := l.Session.World
	g, ok := w.Goals[goalID]
	if !ok {
		return condition.GoalInactive
	}
	switch goal.Status(g, w.AmbleWorld, w.Goals) {
	case goal.StatusComplete:
		return condition.GoalComplete
	case goal.StatusFailed:
		return condition.GoalFailed
	case goal.StatusActive:
		return condition.GoalActive
	default:
		return condition.GoalInactive
	}
}

// Outcome reports what happened after a Step: the rendered view items,
// whether the session should stop accepting further input, and why.
type Outcome struct {
	Items   []view.Item
	Over    bool
	EndMsg  string // populated on Over: either an EndGame action's reason or a fatal death cause
}

// dispatch routes cmd to its repl.Session handler, returning whatever
// events it observed. KindQuit and KindUnknown are handled here directly
// since they have no corresponding events and (for Quit) end the loop.
func (l *Loop) dispatch(cmd command.Command) (events []condition.Event, quit bool) {
	s := l.Session
	switch cmd.Kind {
	case command.KindHelp:
		return s.Help(), false
	case command.KindQuit:
		s.Quit()
		return nil, true
	case command.KindLook:
		return s.Look(), false
	case command.KindLookAt:
		return s.LookAt(cmd.Thing), false
	case command.KindMoveTo:
		return s.MoveTo(cmd.Direction), false
	case command.KindTake:
		return s.Take(cmd.Thing), false
	case command.KindTakeFrom:
		return s.TakeFrom(cmd.Item, cmd.Container), false
	case command.KindDrop:
		return s.Drop(cmd.Thing), false
	case command.KindPutIn:
		return s.PutIn(cmd.Item, cmd.Container), false
	case command.KindOpen:
		return s.Open(cmd.Thing), false
	case command.KindClose:
		return s.Close(cmd.Thing), false
	case command.KindLockItem:
		return s.Lock(cmd.Thing), false
	case command.KindUnlockItem:
		return s.Unlock(cmd.Thing), false
	case command.KindInventory:
		return s.Inventory(), false
	case command.KindTalkTo:
		return s.TalkTo(cmd.Npc), false
	case command.KindGiveToNpc:
		return s.GiveToNpc(cmd.Item, cmd.Npc), false
	case command.KindTurnOn:
		return s.TurnOn(cmd.Thing), false
	case command.KindRead:
		return s.Read(cmd.Thing), false
	case command.KindUseItemOn:
		return s.UseItemOn(cmd.Verb, cmd.Item, cmd.Target), false
	case command.KindLoad:
		return s.Load(cmd.GameFile), false
	case command.KindSave:
		return s.Save(cmd.GameFile), false
	default:
		msg := s.World.Spinners.Spin(spinner.UnrecognizedCommand, s.World.RNG)
		if msg == "" {
			msg = "I don't understand that."
		}
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: msg})
		return nil, false
	}
}

// Step runs one full turn for line: parse, dispatch, trigger check,
// turn increment, scheduler tick, health tick, then flushes the view.
func (l *Loop) Step(line string) Outcome {
	w := l.Session.World
	v := l.Session.View

	cmd := command.Parse(line)
	events, quit := l.dispatch(cmd)
	if quit {
		return Outcome{Items: v.Flush(), Over: true}
	}

	observed := append(append([]condition.Event(nil), l.carry...), events...)
	fired, newEvents, endGame := trigger.Check(w.Triggers, observed, w.AmbleWorld, v, l.Sched, l.goalStatus)
	l.carry = newEvents
	for _, id := range fired {
		l.Log.Debug("trigger fired", zap.String("trigger_id", id.String()), zap.Int("turn", w.TurnCount))
	}

	w.TurnCount++
	l.Sched.Tick(w.TurnCount, w.AmbleWorld, v)
	system.TickNpcMovement(w.TurnCount, w.AmbleWorld, v, w.RNG)

	var deathCause string
	if cause := action.TickHealth(w.Player.Name, &w.Player.Health, v); cause != "" {
		deathCause = cause
		l.Log.Warn("character died", zap.String("name", w.Player.Name), zap.String("cause", cause))
	}
	for _, npc := range w.Npcs {
		if cause := action.TickHealth(npc.Name, &npc.Health, v); cause != "" {
			l.Log.Warn("character died", zap.String("name", npc.Name), zap.String("cause", cause))
		}
	}

	items := v.Flush()
	if endGame != "" {
		return Outcome{Items: items, Over: true, EndMsg: endGame}
	}
	if deathCause != "" {
		return Outcome{Items: items, Over: true, EndMsg: deathCause}
	}
	return Outcome{Items: items}
}
