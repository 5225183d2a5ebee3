package scheduler

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func newWorld() *worldmodel.AmbleWorld {
	w := worldmodel.NewEmptyWorld("test")
	w.Player = worldmodel.NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)
	return w
}

// S2 — conditional reschedule then fire.
func TestTickConditionalRescheduleThenFire(t *testing.T) {
	w := newWorld()
	v := view.New()
	s := New(nil)

	cond := condition.Condition{Kind: condition.KindHasFlag, FlagName: "f"}
	s.ScheduleEventConditional(1, Leaf(cond), action.OnFalse{Kind: action.OnFalseRetryNextTurn},
		[]action.Action{{Kind: action.KindShowMessage, Text: "fired"}}, "")

	s.Tick(1, w, v)
	if out := v.Flush(); len(out) != 0 {
		t.Fatalf("expected no output at turn 1 without the flag, got %+v", out)
	}
	if s.Len() != 1 {
		t.Fatalf("expected event requeued, heap len = %d", s.Len())
	}

	w.Player.Flags.Set(worldmodel.NewSimpleFlag("f", 1))
	s.Tick(2, w, v)
	out := v.Flush()
	if len(out) != 1 || out[0].Text != "fired" {
		t.Fatalf("expected 'fired' message at turn 2, got %+v", out)
	}
	if s.Len() != 0 {
		t.Fatalf("expected heap empty after firing, got %d", s.Len())
	}
}

// S3 — cancel on false.
func TestTickCancelOnFalse(t *testing.T) {
	w := newWorld()
	v := view.New()
	s := New(nil)

	cond := condition.Condition{Kind: condition.KindHasFlag, FlagName: "h"}
	s.ScheduleEventConditional(5, Leaf(cond), action.OnFalse{Kind: action.OnFalseCancel},
		[]action.Action{{Kind: action.KindShowMessage, Text: "fired"}}, "")

	s.Tick(5, w, v)
	if out := v.Flush(); len(out) != 0 {
		t.Fatalf("expected no output at turn 5 without flag h, got %+v", out)
	}
	if s.Len() != 0 {
		t.Fatalf("expected event canceled and heap empty, got %d", s.Len())
	}

	w.Player.Flags.Set(worldmodel.NewSimpleFlag("h", 5))
	s.Tick(6, w, v)
	if out := v.Flush(); len(out) != 0 {
		t.Fatalf("expected still no output at turn 6 (event was canceled), got %+v", out)
	}
}

func TestTickOrdersByDueTurnThenInsertion(t *testing.T) {
	w := newWorld()
	v := view.New()
	s := New(nil)

	s.ScheduleEventOn(3, []action.Action{{Kind: action.KindShowMessage, Text: "third"}}, "")
	s.ScheduleEventOn(1, []action.Action{{Kind: action.KindShowMessage, Text: "first"}}, "")
	s.ScheduleEventOn(1, []action.Action{{Kind: action.KindShowMessage, Text: "second"}}, "")

	s.Tick(1, w, v)
	out := v.Flush()
	if len(out) != 2 || out[0].Text != "first" || out[1].Text != "second" {
		t.Fatalf("expected ['first','second'] in insertion order at turn 1, got %+v", out)
	}

	s.Tick(3, w, v)
	out = v.Flush()
	if len(out) != 1 || out[0].Text != "third" {
		t.Fatalf("expected 'third' at turn 3, got %+v", out)
	}
}

func TestTickDeferNewEventsToNextTick(t *testing.T) {
	w := newWorld()
	v := view.New()
	s := New(nil)

	// Scheduling an event 0 turns ahead from within a dispatch must not
	// fire within the same Tick call.
	s.ScheduleEventOn(1, []action.Action{
		{Kind: action.KindScheduleIn, TurnsAhead: 0, Actions: nil, Note: "immediate"},
	}, "")

	s.Tick(1, w, v)
	if s.Len() != 1 {
		t.Fatalf("expected the newly scheduled event to wait for the next tick, got %d outstanding", s.Len())
	}
}

func TestCancelScheduledRemovesAllMatchingNote(t *testing.T) {
	w := newWorld()
	v := view.New()
	s := New(nil)

	s.ScheduleEventOn(5, []action.Action{{Kind: action.KindShowMessage, Text: "a"}}, "bell")
	s.ScheduleEventOn(6, []action.Action{{Kind: action.KindShowMessage, Text: "b"}}, "bell")
	s.ScheduleEventOn(7, []action.Action{{Kind: action.KindShowMessage, Text: "c"}}, "other")

	s.CancelByNote("bell")
	if s.Len() != 1 {
		t.Fatalf("expected only the non-matching note to remain, got %d", s.Len())
	}

	s.Tick(7, w, v)
	out := v.Flush()
	if len(out) != 1 || out[0].Text != "c" {
		t.Fatalf("expected only 'c' to fire, got %+v", out)
	}
}
