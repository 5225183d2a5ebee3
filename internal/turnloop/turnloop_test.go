package turnloop

import (
	"os"
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/content"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/repl"
	"github.com/pygmy-twylyte/amble-go/internal/trigger"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func newTestLoop(t *testing.T) (*Loop, ids.Id, ids.Id) {
	t.Helper()
	w := worldmodel.NewEmptyWorld("test")

	startID := ids.For(ids.NamespaceRoom, "start")
	start := worldmodel.NewRoom(startID, "start", "Start Room", "a plain room")
	start.Visited = true
	hallID := ids.For(ids.NamespaceRoom, "hall")
	hall := worldmodel.NewRoom(hallID, "hall", "Hall", "a long hall")
	start.Exits["north"] = worldmodel.NewExit(hallID)
	hall.Exits["south"] = worldmodel.NewExit(startID)
	w.Rooms[startID] = start
	w.Rooms[hallID] = hall

	player := worldmodel.NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)
	player.Location = worldmodel.InRoom(startID)
	w.Player = player

	if err := w.PlacePass(); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}

	dir, err := os.MkdirTemp("", "amble-save-test")
	if err != nil {
		t.Fatalf("mkdir temp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	session := &repl.Session{
		World:   &content.World{AmbleWorld: w},
		View:    view.New(),
		SaveDir: dir,
		SaveExt: "toml",
	}
	return New(session, nil), startID, hallID
}

func TestStepMoveAdvancesTurnAndRendersTransition(t *testing.T) {
	loop, _, hallID := newTestLoop(t)

	out := loop.Step("north")
	if out.Over {
		t.Fatalf("expected the game to continue, got %+v", out)
	}
	if loop.Session.World.TurnCount != 1 {
		t.Fatalf("expected turn count 1, got %d", loop.Session.World.TurnCount)
	}
	if loop.Session.World.Player.Location.RoomID != hallID {
		t.Fatalf("expected player to have moved to hall")
	}
	if len(out.Items) == 0 {
		t.Fatalf("expected rendered view items for a successful move")
	}
}

func TestStepQuitEndsWithoutAdvancingTurn(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	out := loop.Step("quit")
	if !out.Over {
		t.Fatalf("expected quit to end the session")
	}
	if loop.Session.World.TurnCount != 0 {
		t.Fatalf("expected quit to skip the turn counter, got %d", loop.Session.World.TurnCount)
	}
}

func TestStepUnknownCommandDoesNotErrorAndStillAdvancesTurn(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	out := loop.Step("xyzzy plugh")
	if out.Over {
		t.Fatalf("expected gibberish input to just fail the turn, not end it")
	}
	if loop.Session.World.TurnCount != 1 {
		t.Fatalf("expected the turn counter to still advance, got %d", loop.Session.World.TurnCount)
	}
}

func TestStepFiresTriggerOnEnterOnly(t *testing.T) {
	loop, startID, hallID := newTestLoop(t)
	w := loop.Session.World

	// A trigger that fires the instant the player enters the hall; its
	// single action only shows a message.
	enterHallTrigger := &trigger.Trigger{
		ID:   ids.For(ids.NamespaceTrigger, "welcome"),
		Name: "welcome to the hall",
		Conditions: []condition.Condition{
			{Kind: condition.KindEnter, RoomID: hallID},
		},
		Actions: []action.Action{
			{Kind: action.KindShowMessage, Text: "A voice says: turn back."},
		},
	}
	w.Triggers = append(w.Triggers, enterHallTrigger)

	out := loop.Step("north")
	if out.Over {
		t.Fatalf("unexpected end of game: %+v", out)
	}
	if !containsTriggerFired(out.Items) {
		t.Fatalf("expected the welcome trigger to fire on entering the hall, got %+v", out.Items)
	}

	// Stepping back south should not re-fire the hall trigger, since the
	// player is leaving it, not entering it.
	out2 := loop.Step("south")
	if out2.Over {
		t.Fatalf("unexpected end of game on return trip: %+v", out2)
	}
	if loop.Session.World.Player.Location.RoomID != startID {
		t.Fatalf("expected player back in start room")
	}
	if containsTriggerFired(out2.Items) {
		t.Fatalf("expected the hall trigger not to fire on leaving the hall, got %+v", out2.Items)
	}
}

func containsTriggerFired(items []view.Item) bool {
	for _, it := range items {
		if it.Kind == view.KindTriggeredEvent {
			return true
		}
	}
	return false
}
