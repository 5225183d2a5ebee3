package action

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

type fakeScheduler struct {
	scheduledIn  []int
	scheduledOn  []int
	canceled     []string
}

func (f *fakeScheduler) ScheduleIn(turnsAhead int, actions []Action, note string) {
	f.scheduledIn = append(f.scheduledIn, turnsAhead)
}
func (f *fakeScheduler) ScheduleOn(turn int, actions []Action, note string) {
	f.scheduledOn = append(f.scheduledOn, turn)
}
func (f *fakeScheduler) ScheduleInIf(turnsAhead int, cond condition.Condition, onFalse OnFalse, actions []Action, note string) {
}
func (f *fakeScheduler) ScheduleOnIf(turn int, cond condition.Condition, onFalse OnFalse, actions []Action, note string) {
}
func (f *fakeScheduler) CancelByNote(note string) {
	f.canceled = append(f.canceled, note)
}

func newWorld() *worldmodel.AmbleWorld {
	w := worldmodel.NewEmptyWorld("test")
	w.Player = worldmodel.NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)
	return w
}

func TestDispatchAddFlagAndAwardPoints(t *testing.T) {
	w := newWorld()
	v := view.New()
	sched := &fakeScheduler{}

	Dispatch([]Action{
		{Kind: KindAddFlag, FlagName: "met-sage"},
		{Kind: KindAwardPoints, Points: 3},
	}, w, v, sched)

	if !w.Player.Flags.Has("met-sage") {
		t.Fatalf("expected flag set")
	}
	if w.Player.Score != 3 {
		t.Fatalf("expected score 3, got %d", w.Player.Score)
	}
	out := v.Flush()
	if len(out) != 1 || out[0].Kind != view.KindPointsAwarded {
		t.Fatalf("expected a single points-awarded view item, got %+v", out)
	}
}

func TestDispatchMoveItemIntoContainerEmitsInsertEvent(t *testing.T) {
	w := newWorld()
	roomID := ids.For(ids.NamespaceRoom, "room")
	w.Rooms[roomID] = worldmodel.NewRoom(roomID, "room", "Room", "a room")

	containerID := ids.For(ids.NamespaceItem, "box")
	container := worldmodel.NewItem(containerID, "box", "Box", "a box")
	state := worldmodel.ContainerOpen
	container.ContainerState = &state
	container.Location = worldmodel.InRoom(roomID)
	w.Items[containerID] = container

	itemID := ids.For(ids.NamespaceItem, "coin")
	item := worldmodel.NewItem(itemID, "coin", "Coin", "a coin")
	item.Location = worldmodel.InInventory()
	w.Items[itemID] = item
	w.Player.AddItem(itemID)

	v := view.New()
	sched := &fakeScheduler{}

	result := Dispatch([]Action{
		{Kind: KindMoveItem, ItemID: itemID, NewLocation: worldmodel.InItem(containerID)},
	}, w, v, sched)

	if !container.ContainsItem(itemID) {
		t.Fatalf("expected coin inside box")
	}
	if len(result.NewEvents) != 1 || result.NewEvents[0].Kind != condition.EventInsert {
		t.Fatalf("expected one Insert event, got %+v", result.NewEvents)
	}
}

func TestDispatchEndGameReportsReason(t *testing.T) {
	w := newWorld()
	v := view.New()
	sched := &fakeScheduler{}

	result := Dispatch([]Action{{Kind: KindEndGame, Reason: "you won"}}, w, v, sched)
	if result.EndGame != "you won" {
		t.Fatalf("expected end game reason, got %q", result.EndGame)
	}
}

func TestDispatchScheduleInCallsScheduler(t *testing.T) {
	w := newWorld()
	v := view.New()
	sched := &fakeScheduler{}

	Dispatch([]Action{{Kind: KindScheduleIn, TurnsAhead: 3, Note: "bell"}}, w, v, sched)
	if len(sched.scheduledIn) != 1 || sched.scheduledIn[0] != 3 {
		t.Fatalf("expected ScheduleIn(3) called once, got %+v", sched.scheduledIn)
	}
}

func TestDispatchDamagePlayerQueuesEffect(t *testing.T) {
	w := newWorld()
	v := view.New()
	sched := &fakeScheduler{}

	Dispatch([]Action{{Kind: KindDamagePlayer, Amount: 3, Cause: "trap"}}, w, v, sched)

	if len(w.Player.Health.Effects) != 1 {
		t.Fatalf("expected one queued effect, got %d", len(w.Player.Health.Effects))
	}
}
