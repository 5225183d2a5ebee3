package repl

import (
	"os"
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/content"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// newTestSession builds a minimal two-room world (start <-> hall, linked
// by a north/south exit) with an empty inventory, ready for handler
// tests to populate further.
func newTestSession(t *testing.T) *Session {
	t.Helper()
	w := worldmodel.NewEmptyWorld("test")

	startID := ids.For(ids.NamespaceRoom, "start")
	start := worldmodel.NewRoom(startID, "start", "Start Room", "a plain room")
	hallID := ids.For(ids.NamespaceRoom, "hall")
	hall := worldmodel.NewRoom(hallID, "hall", "Hall", "a long hall")
	start.Visited = true // the starting room is already known, like a freshly loaded game

	north := worldmodel.NewExit(hallID)
	start.Exits["north"] = north
	south := worldmodel.NewExit(startID)
	hall.Exits["south"] = south

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

	return &Session{
		World:   &content.World{AmbleWorld: w},
		View:    view.New(),
		SaveDir: dir,
		SaveExt: "toml",
	}
}

// addItem places a freely-movable, listed item at loc.
func addItem(s *Session, id ids.Id, name string, loc worldmodel.Location) *worldmodel.Item {
	item := worldmodel.NewItem(id, name, name, name+" description")
	item.Location = loc
	s.World.Items[id] = item
	return item
}

func addNpc(s *Session, id ids.Id, name string, roomID ids.Id) *worldmodel.Npc {
	npc := worldmodel.NewNpc(id, name, name, name+" description", 10)
	npc.Location = worldmodel.InRoom(roomID)
	s.World.Npcs[id] = npc
	return npc
}

func lastView(s *Session) []view.Item {
	return s.View.Flush()
}

// mustPlace re-runs placement after test setup adds items/npcs directly
// to the world's maps, so the derived room/container/npc indexes reflect
// their declared Location.
func mustPlace(t *testing.T, s *Session) {
	t.Helper()
	if err := s.World.PlacePass(); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}
}
