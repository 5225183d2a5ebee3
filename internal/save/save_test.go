package save

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func newTestWorld() *worldmodel.AmbleWorld {
	w := worldmodel.NewEmptyWorld("0.1.0")
	roomID := ids.For(ids.NamespaceRoom, "start")
	room := worldmodel.NewRoom(roomID, "start", "Start Room", "a plain room")
	room.Visited = true
	w.Rooms[roomID] = room

	w.Player = worldmodel.NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)
	w.Player.Location = worldmodel.InRoom(roomID)
	w.Player.Score = 42
	w.Player.Flags.Set(worldmodel.NewSimpleFlag("met-sage", 3))
	w.TurnCount = 7
	return w
}

func TestBuildAndApplySnapshotRoundTrips(t *testing.T) {
	w := newTestWorld()
	snap := BuildSnapshot(w, "0.1.0")

	fresh := worldmodel.NewEmptyWorld("0.1.0")
	roomID := ids.For(ids.NamespaceRoom, "start")
	fresh.Rooms[roomID] = worldmodel.NewRoom(roomID, "start", "Start Room", "a plain room")
	fresh.Player = worldmodel.NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "", "", 10)

	if err := ApplySnapshot(snap, fresh); err != nil {
		t.Fatalf("ApplySnapshot: %v", err)
	}
	if fresh.TurnCount != 7 {
		t.Fatalf("expected turn count 7, got %d", fresh.TurnCount)
	}
	if fresh.Player.Score != 42 {
		t.Fatalf("expected score 42, got %d", fresh.Player.Score)
	}
	if !fresh.Player.Flags.Has("met-sage") {
		t.Fatalf("expected flag met-sage restored")
	}
	if !fresh.Rooms[roomID].Visited {
		t.Fatalf("expected room marked visited")
	}
	room, ok := fresh.Player.Location.UnwrapRoom()
	if !ok || room != roomID {
		t.Fatalf("expected player restored to start room, got %+v", fresh.Player.Location)
	}
}

func TestWriteAndReadRoundTrip(t *testing.T) {
	w := newTestWorld()
	snap := BuildSnapshot(w, "0.1.0")

	dir := t.TempDir()
	path := filepath.Join(dir, "alpha-amble-0.1.0.toml")
	if err := Write(path, snap); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.PlayerName != "Hero" || got.TurnCount != 7 {
		t.Fatalf("expected round-tripped snapshot, got %+v", got)
	}
}

func TestCollectSlotsHandlesMissingDirectory(t *testing.T) {
	slots, err := CollectSlots(filepath.Join(t.TempDir(), "missing"), "toml")
	if err != nil {
		t.Fatalf("expected no error for missing dir, got %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %+v", slots)
	}
}

func TestCollectSlotsSkipsNonMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	mustWrite(t, filepath.Join(dir, "alpha-amble-0.1.0.toml"), "version = \"0.1.0\"\n")
	mustWrite(t, filepath.Join(dir, "notes.txt"), "ignore me")

	slots, err := CollectSlots(dir, "toml")
	if err != nil {
		t.Fatalf("CollectSlots: %v", err)
	}
	if len(slots) != 1 || slots[0].Slot != "alpha" || slots[0].Version != "0.1.0" {
		t.Fatalf("expected one slot 'alpha'/'0.1.0', got %+v", slots)
	}
}

func TestBuildEntriesReportsStatusVariants(t *testing.T) {
	dir := t.TempDir()
	w := newTestWorld()

	readySnap := BuildSnapshot(w, "0.1.0")
	mustWriteSnapshot(t, filepath.Join(dir, "alpha-amble-0.1.0.toml"), readySnap)

	staleSnap := BuildSnapshot(w, "0.0.9")
	mustWriteSnapshot(t, filepath.Join(dir, "beta-amble-0.0.9.toml"), staleSnap)

	mustWrite(t, filepath.Join(dir, "gamma-amble-0.1.0.toml"), "this is not valid toml {{{")

	entries, err := BuildEntries(dir, "toml", "0.1.0", nil)
	if err != nil {
		t.Fatalf("BuildEntries: %v", err)
	}
	byName := map[string]Entry{}
	for _, e := range entries {
		byName[e.Slot] = e
	}

	if byName["alpha"].Status.Kind != StatusReady {
		t.Fatalf("expected alpha Ready, got %+v", byName["alpha"].Status)
	}
	if byName["beta"].Status.Kind != StatusVersionMismatch {
		t.Fatalf("expected beta VersionMismatch, got %+v", byName["beta"].Status)
	}
	if byName["gamma"].Status.Kind != StatusCorrupted {
		t.Fatalf("expected gamma Corrupted, got %+v", byName["gamma"].Status)
	}
	if byName["gamma"].Summary != nil {
		t.Fatalf("expected no summary for a corrupted save")
	}
	if byName["alpha"].Summary == nil || byName["alpha"].Summary.PlayerName != "Hero" {
		t.Fatalf("expected alpha summary with player name Hero, got %+v", byName["alpha"].Summary)
	}
}

func TestModifiedAgoHandlesZeroTime(t *testing.T) {
	e := Entry{}
	if got := e.ModifiedAgo(); got != "unknown" {
		t.Fatalf("expected 'unknown' for zero time, got %q", got)
	}
	e.Modified = time.Now().Add(-2 * time.Minute)
	if got := e.ModifiedAgo(); got == "unknown" || got == "" {
		t.Fatalf("expected a relative time string, got %q", got)
	}
}

func mustWrite(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustWriteSnapshot(t *testing.T, path string, snap Snapshot) {
	t.Helper()
	if err := Write(path, snap); err != nil {
		t.Fatalf("write snapshot %s: %v", path, err)
	}
}
