package repl

import (
	"strings"
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func TestLookListsContentsAndNpcs(t *testing.T) {
	s := newTestSession(t)
	startID := ids.For(ids.NamespaceRoom, "start")
	addItem(s, ids.For(ids.NamespaceItem, "lamp"), "Lamp", worldmodel.InRoom(startID))
	addNpc(s, ids.For(ids.NamespaceCharacter, "guard"), "Guard", startID)
	mustPlace(t, s)

	s.Look()
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindRoomDescription {
		t.Fatalf("expected a single room description item, got %+v", got)
	}
	if !strings.Contains(got[0].Text, "Lamp") {
		t.Fatalf("expected room text to mention Lamp, got %q", got[0].Text)
	}
	if !strings.Contains(got[0].Text, "Guard") {
		t.Fatalf("expected room text to mention Guard, got %q", got[0].Text)
	}
}

func TestLookAtUnknownThingReportsFailure(t *testing.T) {
	s := newTestSession(t)
	s.LookAt("gremlin")
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindActionFailure {
		t.Fatalf("expected a failure item, got %+v", got)
	}
}

func TestReadReturnsItemText(t *testing.T) {
	s := newTestSession(t)
	startID := ids.For(ids.NamespaceRoom, "start")
	note := addItem(s, ids.For(ids.NamespaceItem, "note"), "Note", worldmodel.InRoom(startID))
	note.Text = "Meet me at midnight."
	mustPlace(t, s)

	s.Read("note")
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindItemDescription || got[0].Text != note.Text {
		t.Fatalf("expected note text item, got %+v", got)
	}
}

func TestReadItemWithNoTextFails(t *testing.T) {
	s := newTestSession(t)
	startID := ids.For(ids.NamespaceRoom, "start")
	addItem(s, ids.For(ids.NamespaceItem, "rock"), "Rock", worldmodel.InRoom(startID))
	mustPlace(t, s)

	s.Read("rock")
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindActionFailure {
		t.Fatalf("expected a failure item for unreadable item, got %+v", got)
	}
}

func TestInventoryEmpty(t *testing.T) {
	s := newTestSession(t)
	s.Inventory()
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindInventory {
		t.Fatalf("expected an inventory item, got %+v", got)
	}
	if !strings.Contains(got[0].Text, "nothing") {
		t.Fatalf("expected empty-inventory text, got %q", got[0].Text)
	}
}
