package repl

import (
	"strings"
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/content"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func TestHelpListsCommands(t *testing.T) {
	s := newTestSession(t)
	s.World.Help = content.HelpData{
		BasicText: "Welcome to Amble.",
		Commands:  []content.HelpCommand{{Command: "look", Description: "look around"}},
	}

	s.Help()
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindHelp {
		t.Fatalf("expected a help item, got %+v", got)
	}
	if !strings.Contains(got[0].Text, "Welcome to Amble.") || !strings.Contains(got[0].Text, "look") {
		t.Fatalf("expected help text to include intro and command, got %q", got[0].Text)
	}
}

func TestQuitReportsScore(t *testing.T) {
	s := newTestSession(t)
	s.World.Player.Score = 7

	s.Quit()
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindQuitSummary || got[0].Amount != 7 {
		t.Fatalf("expected a quit summary reporting score 7, got %+v", got)
	}
}

func TestSaveThenLoadRoundTripsPlayerState(t *testing.T) {
	s := newTestSession(t)
	startID := ids.For(ids.NamespaceRoom, "start")
	lamp := addItem(s, ids.For(ids.NamespaceItem, "lamp"), "Lamp", worldmodel.InInventory())
	mustPlace(t, s)
	s.World.Player.Score = 3

	s.Save("slot1")
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindSaveResult {
		t.Fatalf("expected a save-result item, got %+v", got)
	}

	s.World.Player.Score = 0
	s.World.Player.RemoveItem(lamp.ID)

	s.Load("slot1")
	got = lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindLoadResult {
		t.Fatalf("expected a load-result item, got %+v", got)
	}
	if s.World.Player.Score != 3 {
		t.Fatalf("expected score restored to 3, got %d", s.World.Player.Score)
	}
	if !s.World.Player.Inventory[lamp.ID] {
		t.Fatalf("expected lamp restored to inventory")
	}
	_ = startID
}

func TestLoadMissingSlotFails(t *testing.T) {
	s := newTestSession(t)
	s.Load("ghost")
	got := lastView(s)
	if len(got) != 1 || got[0].Kind != view.KindLoadResult {
		t.Fatalf("expected a load-result item reporting failure, got %+v", got)
	}
	if !strings.Contains(got[0].Text, "Unable to find") {
		t.Fatalf("expected a not-found message, got %q", got[0].Text)
	}
}
