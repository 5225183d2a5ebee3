package content

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func TestBuildNpcsMapsDialogueByNamedState(t *testing.T) {
	symbols := ids.NewSymbolTable()
	raw := []RawNpc{{
		ID:   "hermit",
		Name: "Old Hermit",
		Dialogue: map[string][]string{
			"happy":        {"Good to see you!"},
			"moonstruck":   {"The moon speaks to me."},
		},
	}}

	npcs, err := buildNpcs(raw, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hermit := npcs[symbols.Characters["hermit"]]
	if got := hermit.Dialogue[worldmodel.NpcHappy]; len(got) != 1 || got[0] != "Good to see you!" {
		t.Fatalf("expected happy-state dialogue line, got %v", got)
	}
	if got := hermit.CustomDialogue["moonstruck"]; len(got) != 1 {
		t.Fatalf("expected a custom 'moonstruck' dialogue entry, got %v", got)
	}
}

func TestBuildNpcsDefaultsMaxHP(t *testing.T) {
	symbols := ids.NewSymbolTable()
	raw := []RawNpc{{ID: "guard", Name: "Guard"}}
	npcs, err := buildNpcs(raw, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	guard := npcs[symbols.Characters["guard"]]
	if guard.Health.MaxHP != 10 {
		t.Fatalf("expected default max HP of 10, got %d", guard.Health.MaxHP)
	}
}

func TestToNpcStateFallsBackToCustom(t *testing.T) {
	state := toNpcState("grumpy")
	if state.Kind != worldmodel.NpcCustom || state.Custom != "grumpy" {
		t.Fatalf("expected custom fallback state for 'grumpy', got %+v", state)
	}
}
