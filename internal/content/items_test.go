package content

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

func TestBuildItemsResolvesTargetedUnlockAbility(t *testing.T) {
	symbols := ids.NewSymbolTable()
	raw := []RawItem{
		{ID: "chest", Name: "Iron Chest", ContainerState: "locked"},
		{ID: "key", Name: "Iron Key", Abilities: []RawItemAbility{{Type: "unlock", Target: "chest"}}},
	}

	items, err := buildItems(raw, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := items[symbols.Items["key"]]
	chest := items[symbols.Items["chest"]]

	if !key.Abilities[worldmodel.AbilityUnlock] {
		t.Fatal("expected key to have the unlock ability")
	}
	if !key.CanUnlock(chest.ID) {
		t.Fatal("expected key to be able to unlock its declared target")
	}

	other := ids.For(ids.NamespaceItem, "some-other-locked-thing")
	if key.CanUnlock(other) {
		t.Fatal("expected a targeted key not to unlock an unrelated item")
	}
}

func TestBuildItemsGenericUnlockKeyOpensAnything(t *testing.T) {
	symbols := ids.NewSymbolTable()
	raw := []RawItem{
		{ID: "skeleton-key", Name: "Skeleton Key", Abilities: []RawItemAbility{{Type: "unlock"}}},
	}
	items, err := buildItems(raw, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	key := items[symbols.Items["skeleton-key"]]
	arbitrary := ids.For(ids.NamespaceItem, "anything")
	if !key.CanUnlock(arbitrary) {
		t.Fatal("expected a generic key (no target) to unlock anything requiring AbilityUnlock")
	}
}

func TestBuildItemsUnknownAbilityErrors(t *testing.T) {
	symbols := ids.NewSymbolTable()
	raw := []RawItem{{ID: "thing", Abilities: []RawItemAbility{{Type: "not-a-real-ability"}}}}
	if _, err := buildItems(raw, symbols); err == nil {
		t.Fatal("expected an error for an unrecognized ability type")
	}
}

func TestBuildItemsDefaultsMovabilityAndVisibility(t *testing.T) {
	symbols := ids.NewSymbolTable()
	raw := []RawItem{{ID: "rock", Name: "Rock"}}
	items, err := buildItems(raw, symbols)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rock := items[symbols.Items["rock"]]
	if rock.Movability.Kind != worldmodel.MovabilityFree {
		t.Fatalf("expected default movability 'free', got %+v", rock.Movability)
	}
	if rock.Visibility != worldmodel.VisibilityListed {
		t.Fatalf("expected default visibility 'listed', got %v", rock.Visibility)
	}
}
