package worldmodel

import (
	"testing"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
)

func newTestContainer(id ids.Id, name string) *Item {
	item := NewItem(id, name, name, name+" description")
	state := ContainerOpen
	item.ContainerState = &state
	return item
}

func TestPlacePassNestedContainers(t *testing.T) {
	w := NewEmptyWorld("test")

	roomID := ids.For(ids.NamespaceRoom, "room")
	room := NewRoom(roomID, "room", "A Room", "a plain room")
	w.Rooms[roomID] = room

	outerID := ids.For(ids.NamespaceItem, "outer")
	outer := newTestContainer(outerID, "Outer Box")
	outer.Location = InRoom(roomID)
	w.Items[outerID] = outer

	innerID := ids.For(ids.NamespaceItem, "inner")
	inner := NewItem(innerID, "inner", "Inner Trinket", "a small trinket")
	inner.Location = InItem(outerID)
	w.Items[innerID] = inner

	w.Player = NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)

	if err := w.PlacePass(); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}

	if !room.Contents[outerID] || len(room.Contents) != 1 {
		t.Fatalf("expected room to contain only outer, got %v", room.Contents)
	}
	if !outer.Contents[innerID] || len(outer.Contents) != 1 {
		t.Fatalf("expected outer to contain only inner, got %v", outer.Contents)
	}
	if len(inner.Contents) != 0 {
		t.Fatalf("expected inner to have no contents, got %v", inner.Contents)
	}
}

func TestPlacePassRejectsNpcOutsideRoom(t *testing.T) {
	w := NewEmptyWorld("test")
	npcID := ids.For(ids.NamespaceCharacter, "stray")
	npc := NewNpc(npcID, "stray", "Stray", "a lost soul", 5)
	npc.Location = InInventory() // invalid: NPCs may only be Room or Nowhere
	w.Npcs[npcID] = npc
	w.Player = NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)

	if err := w.PlacePass(); err == nil {
		t.Fatalf("expected placement error for npc located outside a room")
	}
}

func TestMoveItemUpdatesBothIndexes(t *testing.T) {
	w := NewEmptyWorld("test")
	roomID := ids.For(ids.NamespaceRoom, "start")
	room := NewRoom(roomID, "start", "Start Room", "where you begin")
	w.Rooms[roomID] = room

	itemID := ids.For(ids.NamespaceItem, "key")
	item := NewItem(itemID, "key", "Key", "a small key")
	item.Movability = Free()
	item.Location = InRoom(roomID)
	w.Items[itemID] = item
	w.Player = NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)

	if err := w.PlacePass(); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}

	if err := w.MoveItem(itemID, InInventory()); err != nil {
		t.Fatalf("unexpected move error: %v", err)
	}

	if room.Contents[itemID] {
		t.Fatalf("expected room to no longer contain moved item")
	}
	if !w.Player.Inventory[itemID] {
		t.Fatalf("expected player inventory to contain moved item")
	}
	if item.Location.Kind != LocationInventory {
		t.Fatalf("expected item location to be Inventory, got %+v", item.Location)
	}
}

func TestMoveItemClearsRestriction(t *testing.T) {
	w := NewEmptyWorld("test")
	npcID := ids.For(ids.NamespaceCharacter, "sage")
	npc := NewNpc(npcID, "sage", "Sage", "a wise sage", 10)
	w.Npcs[npcID] = npc

	roomID := ids.For(ids.NamespaceRoom, "shrine")
	w.Rooms[roomID] = NewRoom(roomID, "shrine", "Shrine", "a quiet shrine")
	npc.Location = InRoom(roomID)

	itemID := ids.For(ids.NamespaceItem, "amulet")
	item := NewItem(itemID, "amulet", "Amulet", "a restricted amulet")
	item.Movability = Restricted("the sage won't part with it yet")
	item.Location = InNpc(npcID)
	w.Items[itemID] = item
	w.Player = NewPlayer(ids.For(ids.NamespaceCharacter, "player"), "Hero", "the hero", 10)

	if err := w.PlacePass(); err != nil {
		t.Fatalf("unexpected placement error: %v", err)
	}
	if !npc.Inventory[itemID] {
		t.Fatalf("expected npc inventory to contain amulet before transfer")
	}

	if err := w.MoveItem(itemID, InInventory()); err != nil {
		t.Fatalf("unexpected move error: %v", err)
	}

	if npc.Inventory[itemID] {
		t.Fatalf("expected npc inventory to no longer contain amulet")
	}
	if item.Movability.Kind != MovabilityFree {
		t.Fatalf("expected restriction cleared on pickup, got %+v", item.Movability)
	}
}
