package repl

import (
	"sort"
	"strings"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// describeRoom renders a room's base description plus any overlay text
// whose condition currently applies, in declaration order.
func describeRoom(w *worldmodel.AmbleWorld, room *worldmodel.Room) string {
	var b strings.Builder
	b.WriteString(room.BaseDescription)
	for _, overlay := range room.Overlays {
		if overlay.Applies(room.ID, w.Player.Flags, w.Items) {
			b.WriteString("\n")
			b.WriteString(overlay.Text)
		}
	}
	return b.String()
}

// listRoomContents names every listed (non-scenery, non-hidden) item
// directly in room, sorted for stable output.
func listRoomContents(w *worldmodel.AmbleWorld, room *worldmodel.Room) []string {
	var names []string
	for id := range room.Contents {
		item, ok := w.Items[id]
		if !ok || item.Visibility != worldmodel.VisibilityListed {
			continue
		}
		names = append(names, item.Name)
	}
	sort.Strings(names)
	return names
}

// listRoomNpcs names every NPC present in room, sorted for stable
// output.
func listRoomNpcs(w *worldmodel.AmbleWorld, room *worldmodel.Room) []string {
	var names []string
	for id := range room.Npcs {
		if npc, ok := w.Npcs[id]; ok {
			names = append(names, npc.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Look shows the player's current surroundings.
func (s *Session) Look() []condition.Event {
	room := s.World.PlayerRoom()
	if room == nil {
		s.View.Push(view.Item{Kind: view.KindError, Text: "you are nowhere"})
		return nil
	}
	text := describeRoom(s.World.AmbleWorld, room)
	if items := listRoomContents(s.World.AmbleWorld, room); len(items) > 0 {
		text += "\n\nYou see: " + strings.Join(items, ", ")
	}
	if npcs := listRoomNpcs(s.World.AmbleWorld, room); len(npcs) > 0 {
		text += "\n\nAlso here: " + strings.Join(npcs, ", ")
	}
	s.View.Push(view.Item{Kind: view.KindRoomDescription, Text: text})
	return nil
}

// LookAt shows the description of an item or NPC found in the current
// room, or the player's own inventory.
func (s *Session) LookAt(thing string) []condition.Event {
	scope := s.roomAndInventoryScope()
	entity, found := findWorldObject(scope, s.World.Items, s.World.Npcs, thing)
	if !found {
		s.entityNotFound(thing)
		return nil
	}
	switch {
	case entity.Item != nil:
		s.View.Push(view.Item{Kind: view.KindItemDescription, Text: entity.Item.Description})
	case entity.Npc != nil:
		s.View.Push(view.Item{Kind: view.KindNpcDescription, Text: entity.Npc.Description, NpcID: entity.Npc.ID, NpcName: entity.Npc.Name})
	}
	return nil
}

// Inventory lists what the player is carrying.
func (s *Session) Inventory() []condition.Event {
	if len(s.World.Player.Inventory) == 0 {
		s.View.Push(view.Item{Kind: view.KindInventory, Text: "You have... nothing. Nothing at all."})
		return nil
	}
	var names []string
	for id := range s.World.Player.Inventory {
		if item, ok := s.World.Items[id]; ok {
			names = append(names, item.Name)
		}
	}
	sort.Strings(names)
	s.View.Push(view.Item{Kind: view.KindInventory, Text: "You have: " + strings.Join(names, ", ")})
	return nil
}

// Read shows an item's text, if it has any, scoped to the current room
// plus inventory.
func (s *Session) Read(pattern string) []condition.Event {
	scope := s.roomAndInventoryScope()
	entity, found := findWorldObject(scope, s.World.Items, s.World.Npcs, pattern)
	if !found {
		s.entityNotFound(pattern)
		return nil
	}
	if entity.Item == nil || entity.Item.Text == "" {
		name := entity.Name()
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You see nothing legible on the " + name + "."})
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindItemDescription, Text: entity.Item.Text})
	return nil
}
