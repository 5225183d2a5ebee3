// repl/inventory.go contains handlers for commands that move items
// between the room, containers, NPCs, and the player's own inventory.
package repl

import (
	"strings"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Take picks up an item from the current room into inventory, if it is
// portable.
func (s *Session) Take(pattern string) []condition.Event {
	entity, found := findWorldObject(s.roomScope(), s.World.Items, s.World.Npcs, pattern)
	if !found {
		s.entityNotFound(pattern)
		return nil
	}
	if entity.Item == nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: pattern + " isn't something you can take."})
		return nil
	}
	item := entity.Item
	if item.Movability.Kind != worldmodel.MovabilityFree {
		reason := item.Movability.Reason
		if reason == "" {
			reason = "you can't take that."
		}
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: reason})
		return nil
	}
	if err := s.World.MoveItem(item.ID, worldmodel.InInventory()); err != nil {
		s.reportError(err)
		return nil
	}
	verb := s.spinOr(spinner.TakeVerb, "take")
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You " + verb + " the " + item.Name + "."})
	return condEvent(condition.NewTake(item.ID))
}

// Drop puts an inventory item into the current room.
func (s *Session) Drop(pattern string) []condition.Event {
	entity, found := findWorldObject(s.inventoryScope(), s.World.Items, s.World.Npcs, pattern)
	if !found {
		s.entityNotFound(pattern)
		return nil
	}
	if entity.Item == nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: pattern + " isn't something you can drop."})
		return nil
	}
	room := s.World.PlayerRoom()
	if room == nil {
		s.View.Push(view.Item{Kind: view.KindError, Text: "you are nowhere"})
		return nil
	}
	item := entity.Item
	if err := s.World.MoveItem(item.ID, worldmodel.InRoom(room.ID)); err != nil {
		s.reportError(err)
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You dropped the " + item.Name + "."})
	return condEvent(condition.NewDrop(item.ID))
}

// PutIn moves an item (from the room or inventory) into an open
// container nearby.
func (s *Session) PutIn(itemPattern, containerPattern string) []condition.Event {
	scope := s.roomAndInventoryScope()
	itemEntity, found := findWorldObject(scope, s.World.Items, s.World.Npcs, itemPattern)
	if !found || itemEntity.Item == nil {
		s.entityNotFound(itemPattern)
		return nil
	}
	containerEntity, found := findWorldObject(s.roomScope(), s.World.Items, s.World.Npcs, containerPattern)
	if !found || containerEntity.Item == nil {
		s.entityNotFound(containerPattern)
		return nil
	}
	container := containerEntity.Item
	item := itemEntity.Item
	if item.ID == container.ID {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You can't put the " + item.Name + " inside itself."})
		return nil
	}
	if !container.IsAccessible() {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You can't put anything in the " + container.Name + " right now."})
		return nil
	}
	if err := s.World.MoveItem(item.ID, worldmodel.InItem(container.ID)); err != nil {
		s.reportError(err)
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You put the " + item.Name + " in the " + container.Name + "."})
	return condEvent(condition.NewInsert(item.ID, container.ID))
}

// TakeFrom moves an item out of a nearby accessible container into
// inventory.
func (s *Session) TakeFrom(itemPattern, containerPattern string) []condition.Event {
	containerEntity, found := findWorldObject(s.roomAndInventoryScope(), s.World.Items, s.World.Npcs, containerPattern)
	if !found || containerEntity.Item == nil {
		s.entityNotFound(containerPattern)
		return nil
	}
	container := containerEntity.Item
	if !container.IsAccessible() {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You can't reach into the " + container.Name + " right now."})
		return nil
	}

	var contentIDs []ids.Id
	for id := range container.Contents {
		contentIDs = append(contentIDs, id)
	}
	itemEntity, found := findWorldObject(contentIDs, s.World.Items, s.World.Npcs, itemPattern)
	if !found || itemEntity.Item == nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "There's no " + itemPattern + " in the " + container.Name + "."})
		return nil
	}

	item := itemEntity.Item
	if err := s.World.MoveItem(item.ID, worldmodel.InInventory()); err != nil {
		s.reportError(err)
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You took the " + item.Name + " from the " + container.Name + "."})
	return condEvent(condition.NewTake(item.ID))
}

// selectNpc returns the first NPC in room whose name contains query.
func selectNpc(room *worldmodel.Room, npcs map[ids.Id]*worldmodel.Npc, query string) (*worldmodel.Npc, bool) {
	needle := strings.ToLower(query)
	for id := range room.Npcs {
		npc, ok := npcs[id]
		if ok && strings.Contains(strings.ToLower(npc.Name), needle) {
			return npc, true
		}
	}
	return nil, false
}

// TalkTo has the player speak to an NPC present in the current room,
// drawing a random line of that NPC's dialogue for their current state.
func (s *Session) TalkTo(npcName string) []condition.Event {
	room := s.World.PlayerRoom()
	if room == nil {
		s.View.Push(view.Item{Kind: view.KindError, Text: "you are nowhere"})
		return nil
	}
	npc, found := selectNpc(room, s.World.Npcs, npcName)
	if !found {
		s.entityNotFound(npcName)
		return nil
	}
	lines, ok := npc.DialogueLines()
	text := s.spinOr(spinner.NpcIgnore, "... they ignore you.")
	if ok && len(lines) > 0 {
		text = lines[s.World.RNG.Intn(len(lines))]
	}
	s.View.Push(view.Item{Kind: view.KindNpcSpeech, Text: text, NpcID: npc.ID, NpcName: npc.Name})
	return condEvent(condition.NewTalkToNpc(npc.ID))
}

// GiveToNpc hands a portable inventory item to an NPC present in the
// current room.
func (s *Session) GiveToNpc(itemPattern, npcPattern string) []condition.Event {
	room := s.World.PlayerRoom()
	if room == nil {
		s.View.Push(view.Item{Kind: view.KindError, Text: "you are nowhere"})
		return nil
	}
	npc, found := selectNpc(room, s.World.Npcs, npcPattern)
	if !found {
		s.entityNotFound(npcPattern)
		return nil
	}
	itemEntity, found := findWorldObject(s.inventoryScope(), s.World.Items, s.World.Npcs, itemPattern)
	if !found || itemEntity.Item == nil {
		s.entityNotFound(itemPattern)
		return nil
	}
	item := itemEntity.Item
	if item.Movability.Kind != worldmodel.MovabilityFree {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "Sorry, the " + item.Name + " isn't portable."})
		return nil
	}
	if err := s.World.MoveItem(item.ID, worldmodel.InNpc(npc.ID)); err != nil {
		s.reportError(err)
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You gave the " + item.Name + " to " + npc.Name + "."})
	return []condition.Event{condition.NewDrop(item.ID), condition.NewGiveToNpc(item.ID, npc.ID)}
}
