package repl

import (
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// findContainer resolves pattern to an item within scope, reporting the
// standard failures for "not an item" and "nothing like that nearby".
func (s *Session) findContainer(scope []ids.Id, pattern, verbNoun string) (*worldmodel.Item, bool) {
	entity, found := findWorldObject(scope, s.World.Items, s.World.Npcs, pattern)
	if !found {
		s.entityNotFound(pattern)
		return nil, false
	}
	if entity.Item == nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: pattern + " isn't something you can " + verbNoun + "."})
		return nil, false
	}
	return entity.Item, true
}

// Open opens a closed, unlocked container nearby or in inventory.
func (s *Session) Open(pattern string) []condition.Event {
	item, ok := s.findContainer(s.roomAndInventoryScope(), pattern, "open")
	if !ok {
		return nil
	}
	if !item.IsContainer() {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " can't be opened."})
		return nil
	}
	switch *item.ContainerState {
	case worldmodel.ContainerLocked, worldmodel.ContainerTransparentLocked:
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " is locked. You'll have to unlock it first."})
		return nil
	case worldmodel.ContainerOpen:
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " is already open."})
		return nil
	}
	open := worldmodel.ContainerOpen
	item.ContainerState = &open
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You opened the " + item.Name + "."})
	return condEvent(condition.NewOpen(item.ID))
}

// Close closes an open container nearby or in inventory.
func (s *Session) Close(pattern string) []condition.Event {
	item, ok := s.findContainer(s.roomAndInventoryScope(), pattern, "close")
	if !ok {
		return nil
	}
	if !item.IsContainer() {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " isn't something that can be closed."})
		return nil
	}
	if *item.ContainerState != worldmodel.ContainerOpen {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " is already closed."})
		return nil
	}
	closed := worldmodel.ContainerClosed
	item.ContainerState = &closed
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You closed the " + item.Name + "."})
	return nil
}

// Lock locks an unlocked container in the current room.
func (s *Session) Lock(pattern string) []condition.Event {
	item, ok := s.findContainer(s.roomScope(), pattern, "lock")
	if !ok {
		return nil
	}
	if !item.IsContainer() {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " isn't something that can be locked."})
		return nil
	}
	switch *item.ContainerState {
	case worldmodel.ContainerLocked, worldmodel.ContainerTransparentLocked:
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " is already locked."})
		return nil
	}
	locked := worldmodel.ContainerLocked
	item.ContainerState = &locked
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You locked the " + item.Name + "."})
	return nil
}

// Unlock unlocks and opens a container in the current room, if the
// player carries a key valid for it.
func (s *Session) Unlock(pattern string) []condition.Event {
	item, ok := s.findContainer(s.roomScope(), pattern, "unlock")
	if !ok {
		return nil
	}
	if !item.IsContainer() {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " isn't something that can be unlocked."})
		return nil
	}
	switch *item.ContainerState {
	case worldmodel.ContainerOpen, worldmodel.ContainerClosed, worldmodel.ContainerTransparentClosed:
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " is already unlocked."})
		return nil
	}

	hasKey := false
	for id := range s.World.Player.Inventory {
		if key, ok := s.World.Items[id]; ok && key.CanUnlock(item.ID) {
			hasKey = true
			break
		}
	}
	if !hasKey {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You don't have anything that can unlock the " + item.Name + "."})
		return nil
	}

	open := worldmodel.ContainerOpen
	item.ContainerState = &open
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You unlocked the " + item.Name + "."})
	return condEvent(condition.NewUnlock(item.ID))
}

// TurnOn switches on an item carrying AbilityTurnOn, if any; the engine's
// event vocabulary has no dedicated "item switched on" event, so this
// never feeds the trigger engine — it is purely narrative feedback.
func (s *Session) TurnOn(pattern string) []condition.Event {
	entity, found := findWorldObject(s.roomAndInventoryScope(), s.World.Items, s.World.Npcs, pattern)
	if !found {
		s.entityNotFound(pattern)
		return nil
	}
	if entity.Npc != nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: entity.Npc.Name + " is impervious to your attempt at seduction."})
		return nil
	}
	item := entity.Item
	if !item.Abilities[worldmodel.AbilityTurnOn] {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "The " + item.Name + " can't be turned on."})
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: "You hear a clicking sound and then... nothing happens."})
	return nil
}

// interactionFromVerb maps a use-item-on verb word to the two-item
// interaction it names.
func interactionFromVerb(verb string) (worldmodel.ItemInteraction, bool) {
	switch verb {
	case "break":
		return worldmodel.InteractionBreak, true
	case "burn":
		return worldmodel.InteractionBurn, true
	case "cover":
		return worldmodel.InteractionCover, true
	case "cut":
		return worldmodel.InteractionCut, true
	case "handle", "use":
		return worldmodel.InteractionHandle, true
	case "move":
		return worldmodel.InteractionMove, true
	case "turn":
		return worldmodel.InteractionTurn, true
	case "unlockwith":
		return worldmodel.InteractionUnlock, true
	default:
		return 0, false
	}
}

// UseItemOn applies tool (from inventory) to target (nearby or in
// inventory) via interaction verb, if the target requires exactly that
// ability of the tool.
func (s *Session) UseItemOn(verb, tool, target string) []condition.Event {
	interaction, ok := interactionFromVerb(verb)
	if !ok {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You don't know how to " + verb + " like that."})
		return nil
	}

	targetScope := s.roomAndInventoryScope()
	targetEntity, found := findWorldObject(targetScope, s.World.Items, s.World.Npcs, target)
	if !found || targetEntity.Item == nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You don't see any " + target + " nearby."})
		return nil
	}
	toolEntity, found := findWorldObject(s.inventoryScope(), s.World.Items, s.World.Npcs, tool)
	if !found || toolEntity.Item == nil {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You don't have any " + tool + " in inventory."})
		return nil
	}

	required, needsAbility := targetEntity.Item.RequiresAbilityFor(interaction)
	if !needsAbility || !toolEntity.Item.Abilities[required] {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You can't do that with a " + toolEntity.Item.Name + "!"})
		return nil
	}

	return condEvent(condition.NewUseItemOnItem(int(interaction), toolEntity.Item.ID, targetEntity.Item.ID))
}
