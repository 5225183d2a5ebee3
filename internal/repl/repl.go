// Package repl implements the command handlers that turn a parsed
// command.Command into world mutations and view.Item output. Each
// handler returns the condition.Event list it observed for its action
// (usually at most one; empty for a failed or purely informational
// command), which the turn loop folds into the next trigger check —
// handlers never consult the trigger engine directly.
package repl

import (
	"strings"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/content"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// Session bundles the collaborators every handler needs: the live world,
// the turn's accumulating view, and the save-file location the Load/Save
// handlers read and write.
type Session struct {
	World   *content.World
	View    *view.View
	SaveDir string
	SaveExt string
}

// WorldEntity names either an Item or an Npc found by a name search;
// exactly one field is non-nil.
type WorldEntity struct {
	Item *worldmodel.Item
	Npc  *worldmodel.Npc
}

// Name returns the matched entity's display name.
func (e WorldEntity) Name() string {
	switch {
	case e.Item != nil:
		return e.Item.Name
	case e.Npc != nil:
		return e.Npc.Name
	default:
		return ""
	}
}

// findWorldObject searches nearby (an id scope such as a room's contents
// plus the player's inventory) for the first item or NPC whose name
// contains term, case-insensitively.
func findWorldObject(nearby []ids.Id, items map[ids.Id]*worldmodel.Item, npcs map[ids.Id]*worldmodel.Npc, term string) (WorldEntity, bool) {
	needle := strings.ToLower(term)
	for _, id := range nearby {
		if item, ok := items[id]; ok && strings.Contains(strings.ToLower(item.Name), needle) {
			return WorldEntity{Item: item}, true
		}
		if npc, ok := npcs[id]; ok && strings.Contains(strings.ToLower(npc.Name), needle) {
			return WorldEntity{Npc: npc}, true
		}
	}
	return WorldEntity{}, false
}

// entityNotFound pushes the standard "what's that?" failure response.
func (s *Session) entityNotFound(term string) {
	msg := s.spinOr(spinner.EntityNotFound, "What's that?")
	s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "\"" + term + "\"? " + msg})
}

// spinOr draws from typ, falling back to fallback if the table has no
// entry for it.
func (s *Session) spinOr(typ spinner.Type, fallback string) string {
	if got := s.World.Spinners.Spin(typ, s.World.RNG); got != "" {
		return got
	}
	return fallback
}

// roomAndInventoryScope returns the ids of everything in the player's
// current room plus their own inventory — the usual search scope for
// "nearby" item/container commands.
func (s *Session) roomAndInventoryScope() []ids.Id {
	var scope []ids.Id
	if room := s.World.PlayerRoom(); room != nil {
		for id := range room.Contents {
			scope = append(scope, id)
		}
		for id := range room.Npcs {
			scope = append(scope, id)
		}
	}
	for id := range s.World.Player.Inventory {
		scope = append(scope, id)
	}
	return scope
}

// roomScope returns the ids of items and NPCs in the player's current
// room only, excluding inventory.
func (s *Session) roomScope() []ids.Id {
	var scope []ids.Id
	room := s.World.PlayerRoom()
	if room == nil {
		return scope
	}
	for id := range room.Contents {
		scope = append(scope, id)
	}
	for id := range room.Npcs {
		scope = append(scope, id)
	}
	return scope
}

// inventoryScope returns the ids of everything the player is carrying.
func (s *Session) inventoryScope() []ids.Id {
	var scope []ids.Id
	for id := range s.World.Player.Inventory {
		scope = append(scope, id)
	}
	return scope
}

func (s *Session) reportError(err error) {
	s.View.Push(view.Item{Kind: view.KindError, Text: err.Error()})
}

// condEvent is the single-event return shape most handlers use.
func condEvent(e condition.Event) []condition.Event { return []condition.Event{e} }
