package repl

import (
	"fmt"
	"strings"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// matchExit finds the first exit direction key in room that contains
// input as a substring, mirroring the permissive "n" matches "north"
// convention.
func matchExit(room *worldmodel.Room, input string) (string, worldmodel.Exit, bool) {
	for dir, exit := range room.Exits {
		if strings.Contains(dir, input) {
			return dir, exit, true
		}
	}
	return "", worldmodel.Exit{}, false
}

// unmetRequirements reports which required flags/items the player is
// still missing for exit.
func unmetRequirements(exit worldmodel.Exit, player *worldmodel.Player) (missingFlags, missingItems bool) {
	for flag := range exit.RequiredFlags {
		if !player.Flags.Has(flag) {
			missingFlags = true
			break
		}
	}
	for item := range exit.RequiredItems {
		if !player.ContainsItem(item) {
			missingItems = true
			break
		}
	}
	return missingFlags, missingItems
}

// MoveTo moves the player through the exit matching direction, if one
// exists, is unlocked, and every requirement is met.
func (s *Session) MoveTo(direction string) []condition.Event {
	room := s.World.PlayerRoom()
	if room == nil {
		s.View.Push(view.Item{Kind: view.KindError, Text: "you are nowhere"})
		return nil
	}

	dir, exit, found := matchExit(room, strings.ToLower(direction))
	if !found {
		msg := s.spinOr(spinner.DestinationUnknown, "Which way is "+direction+"?")
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: msg})
		return nil
	}

	if exit.Locked {
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: "You can't go that way (" + dir + ") -- it's locked."})
		return nil
	}

	missingFlags, missingItems := unmetRequirements(exit, s.World.Player)
	if missingFlags || missingItems {
		msg := exit.BarredMessage
		if msg == "" {
			msg = "You can't go that way because... \"reasons\""
		}
		s.View.Push(view.Item{Kind: view.KindActionFailure, Text: msg})
		return nil
	}

	leavingID := room.ID
	destination, ok := s.World.Rooms[exit.To]
	if !ok {
		s.reportError(fmt.Errorf("move: exit destination %s not found", exit.To))
		return nil
	}

	s.World.Player.Location = worldmodel.InRoom(exit.To)
	travelMsg := s.spinOr(spinner.Movement, "You head that way...")
	s.View.Push(view.Item{Kind: view.KindActionResult, Text: travelMsg})

	if destination.Visited {
		s.View.Push(view.Item{Kind: view.KindRoomDescription, Text: destination.Name})
	} else {
		s.World.Player.Score++
		s.View.Push(view.Item{Kind: view.KindRoomDescription, Text: describeRoom(s.World.AmbleWorld, destination)})
	}
	destination.Visited = true

	return []condition.Event{condition.NewLeave(leavingID), condition.NewEnter(exit.To)}
}
