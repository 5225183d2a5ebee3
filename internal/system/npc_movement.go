// Package system runs the per-turn NPC behaviors that sit outside the
// handler/trigger/scheduler trio: right now, that's wandering and routed
// movement.
package system

import (
	"math/rand"
	"sort"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// TickNpcMovement advances every active NPC whose Movement.EveryNTurns
// divides turnCount, relocating it to its next room and pushing
// NpcLeft/NpcEntered view items scoped to whichever room the player
// currently occupies.
//
// NPCs are visited in a stable id order rather than w.Npcs' map order: two
// or more MovementRandom NPCs moving on the same turn must consume rng in
// a deterministic sequence, or the seeded-RNG reproducibility spec.md
// promises breaks on every run that iterates the map in a different order.
func TickNpcMovement(turnCount int, w *worldmodel.AmbleWorld, v *view.View, rng *rand.Rand) {
	playerRoom, _ := w.Player.Location.UnwrapRoom()

	ordered := make([]ids.Id, 0, len(w.Npcs))
	for id := range w.Npcs {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].String() < ordered[j].String() })

	for _, id := range ordered {
		npc := w.Npcs[id]
		m := npc.Movement
		if m == nil || !m.Active || len(m.Rooms) == 0 {
			continue
		}
		if m.EveryNTurns <= 0 || turnCount%m.EveryNTurns != 0 {
			continue
		}
		oldRoomID, ok := npc.Location.UnwrapRoom()
		if !ok {
			continue
		}

		var nextRoomID ids.Id
		switch m.Kind {
		case worldmodel.MovementRoute:
			nextRoomID = m.Rooms[m.NextRouteIndex()]
		case worldmodel.MovementRandom:
			nextRoomID = randomOtherRoom(m.Rooms, oldRoomID, rng)
		}
		if nextRoomID == oldRoomID || nextRoomID == (ids.Id{}) {
			continue
		}
		nextRoom, ok := w.Rooms[nextRoomID]
		if !ok {
			continue
		}

		if oldRoom, ok := w.Rooms[oldRoomID]; ok {
			oldRoom.RemoveNpc(id)
		}
		nextRoom.AddNpc(id)
		npc.Location = worldmodel.InRoom(nextRoomID)

		if oldRoomID == playerRoom {
			v.Push(view.Item{Kind: view.KindNpcLeft, NpcID: id, NpcName: npc.Name})
		}
		if nextRoomID == playerRoom {
			v.Push(view.Item{Kind: view.KindNpcEntered, NpcID: id, NpcName: npc.Name})
		}
	}
}

// randomOtherRoom picks uniformly among rooms minus current; falls back to
// current if rooms holds nothing else.
func randomOtherRoom(rooms []ids.Id, current ids.Id, rng *rand.Rand) ids.Id {
	choices := make([]ids.Id, 0, len(rooms))
	for _, r := range rooms {
		if r != current {
			choices = append(choices, r)
		}
	}
	if len(choices) == 0 {
		return current
	}
	return choices[rng.Intn(len(choices))]
}
