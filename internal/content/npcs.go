package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
	"go.uber.org/multierr"
)

// RawNpc is the first-stage representation of an NPC loaded from TOML.
// Dialogue is keyed by state name ("normal", "bored", ... or a
// content-defined custom state name); State names the NPC's starting
// mood the same way.
type RawNpc struct {
	ID          string              `toml:"id"`
	Name        string              `toml:"name"`
	Description string              `toml:"description"`
	Location    RawLocation         `toml:"location"`
	State       string              `toml:"state"`
	MaxHP       int                 `toml:"max_hp"`
	Dialogue    map[string][]string `toml:"dialogue"`
}

// RawNpcFile is the wrapper TOML requires to deserialize a bare NPC
// array.
type RawNpcFile struct {
	Npcs []RawNpc `toml:"npcs"`
}

func loadRawNpcs(path string) ([]RawNpc, error) {
	var wrapper RawNpcFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing npc data from %q: %w", path, err)
	}
	return wrapper.Npcs, nil
}

// buildNpcs interns each NPC's token into the shared character symbol
// table (which the player loader also writes into) before converting.
func buildNpcs(raw []RawNpc, symbols *ids.SymbolTable) (map[ids.Id]*worldmodel.Npc, error) {
	for _, rn := range raw {
		symbols.InternCharacter(rn.ID)
	}

	npcs := make(map[ids.Id]*worldmodel.Npc, len(raw))
	var errs error
	for _, rn := range raw {
		npc, err := toNpc(rn, symbols)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("npc %q: %w", rn.ID, err))
			continue
		}
		npcs[npc.ID] = npc
	}
	if errs != nil {
		return nil, errs
	}
	return npcs, nil
}

func toNpc(rn RawNpc, symbols *ids.SymbolTable) (*worldmodel.Npc, error) {
	npcID, ok := symbols.Characters[rn.ID]
	if !ok {
		return nil, fmt.Errorf("id %q not found in character symbols", rn.ID)
	}
	loc, err := resolveLocation(rn.Location, symbols)
	if err != nil {
		return nil, err
	}

	maxHP := rn.MaxHP
	if maxHP <= 0 {
		maxHP = 10
	}
	npc := worldmodel.NewNpc(npcID, rn.ID, rn.Name, rn.Description, maxHP)
	npc.Location = loc
	npc.State = toNpcState(rn.State)

	for stateName, lines := range rn.Dialogue {
		state := toNpcState(stateName)
		if state.Kind == worldmodel.NpcCustom {
			npc.CustomDialogue[state.Custom] = lines
		} else {
			npc.Dialogue[state.Kind] = lines
		}
	}

	return npc, nil
}

// toNpcState maps a content-authored state name to an NpcState, falling
// back to a custom state carrying the name verbatim for anything not in
// the named set — the same open-ended fallback the original's
// NpcState::from_key used.
func toNpcState(name string) worldmodel.NpcState {
	switch name {
	case "", "normal":
		return worldmodel.NpcState{Kind: worldmodel.NpcNormal}
	case "bored":
		return worldmodel.NpcState{Kind: worldmodel.NpcBored}
	case "happy":
		return worldmodel.NpcState{Kind: worldmodel.NpcHappy}
	case "mad":
		return worldmodel.NpcState{Kind: worldmodel.NpcMad}
	case "sad":
		return worldmodel.NpcState{Kind: worldmodel.NpcSad}
	case "tired":
		return worldmodel.NpcState{Kind: worldmodel.NpcTired}
	default:
		return worldmodel.NpcState{Kind: worldmodel.NpcCustom, Custom: name}
	}
}
