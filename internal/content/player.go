package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// RawPlayer is the first-stage representation of the player loaded from
// TOML. Player id shares the character namespace/symbol table with NPCs.
type RawPlayer struct {
	ID          string      `toml:"id"`
	Name        string      `toml:"name"`
	Description string      `toml:"description"`
	Location    RawLocation `toml:"location"`
	MaxHP       int         `toml:"max_hp"`
}

func loadRawPlayer(path string) (RawPlayer, error) {
	var rp RawPlayer
	if _, err := toml.DecodeFile(path, &rp); err != nil {
		return RawPlayer{}, fmt.Errorf("parsing player data from %q: %w", path, err)
	}
	return rp, nil
}

// buildPlayer interns the player's token into the shared character
// symbol table, then converts.
func buildPlayer(rp RawPlayer, symbols *ids.SymbolTable) (*worldmodel.Player, error) {
	symbols.InternCharacter(rp.ID)

	loc, err := resolveLocation(rp.Location, symbols)
	if err != nil {
		return nil, fmt.Errorf("player: %w", err)
	}

	maxHP := rp.MaxHP
	if maxHP <= 0 {
		maxHP = 20
	}
	player := worldmodel.NewPlayer(symbols.Characters[rp.ID], rp.Name, rp.Description, maxHP)
	player.Location = loc
	return player, nil
}
