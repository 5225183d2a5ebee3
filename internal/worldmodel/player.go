package worldmodel

import "github.com/pygmy-twylyte/amble-go/internal/ids"

// Player is the single playable character.
type Player struct {
	ID           ids.Id
	Name         string
	Description  string
	Location     Location
	Inventory    map[ids.Id]bool
	Flags        FlagSet
	Achievements map[string]bool
	Score        int
	Health       HealthState
}

// NewPlayer returns a Player with its collections initialized.
func NewPlayer(id ids.Id, name, description string, maxHP int) *Player {
	return &Player{
		ID:           id,
		Name:         name,
		Description:  description,
		Location:     Nowhere(),
		Inventory:    make(map[ids.Id]bool),
		Flags:        make(FlagSet),
		Achievements: make(map[string]bool),
		Health:       NewHealthState(maxHP),
	}
}

func (p *Player) AddItem(itemID ids.Id)    { p.Inventory[itemID] = true }
func (p *Player) RemoveItem(itemID ids.Id) { delete(p.Inventory, itemID) }
func (p *Player) ContainsItem(itemID ids.Id) bool { return p.Inventory[itemID] }
