package worldmodel

import "github.com/pygmy-twylyte/amble-go/internal/ids"

// NpcStateKind discriminates NpcState: the named moods plus an open-ended
// Custom variant for content-defined states.
type NpcStateKind int

const (
	NpcNormal NpcStateKind = iota
	NpcBored
	NpcHappy
	NpcMad
	NpcSad
	NpcTired
	NpcCustom
)

// NpcState is the demeanor/mood an NPC is in, which selects its dialogue
// table and may gate triggers.
type NpcState struct {
	Kind   NpcStateKind
	Custom string // meaningful only when Kind == NpcCustom
}

func (s NpcState) String() string {
	switch s.Kind {
	case NpcNormal:
		return "Normal"
	case NpcBored:
		return "Bored"
	case NpcHappy:
		return "Happy"
	case NpcMad:
		return "Mad"
	case NpcSad:
		return "Sad"
	case NpcTired:
		return "Tired"
	case NpcCustom:
		return s.Custom
	default:
		return "Normal"
	}
}

func (s NpcState) Equal(other NpcState) bool {
	if s.Kind != other.Kind {
		return false
	}
	if s.Kind == NpcCustom {
		return s.Custom == other.Custom
	}
	return true
}

// MovementKind discriminates Movement.
type MovementKind int

const (
	MovementRandom MovementKind = iota
	MovementRoute
)

// Movement describes a scheduled migration across a fixed set of rooms.
type Movement struct {
	Kind         MovementKind
	Rooms        []ids.Id
	EveryNTurns  int
	Active       bool
	nextRouteIdx int // round-robin cursor for MovementRoute
}

// NextRouteIndex returns the index into Rooms the next Route move should
// land on, and advances the cursor.
func (m *Movement) NextRouteIndex() int {
	if len(m.Rooms) == 0 {
		return 0
	}
	idx := m.nextRouteIdx % len(m.Rooms)
	m.nextRouteIdx = (m.nextRouteIdx + 1) % len(m.Rooms)
	return idx
}

// Npc is a non-player character.
type Npc struct {
	ID          ids.Id
	Symbol      string
	Name        string
	Description string
	Location    Location // must be Nowhere or InRoom
	Inventory   map[ids.Id]bool
	Dialogue    map[NpcStateKind][]string // keyed by Kind; Custom states look up via CustomDialogue
	CustomDialogue map[string][]string
	State       NpcState
	Movement    *Movement
	Health      HealthState
}

// NewNpc returns an Npc with its collections initialized and full health.
func NewNpc(id ids.Id, symbol, name, description string, maxHP int) *Npc {
	return &Npc{
		ID:             id,
		Symbol:         symbol,
		Name:           name,
		Description:    description,
		Location:       Nowhere(),
		Inventory:      make(map[ids.Id]bool),
		Dialogue:       make(map[NpcStateKind][]string),
		CustomDialogue: make(map[string][]string),
		State:          NpcState{Kind: NpcNormal},
		Health:         NewHealthState(maxHP),
	}
}

func (n *Npc) AddItem(itemID ids.Id)    { n.Inventory[itemID] = true }
func (n *Npc) RemoveItem(itemID ids.Id) { delete(n.Inventory, itemID) }
func (n *Npc) ContainsItem(itemID ids.Id) bool { return n.Inventory[itemID] }

// DialogueLines returns the lines registered for the NPC's current state.
func (n *Npc) DialogueLines() ([]string, bool) {
	if n.State.Kind == NpcCustom {
		lines, ok := n.CustomDialogue[n.State.Custom]
		return lines, ok
	}
	lines, ok := n.Dialogue[n.State.Kind]
	return lines, ok
}
