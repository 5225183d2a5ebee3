package worldmodel

import "github.com/pygmy-twylyte/amble-go/internal/ids"

// ItemAbility is something an item can do when an action invokes it.
type ItemAbility int

const (
	AbilityClean ItemAbility = iota
	AbilityCutWood
	AbilityIgnite
	AbilityInsulate
	AbilityPluck
	AbilityPry
	AbilityRead
	AbilitySharpen
	AbilitySmash
	AbilityTurnOn
	AbilityTurnOff
	AbilityUnlock
	AbilityUse
)

func (a ItemAbility) String() string {
	switch a {
	case AbilityClean:
		return "clean"
	case AbilityCutWood:
		return "cut wood"
	case AbilityIgnite:
		return "ignite"
	case AbilityInsulate:
		return "insulate"
	case AbilityPluck:
		return "pluck"
	case AbilityPry:
		return "pry"
	case AbilityRead:
		return "read"
	case AbilitySharpen:
		return "sharpen"
	case AbilitySmash:
		return "smash"
	case AbilityTurnOn:
		return "turn on"
	case AbilityTurnOff:
		return "turn off"
	case AbilityUnlock:
		return "unlock"
	case AbilityUse:
		return "use"
	default:
		return "do something with"
	}
}

// ItemInteraction names a two-item verb: "cut rope with knife". It is
// only permitted when the tool item carries the ability the target's
// InteractionRequires map lists for that interaction.
type ItemInteraction int

const (
	InteractionBreak ItemInteraction = iota
	InteractionBurn
	InteractionCover
	InteractionCut
	InteractionHandle
	InteractionMove
	InteractionTurn
	InteractionUnlock
)

// MovabilityKind discriminates Item.Movability.
type MovabilityKind int

const (
	// MovabilityFree means the item can always be taken.
	MovabilityFree MovabilityKind = iota
	// MovabilityFixed means the item can never be taken; Reason explains why.
	MovabilityFixed
	// MovabilityRestricted means the item cannot be taken yet, but the
	// restriction lifts permanently the moment it does move to the
	// player's inventory (see Item.SetLocationInventory).
	MovabilityRestricted
)

// Movability is a tagged union over whether and why an item can be
// picked up.
type Movability struct {
	Kind   MovabilityKind
	Reason string
}

func Free() Movability                  { return Movability{Kind: MovabilityFree} }
func Fixed(reason string) Movability    { return Movability{Kind: MovabilityFixed, Reason: reason} }
func Restricted(reason string) Movability {
	return Movability{Kind: MovabilityRestricted, Reason: reason}
}

// Visibility discriminates whether an item appears in room/container
// listings.
type Visibility int

const (
	// VisibilityListed items appear by name in "look" output.
	VisibilityListed Visibility = iota
	// VisibilityScenery items are mentioned in prose but not listed.
	VisibilityScenery
	// VisibilityHidden items are invisible until VisibleWhen is satisfied.
	VisibilityHidden
)

// ContainerStateKind discriminates Item.ContainerState.
type ContainerStateKind int

const (
	ContainerOpen ContainerStateKind = iota
	ContainerClosed
	ContainerLocked
	// ContainerTransparentClosed cannot be reached into, but its
	// contents are still known to exist (e.g. a glass case).
	ContainerTransparentClosed
	// ContainerTransparentLocked is the same, plus locked.
	ContainerTransparentLocked
)

// WhenConsumedKind discriminates Consumable.WhenConsumed.
type WhenConsumedKind int

const (
	WhenConsumedDespawn WhenConsumedKind = iota
	WhenConsumedReplaceInventory
	WhenConsumedReplaceCurrentRoom
)

// WhenConsumed is a tagged union over what happens to a consumable item
// once its last use is spent.
type WhenConsumed struct {
	Kind        WhenConsumedKind
	Replacement ids.Id // meaningful for the two Replace* kinds
}

// Consumable describes an item with a bounded number of uses.
type Consumable struct {
	UsesLeft     int
	ConsumeOn    map[ItemAbility]bool
	WhenConsumed WhenConsumed
}

// Item is a world entity that can be picked up, contained, examined, or
// acted on.
type Item struct {
	ID          ids.Id
	Symbol      string
	Name        string
	Description string
	Aliases     []string
	Location    Location

	Movability Movability
	Visibility Visibility
	VisibleWhen ConditionRef // nil when Visibility != VisibilityHidden, or always-visible once unlocked

	// ContainerState is nil for non-containers.
	ContainerState *ContainerStateKind
	Contents       map[ids.Id]bool

	Abilities           map[ItemAbility]bool
	InteractionRequires map[ItemInteraction]ItemAbility

	// UnlockTargets restricts an AbilityUnlock item to specific locked
	// items; empty means it unlocks anything requiring AbilityUnlock.
	UnlockTargets map[ids.Id]bool

	Text       string
	Consumable *Consumable
}

// ConditionRef is satisfied by internal/condition.Condition. Declared
// here (rather than imported) to avoid a dependency cycle between
// worldmodel and condition; condition.Condition implements it trivially.
type ConditionRef interface {
	IsCondition()
}

// NewItem returns an Item with its maps initialized, ready for the
// content loader to populate.
func NewItem(id ids.Id, symbol, name, description string) *Item {
	return &Item{
		ID:                  id,
		Symbol:              symbol,
		Name:                name,
		Description:         description,
		Location:            Nowhere(),
		Movability:          Free(),
		Visibility:          VisibilityListed,
		Contents:            make(map[ids.Id]bool),
		Abilities:           make(map[ItemAbility]bool),
		InteractionRequires: make(map[ItemInteraction]ItemAbility),
		UnlockTargets:       make(map[ids.Id]bool),
	}
}

func (i *Item) IsContainer() bool { return i.ContainerState != nil }

// IsAccessible reports whether the item's contents can be reached into
// (taken from, put into). Transparent-but-locked containers are visible
// but not accessible.
func (i *Item) IsAccessible() bool {
	if i.ContainerState == nil {
		return false
	}
	return *i.ContainerState == ContainerOpen
}

// ContentsVisible reports whether the item's contents are known to exist
// even if they cannot currently be reached (transparent containers).
func (i *Item) ContentsVisible() bool {
	if i.ContainerState == nil {
		return false
	}
	switch *i.ContainerState {
	case ContainerOpen, ContainerTransparentClosed, ContainerTransparentLocked:
		return true
	default:
		return false
	}
}

// AddItem implements ItemHolder: only adds to a container (open, closed or
// locked alike), and only if the inserted item is not the container itself.
func (i *Item) AddItem(itemID ids.Id) {
	if i.IsContainer() && itemID != i.ID {
		i.Contents[itemID] = true
	}
}

func (i *Item) RemoveItem(itemID ids.Id) {
	if i.IsContainer() {
		delete(i.Contents, itemID)
	}
}

func (i *Item) ContainsItem(itemID ids.Id) bool {
	return i.Contents[itemID]
}

func (i *Item) SetLocationRoom(room ids.Id) { i.Location = InRoom(room) }
func (i *Item) SetLocationItem(container ids.Id) { i.Location = InItem(container) }
func (i *Item) SetLocationNpc(npc ids.Id) { i.Location = InNpc(npc) }

// SetLocationInventory moves the item into the player's inventory. A
// restricted item permanently loses its restriction the instant it
// reaches the player's hands.
func (i *Item) SetLocationInventory() {
	if i.Movability.Kind == MovabilityRestricted {
		i.Movability = Free()
	}
	i.Location = InInventory()
}

// RequiresAbilityFor returns the ability needed to perform interaction on
// this item, if any.
func (i *Item) RequiresAbilityFor(interaction ItemInteraction) (ItemAbility, bool) {
	a, ok := i.InteractionRequires[interaction]
	return a, ok
}

// CanUnlock reports whether this item's AbilityUnlock can unlock target.
// An item with no registered UnlockTargets works as a generic key.
func (i *Item) CanUnlock(target ids.Id) bool {
	if !i.Abilities[AbilityUnlock] {
		return false
	}
	if len(i.UnlockTargets) == 0 {
		return true
	}
	return i.UnlockTargets[target]
}
