// Package view assembles the heterogeneous set of messages a turn
// produces into a stable, section-ordered, deduplicated sequence ready
// for a renderer — a concern this package deliberately does not own; it
// emits classified, ordered Item values and nothing more.
package view

import (
	"sort"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
)

// Section is the fixed rendering bucket an Item belongs to.
type Section int

const (
	SectionTransition Section = iota
	SectionEnvironment
	SectionDirectResult
	SectionWorldResponse
	SectionAmbient
	SectionSystem
)

// sectionOrder is the fixed render order from §4.7.
var sectionOrder = []Section{
	SectionTransition,
	SectionEnvironment,
	SectionDirectResult,
	SectionWorldResponse,
	SectionAmbient,
	SectionSystem,
}

// Kind enumerates every view item variant.
type Kind int

const (
	KindRoomDescription Kind = iota
	KindCharacterDeath
	KindQuitSummary
	KindNpcDescription
	KindActionFailure
	KindActionResult
	KindItemDescription
	KindInventory
	KindGoalsList
	KindTriggeredEvent
	KindPointsAwarded
	KindCharacterHarmed
	KindCharacterHealed
	KindNpcEntered
	KindNpcSpeech
	KindNpcLeft
	KindAmbientEvent
	KindError
	KindHelp
	KindSaveResult
	KindLoadResult
)

// Item is a single structured message produced during a turn.
type Item struct {
	Kind Kind
	Text string

	NpcID   ids.Id
	NpcName string // used for the NPC-name tiebreak sort

	Amount int
	Cause  string
}

// Section returns the fixed rendering bucket for kind.
func (k Kind) Section() Section {
	switch k {
	case KindRoomDescription, KindCharacterDeath, KindQuitSummary:
		return SectionTransition
	case KindNpcDescription:
		return SectionEnvironment
	case KindActionFailure, KindActionResult, KindItemDescription, KindInventory, KindGoalsList:
		return SectionDirectResult
	case KindTriggeredEvent, KindPointsAwarded, KindCharacterHarmed, KindCharacterHealed,
		KindNpcEntered, KindNpcSpeech, KindNpcLeft:
		return SectionWorldResponse
	case KindAmbientEvent:
		return SectionAmbient
	case KindError, KindHelp, KindSaveResult, KindLoadResult:
		return SectionSystem
	default:
		return SectionSystem
	}
}

// DefaultPriority returns kind's signed sort priority within its section;
// lower sorts earlier. Unlisted kinds default to 0.
func (k Kind) DefaultPriority() int {
	switch k {
	case KindTriggeredEvent:
		return -30
	case KindCharacterHarmed:
		return -20
	case KindCharacterHealed:
		return -10
	case KindNpcEntered:
		return 5
	case KindNpcSpeech:
		return 10
	case KindNpcLeft:
		return 15
	case KindCharacterDeath:
		return 100
	default:
		return 0
	}
}

// npcGroupRank orders the three NPC-event kinds within WorldResponse so
// that, priority ties aside, entered groups before speech groups before
// left groups, per §4.7 rule 4.
func npcGroupRank(k Kind) int {
	switch k {
	case KindNpcEntered:
		return 0
	case KindNpcSpeech:
		return 1
	case KindNpcLeft:
		return 2
	default:
		return -1
	}
}

// Entry pairs a view item with the priority it was created at (normally
// Kind.DefaultPriority(), but callers may override for a specific
// instance).
type Entry struct {
	Item     Item
	Priority int
}

// View accumulates entries for the current turn.
type View struct {
	entries []Entry
}

// New returns an empty View.
func New() *View { return &View{} }

// Push appends item to the view using its default priority.
func (v *View) Push(item Item) {
	v.entries = append(v.entries, Entry{Item: item, Priority: item.Kind.DefaultPriority()})
}

// PushWithPriority appends item using an explicit priority override.
func (v *View) PushWithPriority(item Item, priority int) {
	v.entries = append(v.entries, Entry{Item: item, Priority: priority})
}

// Flush renders the accumulated entries in section order, stable-sorted
// by priority within each section (NPC events additionally grouped
// entered→speech→left and tiebroken by NPC name), with consecutive
// duplicate entries collapsed, then clears the view for the next turn.
func (v *View) Flush() []Item {
	bySection := make(map[Section][]Entry, len(sectionOrder))
	for _, e := range v.entries {
		s := e.Item.Kind.Section()
		bySection[s] = append(bySection[s], e)
	}

	var out []Item
	for _, section := range sectionOrder {
		entries := bySection[section]
		sort.SliceStable(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}
			if section == SectionWorldResponse {
				ga, gb := npcGroupRank(a.Item.Kind), npcGroupRank(b.Item.Kind)
				if ga != gb && ga >= 0 && gb >= 0 {
					return ga < gb
				}
				if a.Item.NpcName != b.Item.NpcName {
					return a.Item.NpcName < b.Item.NpcName
				}
			}
			return false
		})
		for _, e := range entries {
			if len(out) > 0 && out[len(out)-1] == e.Item {
				continue
			}
			out = append(out, e.Item)
		}
	}

	v.entries = nil
	return out
}
