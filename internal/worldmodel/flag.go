package worldmodel

// FlagKind discriminates Flag.
type FlagKind int

const (
	FlagSimple FlagKind = iota
	FlagSequence
)

// Flag is a named piece of player-scoped state. Flags are keyed by name
// only: a player can hold at most one flag with a given name, so starting
// or advancing a sequence replaces the prior entry rather than adding a
// second one.
type Flag struct {
	Kind      FlagKind
	Name      string
	SetAtTurn int

	// Step and Limit are meaningful only when Kind == FlagSequence. A nil
	// Limit means the sequence is unbounded.
	Step  int
	Limit *int
}

// NewSimpleFlag returns a simple (set/unset) flag set at turn.
func NewSimpleFlag(name string, turn int) Flag {
	return Flag{Kind: FlagSimple, Name: name, SetAtTurn: turn}
}

// NewSequenceFlag starts a stepped sequence flag at step 0.
func NewSequenceFlag(name string, limit *int, turn int) Flag {
	return Flag{Kind: FlagSequence, Name: name, SetAtTurn: turn, Step: 0, Limit: limit}
}

// Advanced returns a copy of f with its step incremented by one, clamped
// to Limit if set. Advancing a simple flag is a no-op (simple flags carry
// no step).
func (f Flag) Advanced() Flag {
	if f.Kind != FlagSequence {
		return f
	}
	next := f
	next.Step++
	if f.Limit != nil && next.Step > *f.Limit {
		next.Step = *f.Limit
	}
	return next
}

// Complete reports whether a sequence flag has reached its limit. A
// sequence with no limit is never complete; a simple flag is complete the
// instant it exists (it has no further steps to take).
func (f Flag) Complete() bool {
	switch f.Kind {
	case FlagSimple:
		return true
	case FlagSequence:
		return f.Limit != nil && f.Step >= *f.Limit
	default:
		return false
	}
}

// FlagSet is the player's named-flag collection, keyed by name so that
// membership lookups and the "at most one flag per name" invariant are
// both O(1) map operations.
type FlagSet map[string]Flag

// Set inserts or replaces the flag with this name.
func (fs FlagSet) Set(f Flag) { fs[f.Name] = f }

// Has reports whether any flag (of either kind) with this name exists.
func (fs FlagSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

// Remove drops the flag with this name, if any.
func (fs FlagSet) Remove(name string) { delete(fs, name) }
