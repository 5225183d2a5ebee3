// Package command turns a line of player input into a Command: a tagged
// union over every verb the turn loop knows how to dispatch. Parsing is
// intentionally dumb — filler-word stripping ("look at", "talk to", a
// trailing "on") plus a handful of
// two-argument verb phrases — matching the lenient, forgiving style of a
// text adventure's input line rather than a strict grammar.
package command

import "strings"

// Kind enumerates every command variant the REPL accepts. There is no
// Teleport variant: the engine this was adapted from gated an equivalent
// developer-only teleport command behind a "dev" build flag, and it is
// out of scope here.
type Kind int

const (
	KindHelp Kind = iota
	KindQuit
	KindLook
	KindLookAt
	KindMoveTo
	KindTake
	KindTakeFrom
	KindDrop
	KindPutIn
	KindOpen
	KindClose
	KindLockItem
	KindUnlockItem
	KindInventory
	KindTalkTo
	KindGiveToNpc
	KindTurnOn
	KindRead
	KindLoad
	KindSave
	KindUseItemOn
	KindUnknown
)

// Command is the parsed shape of one line of player input. Only the
// fields relevant to Kind are meaningful for a given value.
type Command struct {
	Kind Kind

	Thing     string // LookAt, Take, Drop, Open, Close, LockItem, UnlockItem, TurnOn, Read
	Direction string // MoveTo
	Item      string // TakeFrom, PutIn, GiveToNpc, UseItemOn (tool)
	Container string // TakeFrom, PutIn
	Npc       string // TalkTo, GiveToNpc
	Verb      string // UseItemOn: the interaction word ("cut", "unlock", ...)
	Target    string // UseItemOn
	GameFile  string // Load, Save
}

// Parse turns one line of raw input into a Command. Unrecognized input
// never errors — it produces KindUnknown, which the turn loop reports to
// the player as a spun "didn't catch that" message rather than failing
// the turn.
func Parse(line string) Command {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
	if len(fields) == 0 {
		return Command{Kind: KindUnknown}
	}

	verb := fields[0]
	rest := fields[1:]

	switch verb {
	case "help", "?":
		return Command{Kind: KindHelp}

	case "quit", "exit":
		return Command{Kind: KindQuit}

	case "look", "l":
		if len(rest) == 0 {
			return Command{Kind: KindLook}
		}
		rest = stripLeading(rest, "at")
		if len(rest) == 0 {
			return Command{Kind: KindLook}
		}
		return Command{Kind: KindLookAt, Thing: join(rest)}

	case "go", "move", "walk":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindMoveTo, Direction: join(rest)}

	case "north", "south", "east", "west", "up", "down", "ne", "nw", "se", "sw", "n", "s", "e", "w", "u", "d":
		return Command{Kind: KindMoveTo, Direction: verb}

	case "take", "get", "grab":
		if item, container, ok := splitOn(rest, "from"); ok {
			return Command{Kind: KindTakeFrom, Item: item, Container: container}
		}
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindTake, Thing: join(rest)}

	case "drop":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindDrop, Thing: join(rest)}

	case "put", "place", "insert":
		if item, container, ok := splitOn(rest, "in"); ok {
			return Command{Kind: KindPutIn, Item: item, Container: container}
		}
		return Command{Kind: KindUnknown}

	case "open":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindOpen, Thing: join(rest)}

	case "close", "shut":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindClose, Thing: join(rest)}

	case "lock":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindLockItem, Thing: join(rest)}

	case "unlock":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindUnlockItem, Thing: join(rest)}

	case "inventory", "inv", "i":
		return Command{Kind: KindInventory}

	case "talk", "speak":
		rest = stripLeading(rest, "to")
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindTalkTo, Npc: join(rest)}

	case "give":
		if item, npc, ok := splitOn(rest, "to"); ok {
			return Command{Kind: KindGiveToNpc, Item: item, Npc: npc}
		}
		return Command{Kind: KindUnknown}

	case "turn", "switch":
		rest = stripTrailing(rest, "on")
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindTurnOn, Thing: join(rest)}

	case "read":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindRead, Thing: join(rest)}

	case "load":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindLoad, GameFile: join(rest)}

	case "save":
		if len(rest) == 0 {
			return Command{Kind: KindUnknown}
		}
		return Command{Kind: KindSave, GameFile: join(rest)}

	case "cut", "burn", "break", "cover", "handle", "unlockwith":
		if target, tool, ok := splitOn(rest, "with"); ok {
			return Command{Kind: KindUseItemOn, Verb: verb, Item: tool, Target: target}
		}
		return Command{Kind: KindUnknown}

	case "use":
		if tool, target, ok := splitOn(rest, "on"); ok {
			return Command{Kind: KindUseItemOn, Verb: "use", Item: tool, Target: target}
		}
		return Command{Kind: KindUnknown}

	default:
		return Command{Kind: KindUnknown}
	}
}

// stripLeading drops a single leading occurrence of word from fields.
func stripLeading(fields []string, word string) []string {
	if len(fields) > 0 && fields[0] == word {
		return fields[1:]
	}
	return fields
}

// stripTrailing drops a single trailing occurrence of word from fields.
func stripTrailing(fields []string, word string) []string {
	if n := len(fields); n > 0 && fields[n-1] == word {
		return fields[:n-1]
	}
	return fields
}

// splitOn finds the first standalone occurrence of sep among fields and
// splits into (before, after) as space-joined strings. ok is false if sep
// never appears, or either side would be empty.
func splitOn(fields []string, sep string) (before, after string, ok bool) {
	for i, f := range fields {
		if f == sep && i > 0 && i < len(fields)-1 {
			return join(fields[:i]), join(fields[i+1:]), true
		}
	}
	return "", "", false
}

func join(fields []string) string { return strings.Join(fields, " ") }
