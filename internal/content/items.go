package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
	"go.uber.org/multierr"
)

// RawItemAbility is a single entry in an item's ability list. Type names
// one of worldmodel's ItemAbility variants; Target is only meaningful for
// "unlock" and names the specific item token this key opens (empty means
// a generic key, matching Unlock(None) in the original format).
type RawItemAbility struct {
	Type   string `toml:"type"`
	Target string `toml:"target"`
}

// RawItem is the first-stage representation of an item loaded from TOML:
// its id, location tokens, and interaction-requirement tokens are still
// authoring strings.
type RawItem struct {
	ID                  string            `toml:"id"`
	Name                string            `toml:"name"`
	Description         string            `toml:"description"`
	Aliases             []string          `toml:"aliases"`
	Location            RawLocation       `toml:"location"`
	Movability          string            `toml:"movability"` // "free" | "fixed" | "restricted"; default "free"
	MovabilityReason    string            `toml:"movability_reason"`
	Visibility          string            `toml:"visibility"` // "listed" | "scenery" | "hidden"; default "listed"
	ContainerState      string            `toml:"container_state"`
	Abilities           []RawItemAbility  `toml:"abilities"`
	InteractionRequires map[string]string `toml:"interaction_requires"`
	Text                string            `toml:"text"`
}

// RawItemFile is the wrapper TOML requires to deserialize a bare item
// array.
type RawItemFile struct {
	Items []RawItem `toml:"items"`
}

func loadRawItems(path string) ([]RawItem, error) {
	var wrapper RawItemFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing item data from %q: %w", path, err)
	}
	return wrapper.Items, nil
}

// buildItems rebuilds the item symbol table from raw, the authoritative
// source, then cross-checks it against any tokens pre-registered while
// rooms were loaded (an exit's required_items): every pre-registered
// token must appear in items.toml with the same id, or the content is
// inconsistent and loading fails outright.
func buildItems(raw []RawItem, symbols *ids.SymbolTable) (map[ids.Id]*worldmodel.Item, error) {
	preRegistered := make(map[string]ids.Id, len(symbols.Items))
	for token, id := range symbols.Items {
		preRegistered[token] = id
	}
	symbols.Items = make(map[string]ids.Id, len(raw))

	for _, ri := range raw {
		symbols.InternItem(ri.ID)
	}

	var errs error
	for token, id := range preRegistered {
		got, ok := symbols.Items[token]
		if !ok || got != id {
			errs = multierr.Append(errs, fmt.Errorf(
				"item %q was required by a room exit but not found in items.toml", token))
		}
	}
	if errs != nil {
		return nil, errs
	}

	items := make(map[ids.Id]*worldmodel.Item, len(raw))
	for _, ri := range raw {
		item, err := toItem(ri, symbols)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("item %q: %w", ri.ID, err))
			continue
		}
		items[item.ID] = item
	}
	if errs != nil {
		return nil, errs
	}
	return items, nil
}

func toItem(ri RawItem, symbols *ids.SymbolTable) (*worldmodel.Item, error) {
	itemID, ok := symbols.Items[ri.ID]
	if !ok {
		return nil, fmt.Errorf("id %q not found in item symbols", ri.ID)
	}
	loc, err := resolveLocation(ri.Location, symbols)
	if err != nil {
		return nil, err
	}

	item := worldmodel.NewItem(itemID, ri.ID, ri.Name, ri.Description)
	item.Aliases = ri.Aliases
	item.Location = loc
	item.Text = ri.Text

	item.Movability, err = toMovability(ri.Movability, ri.MovabilityReason)
	if err != nil {
		return nil, err
	}
	item.Visibility, err = toVisibility(ri.Visibility)
	if err != nil {
		return nil, err
	}
	if ri.ContainerState != "" {
		state, err := toContainerState(ri.ContainerState)
		if err != nil {
			return nil, err
		}
		item.ContainerState = &state
	}

	var errs error
	for _, ra := range ri.Abilities {
		ability, target, err := toItemAbility(ra, symbols)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		item.Abilities[ability] = true
		if ability == worldmodel.AbilityUnlock && target != nil {
			item.UnlockTargets[*target] = true
		}
	}
	if errs != nil {
		return nil, errs
	}

	for interactionName, abilityName := range ri.InteractionRequires {
		interaction, err := toItemInteraction(interactionName)
		if err != nil {
			return nil, err
		}
		ability, _, err := toItemAbility(RawItemAbility{Type: abilityName}, symbols)
		if err != nil {
			return nil, err
		}
		item.InteractionRequires[interaction] = ability
	}

	return item, nil
}

func toMovability(kind, reason string) (worldmodel.Movability, error) {
	switch kind {
	case "", "free":
		return worldmodel.Free(), nil
	case "fixed":
		return worldmodel.Fixed(reason), nil
	case "restricted":
		return worldmodel.Restricted(reason), nil
	default:
		return worldmodel.Movability{}, fmt.Errorf("unknown movability %q", kind)
	}
}

func toVisibility(kind string) (worldmodel.Visibility, error) {
	switch kind {
	case "", "listed":
		return worldmodel.VisibilityListed, nil
	case "scenery":
		return worldmodel.VisibilityScenery, nil
	case "hidden":
		return worldmodel.VisibilityHidden, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", kind)
	}
}

func toContainerState(kind string) (worldmodel.ContainerStateKind, error) {
	switch kind {
	case "open":
		return worldmodel.ContainerOpen, nil
	case "closed":
		return worldmodel.ContainerClosed, nil
	case "locked":
		return worldmodel.ContainerLocked, nil
	case "transparent_closed":
		return worldmodel.ContainerTransparentClosed, nil
	case "transparent_locked":
		return worldmodel.ContainerTransparentLocked, nil
	default:
		return 0, fmt.Errorf("unknown container_state %q", kind)
	}
}

func toItemAbility(ra RawItemAbility, symbols *ids.SymbolTable) (worldmodel.ItemAbility, *ids.Id, error) {
	switch ra.Type {
	case "clean":
		return worldmodel.AbilityClean, nil, nil
	case "cut_wood":
		return worldmodel.AbilityCutWood, nil, nil
	case "ignite":
		return worldmodel.AbilityIgnite, nil, nil
	case "insulate":
		return worldmodel.AbilityInsulate, nil, nil
	case "pluck":
		return worldmodel.AbilityPluck, nil, nil
	case "pry":
		return worldmodel.AbilityPry, nil, nil
	case "read":
		return worldmodel.AbilityRead, nil, nil
	case "sharpen":
		return worldmodel.AbilitySharpen, nil, nil
	case "smash":
		return worldmodel.AbilitySmash, nil, nil
	case "turn_on":
		return worldmodel.AbilityTurnOn, nil, nil
	case "turn_off":
		return worldmodel.AbilityTurnOff, nil, nil
	case "use":
		return worldmodel.AbilityUse, nil, nil
	case "unlock":
		if ra.Target == "" {
			return worldmodel.AbilityUnlock, nil, nil
		}
		target, ok := symbols.Items[ra.Target]
		if !ok {
			return 0, nil, fmt.Errorf("unlock ability target %q not found in item symbols", ra.Target)
		}
		return worldmodel.AbilityUnlock, &target, nil
	default:
		return 0, nil, fmt.Errorf("unknown ability %q", ra.Type)
	}
}

func toItemInteraction(name string) (worldmodel.ItemInteraction, error) {
	switch name {
	case "break":
		return worldmodel.InteractionBreak, nil
	case "burn":
		return worldmodel.InteractionBurn, nil
	case "cover":
		return worldmodel.InteractionCover, nil
	case "cut":
		return worldmodel.InteractionCut, nil
	case "handle":
		return worldmodel.InteractionHandle, nil
	case "move":
		return worldmodel.InteractionMove, nil
	case "turn":
		return worldmodel.InteractionTurn, nil
	case "unlock":
		return worldmodel.InteractionUnlock, nil
	default:
		return 0, fmt.Errorf("unknown interaction %q", name)
	}
}
