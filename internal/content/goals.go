package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/goal"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"go.uber.org/multierr"
)

// RawGoalCondition is the first-stage representation of a goal predicate.
// Type selects which of HasItem/HasFlag/MissingFlag/ReachedRoom/
// GoalComplete/FlagComplete this is; only the fields it needs are set.
type RawGoalCondition struct {
	Type   string `toml:"type"`
	Item   string `toml:"item"`
	Flag   string `toml:"flag"`
	Room   string `toml:"room"`
	GoalID string `toml:"goal_id"`
}

// RawGoal is the first-stage representation of a goal loaded from TOML.
// ActivateWhen and FailedWhen are optional; FinishedWhen is required.
type RawGoal struct {
	ID           string             `toml:"id"`
	Name         string             `toml:"name"`
	Description  string             `toml:"description"`
	Group        string             `toml:"group"` // "required" | "optional" | "status_effect"
	ActivateWhen *RawGoalCondition  `toml:"activate_when"`
	FinishedWhen RawGoalCondition   `toml:"finished_when"`
	FailedWhen   *RawGoalCondition  `toml:"failed_when"`
}

// RawGoalFile is the wrapper TOML requires to deserialize a bare goal
// array.
type RawGoalFile struct {
	Goals []RawGoal `toml:"goals"`
}

func loadRawGoals(path string) ([]RawGoal, error) {
	var wrapper RawGoalFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing goal data from %q: %w", path, err)
	}
	return wrapper.Goals, nil
}

func buildGoals(raw []RawGoal, symbols *ids.SymbolTable) (map[ids.Id]*goal.Goal, []ids.Id, error) {
	goals := make(map[ids.Id]*goal.Goal, len(raw))
	order := make([]ids.Id, 0, len(raw))
	var errs error
	for _, rg := range raw {
		g, err := toGoal(rg, symbols)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("goal %q: %w", rg.ID, err))
			continue
		}
		goals[g.ID] = g
		order = append(order, g.ID)
	}
	if errs != nil {
		return nil, nil, errs
	}
	return goals, order, nil
}

func toGoal(rg RawGoal, symbols *ids.SymbolTable) (*goal.Goal, error) {
	group, err := toGoalGroup(rg.Group)
	if err != nil {
		return nil, err
	}

	var activateWhen *condition.Condition
	if rg.ActivateWhen != nil {
		c, err := toGoalCondition(*rg.ActivateWhen, symbols)
		if err != nil {
			return nil, fmt.Errorf("activate_when: %w", err)
		}
		activateWhen = &c
	}
	var failedWhen *condition.Condition
	if rg.FailedWhen != nil {
		c, err := toGoalCondition(*rg.FailedWhen, symbols)
		if err != nil {
			return nil, fmt.Errorf("failed_when: %w", err)
		}
		failedWhen = &c
	}
	finishedWhen, err := toGoalCondition(rg.FinishedWhen, symbols)
	if err != nil {
		return nil, fmt.Errorf("finished_when: %w", err)
	}

	return &goal.Goal{
		ID:           ids.For(ids.NamespaceGoal, rg.ID),
		Name:         rg.Name,
		Description:  rg.Description,
		Group:        group,
		ActivateWhen: activateWhen,
		FinishedWhen: finishedWhen,
		FailedWhen:   failedWhen,
	}, nil
}

func toGoalGroup(name string) (goal.Group, error) {
	switch name {
	case "", "required":
		return goal.GroupRequired, nil
	case "optional":
		return goal.GroupOptional, nil
	case "status_effect":
		return goal.GroupStatusEffect, nil
	default:
		return 0, fmt.Errorf("unknown goal group %q", name)
	}
}

func toGoalCondition(rc RawGoalCondition, symbols *ids.SymbolTable) (condition.Condition, error) {
	switch rc.Type {
	case "has_item":
		itemID, ok := symbols.Items[rc.Item]
		if !ok {
			return condition.Condition{}, fmt.Errorf("has_item: item %q not found in symbol table", rc.Item)
		}
		return condition.Condition{Kind: condition.KindHasItem, ItemID: itemID}, nil
	case "has_flag":
		return condition.Condition{Kind: condition.KindHasFlag, FlagName: rc.Flag}, nil
	case "missing_flag":
		return condition.Condition{Kind: condition.KindMissingFlag, FlagName: rc.Flag}, nil
	case "reached_room":
		roomID, ok := symbols.Rooms[rc.Room]
		if !ok {
			return condition.Condition{}, fmt.Errorf("reached_room: room %q not found in symbol table", rc.Room)
		}
		return condition.Condition{Kind: condition.KindInRoom, RoomID: roomID}, nil
	case "goal_complete":
		return condition.Condition{
			Kind:   condition.KindGoalComplete,
			GoalID: ids.For(ids.NamespaceGoal, rc.GoalID),
		}, nil
	case "flag_complete":
		return condition.Condition{Kind: condition.KindFlagComplete, FlagName: rc.Flag}, nil
	default:
		return condition.Condition{}, fmt.Errorf("unknown goal condition type %q", rc.Type)
	}
}
