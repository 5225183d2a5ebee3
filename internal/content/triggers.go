package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/trigger"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
	"go.uber.org/multierr"
)

// RawCondition is the first-stage representation of a trigger condition.
// Type selects the condition.Kind; only the fields it needs are set.
// Room/Rooms/Item/Npc/Target name authoring tokens resolved against
// symbols; Flag, Interaction, Spinner, and Percent carry literal data.
type RawCondition struct {
	Type        string   `toml:"type"`
	Room        string   `toml:"room"`
	Item        string   `toml:"item"`
	Npc         string   `toml:"npc"`
	Target      string   `toml:"target"`
	Flag        string   `toml:"flag"`
	NpcState    string   `toml:"npc_state"`
	GoalID      string   `toml:"goal_id"`
	Interaction string   `toml:"interaction"`
	Rooms       []string `toml:"rooms"`
	Spinner     string   `toml:"spinner"`
	Percent     int      `toml:"percent"`
}

// RawAction is the first-stage representation of a trigger or scheduled
// action. Type selects the action.Kind; only the fields it needs are set.
type RawAction struct {
	Type string `toml:"type"`

	Text   string `toml:"text"`
	Reason string `toml:"reason"`

	Flag  string `toml:"flag"`
	Limit *int   `toml:"limit"`

	Item          string `toml:"item"`
	Room          string `toml:"room"`
	Npc           string `toml:"npc"`
	Replacement   string `toml:"replacement"`
	ContainerState string `toml:"container_state"`

	NpcState     string `toml:"npc_state"`
	DialogueLine string `toml:"dialogue_line"`

	Amount    int    `toml:"amount"`
	Cause     string `toml:"cause"`
	EffectKind string `toml:"effect_kind"` // "instant_damage" | "instant_heal" | "damage_over_time" | "heal_over_time"
	TimesLeft int    `toml:"times_left"`

	Points      int    `toml:"points"`
	Achievement string `toml:"achievement"`

	TurnsAhead int             `toml:"turns_ahead"`
	Turn       int             `toml:"turn"`
	Note       string          `toml:"note"`
	Nested     []RawAction     `toml:"nested"`
	Condition  *RawCondition   `toml:"condition"`
	OnFalse    string          `toml:"on_false"` // "retry_next_turn" | "retry_after" | "cancel"
	OnFalseN   int             `toml:"on_false_n"`

	NewLocation RawLocation `toml:"new_location"`
}

// RawTrigger is the first-stage representation of a declarative rule.
type RawTrigger struct {
	ID         string         `toml:"id"`
	Name       string         `toml:"name"`
	Conditions []RawCondition `toml:"conditions"`
	Actions    []RawAction    `toml:"actions"`
	OnlyOnce   bool           `toml:"only_once"`
}

// RawTriggerFile is the wrapper TOML requires to deserialize a bare
// trigger array.
type RawTriggerFile struct {
	Triggers []RawTrigger `toml:"triggers"`
}

func loadRawTriggers(path string) ([]RawTrigger, error) {
	var wrapper RawTriggerFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing trigger data from %q: %w", path, err)
	}
	return wrapper.Triggers, nil
}

func buildTriggers(raw []RawTrigger, symbols *ids.SymbolTable) ([]*trigger.Trigger, error) {
	triggers := make([]*trigger.Trigger, 0, len(raw))
	var errs error
	for _, rt := range raw {
		t, err := toTrigger(rt, symbols)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("trigger %q: %w", rt.ID, err))
			continue
		}
		triggers = append(triggers, t)
	}
	if errs != nil {
		return nil, errs
	}
	return triggers, nil
}

func toTrigger(rt RawTrigger, symbols *ids.SymbolTable) (*trigger.Trigger, error) {
	conditions := make([]condition.Condition, 0, len(rt.Conditions))
	for i, rc := range rt.Conditions {
		c, err := toCondition(rc, symbols)
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		conditions = append(conditions, c)
	}

	actions := make([]action.Action, 0, len(rt.Actions))
	for i, ra := range rt.Actions {
		a, err := toAction(ra, symbols)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
		actions = append(actions, a)
	}

	return &trigger.Trigger{
		ID:         ids.For(ids.NamespaceTrigger, rt.ID),
		Name:       rt.Name,
		Conditions: conditions,
		Actions:    actions,
		OnlyOnce:   rt.OnlyOnce,
	}, nil
}

func toCondition(rc RawCondition, symbols *ids.SymbolTable) (condition.Condition, error) {
	lookupRoom := func(token string) (ids.Id, error) {
		id, ok := symbols.Rooms[token]
		if !ok {
			return ids.Id{}, fmt.Errorf("room token %q not found in symbol table", token)
		}
		return id, nil
	}
	lookupItem := func(token string) (ids.Id, error) {
		id, ok := symbols.Items[token]
		if !ok {
			return ids.Id{}, fmt.Errorf("item token %q not found in symbol table", token)
		}
		return id, nil
	}
	lookupNpc := func(token string) (ids.Id, error) {
		id, ok := symbols.Characters[token]
		if !ok {
			return ids.Id{}, fmt.Errorf("npc token %q not found in symbol table", token)
		}
		return id, nil
	}

	switch rc.Type {
	case "enter":
		id, err := lookupRoom(rc.Room)
		return condition.Condition{Kind: condition.KindEnter, RoomID: id}, err
	case "leave":
		id, err := lookupRoom(rc.Room)
		return condition.Condition{Kind: condition.KindLeave, RoomID: id}, err
	case "take":
		id, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindTake, ItemID: id}, err
	case "drop":
		id, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindDrop, ItemID: id}, err
	case "open":
		id, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindOpen, ItemID: id}, err
	case "unlock":
		id, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindUnlock, ItemID: id}, err
	case "insert":
		item, err := lookupItem(rc.Item)
		if err != nil {
			return condition.Condition{}, err
		}
		target, err := lookupItem(rc.Target)
		return condition.Condition{Kind: condition.KindInsert, ItemID: item, TargetID: target}, err
	case "give_to_npc":
		item, err := lookupItem(rc.Item)
		if err != nil {
			return condition.Condition{}, err
		}
		npc, err := lookupNpc(rc.Npc)
		return condition.Condition{Kind: condition.KindGiveToNpc, ItemID: item, NpcID: npc}, err
	case "take_from_npc":
		item, err := lookupItem(rc.Item)
		if err != nil {
			return condition.Condition{}, err
		}
		npc, err := lookupNpc(rc.Npc)
		return condition.Condition{Kind: condition.KindTakeFromNpc, ItemID: item, NpcID: npc}, err
	case "talk_to_npc":
		id, err := lookupNpc(rc.Npc)
		return condition.Condition{Kind: condition.KindTalkToNpc, NpcID: id}, err
	case "use_item_on_item":
		tool, err := lookupItem(rc.Item)
		if err != nil {
			return condition.Condition{}, err
		}
		target, err := lookupItem(rc.Target)
		if err != nil {
			return condition.Condition{}, err
		}
		interaction, err := toItemInteraction(rc.Interaction)
		if err != nil {
			return condition.Condition{}, err
		}
		return condition.Condition{
			Kind: condition.KindUseItemOnItem, ItemID: tool, TargetID: target, Interaction: int(interaction),
		}, nil
	case "has_item":
		id, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindHasItem, ItemID: id}, err
	case "has_flag":
		return condition.Condition{Kind: condition.KindHasFlag, FlagName: rc.Flag}, nil
	case "missing_flag":
		return condition.Condition{Kind: condition.KindMissingFlag, FlagName: rc.Flag}, nil
	case "flag_in_progress":
		return condition.Condition{Kind: condition.KindFlagInProgress, FlagName: rc.Flag}, nil
	case "flag_complete":
		return condition.Condition{Kind: condition.KindFlagComplete, FlagName: rc.Flag}, nil
	case "in_room":
		id, err := lookupRoom(rc.Room)
		return condition.Condition{Kind: condition.KindInRoom, RoomID: id}, err
	case "with_npc":
		id, err := lookupNpc(rc.Npc)
		return condition.Condition{Kind: condition.KindWithNpc, NpcID: id}, err
	case "npc_has_item":
		npc, err := lookupNpc(rc.Npc)
		if err != nil {
			return condition.Condition{}, err
		}
		item, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindNpcHasItem, NpcID: npc, ItemID: item}, err
	case "npc_in_state":
		npc, err := lookupNpc(rc.Npc)
		if err != nil {
			return condition.Condition{}, err
		}
		return condition.Condition{Kind: condition.KindNpcInState, NpcID: npc, NpcState: toNpcState(rc.NpcState)}, nil
	case "container_has_item":
		container, err := lookupItem(rc.Target)
		if err != nil {
			return condition.Condition{}, err
		}
		item, err := lookupItem(rc.Item)
		return condition.Condition{Kind: condition.KindContainerHasItem, TargetID: container, ItemID: item}, err
	case "has_visited":
		id, err := lookupRoom(rc.Room)
		return condition.Condition{Kind: condition.KindHasVisited, RoomID: id}, err
	case "ambient":
		rooms := make([]ids.Id, 0, len(rc.Rooms))
		for _, token := range rc.Rooms {
			id, err := lookupRoom(token)
			if err != nil {
				return condition.Condition{}, err
			}
			rooms = append(rooms, id)
		}
		return condition.Condition{Kind: condition.KindAmbient, Rooms: rooms, SpinnerType: rc.Spinner}, nil
	case "chance_percent":
		return condition.Condition{Kind: condition.KindChancePercent, Percent: rc.Percent}, nil
	case "goal_complete":
		return condition.Condition{Kind: condition.KindGoalComplete, GoalID: ids.For(ids.NamespaceGoal, rc.GoalID)}, nil
	default:
		return condition.Condition{}, fmt.Errorf("unknown condition type %q", rc.Type)
	}
}

func toAction(ra RawAction, symbols *ids.SymbolTable) (action.Action, error) {
	lookupItem := func(token string) (ids.Id, error) {
		if token == "" {
			return ids.Id{}, nil
		}
		id, ok := symbols.Items[token]
		if !ok {
			return ids.Id{}, fmt.Errorf("item token %q not found in symbol table", token)
		}
		return id, nil
	}
	lookupRoom := func(token string) (ids.Id, error) {
		if token == "" {
			return ids.Id{}, nil
		}
		id, ok := symbols.Rooms[token]
		if !ok {
			return ids.Id{}, fmt.Errorf("room token %q not found in symbol table", token)
		}
		return id, nil
	}
	lookupNpc := func(token string) (ids.Id, error) {
		if token == "" {
			return ids.Id{}, nil
		}
		id, ok := symbols.Characters[token]
		if !ok {
			return ids.Id{}, fmt.Errorf("npc token %q not found in symbol table", token)
		}
		return id, nil
	}

	switch ra.Type {
	case "show_message":
		return action.Action{Kind: action.KindShowMessage, Text: ra.Text}, nil
	case "ambient_event":
		return action.Action{Kind: action.KindAmbientEvent, Text: ra.Text}, nil
	case "deny_read":
		return action.Action{Kind: action.KindDenyRead, Reason: ra.Reason}, nil
	case "add_flag":
		return action.Action{Kind: action.KindAddFlag, FlagName: ra.Flag}, nil
	case "remove_flag":
		return action.Action{Kind: action.KindRemoveFlag, FlagName: ra.Flag}, nil
	case "start_sequence":
		return action.Action{Kind: action.KindStartSequence, FlagName: ra.Flag, Limit: ra.Limit}, nil
	case "advance_sequence":
		return action.Action{Kind: action.KindAdvanceSequence, FlagName: ra.Flag}, nil
	case "reset_sequence":
		return action.Action{Kind: action.KindResetSequence, FlagName: ra.Flag}, nil
	case "spawn_item_into_room":
		item, err := lookupItem(ra.Item)
		if err != nil {
			return action.Action{}, err
		}
		room, err := lookupRoom(ra.Room)
		return action.Action{Kind: action.KindSpawnItemIntoRoom, ItemID: item, RoomID: room}, err
	case "spawn_item_in_inventory":
		item, err := lookupItem(ra.Item)
		return action.Action{Kind: action.KindSpawnItemInInventory, ItemID: item}, err
	case "despawn_item":
		item, err := lookupItem(ra.Item)
		return action.Action{Kind: action.KindDespawnItem, ItemID: item}, err
	case "move_item":
		item, err := lookupItem(ra.Item)
		if err != nil {
			return action.Action{}, err
		}
		loc, err := resolveLocation(ra.NewLocation, symbols)
		return action.Action{Kind: action.KindMoveItem, ItemID: item, NewLocation: loc}, err
	case "replace_item":
		item, err := lookupItem(ra.Item)
		if err != nil {
			return action.Action{}, err
		}
		replacement, err := lookupItem(ra.Replacement)
		return action.Action{Kind: action.KindReplaceItem, ItemID: item, ReplacementID: replacement}, err
	case "set_container_state":
		item, err := lookupItem(ra.Item)
		if err != nil {
			return action.Action{}, err
		}
		state, err := toContainerState(ra.ContainerState)
		return action.Action{Kind: action.KindSetContainerState, ItemID: item, ContainerKind: state}, err
	case "set_npc_state":
		npc, err := lookupNpc(ra.Npc)
		return action.Action{Kind: action.KindSetNpcState, NpcID: npc, NpcState: toNpcState(ra.NpcState)}, err
	case "move_npc":
		npc, err := lookupNpc(ra.Npc)
		if err != nil {
			return action.Action{}, err
		}
		room, err := lookupRoom(ra.Room)
		return action.Action{Kind: action.KindMoveNpc, NpcID: npc, RoomID: room}, err
	case "add_npc_dialogue_line":
		npc, err := lookupNpc(ra.Npc)
		return action.Action{
			Kind: action.KindAddNpcDialogueLine, NpcID: npc, NpcState: toNpcState(ra.NpcState), DialogueLine: ra.DialogueLine,
		}, err
	case "teleport_player":
		room, err := lookupRoom(ra.Room)
		return action.Action{Kind: action.KindTeleportPlayer, RoomID: room}, err
	case "damage_player":
		return action.Action{Kind: action.KindDamagePlayer, Amount: ra.Amount, Cause: ra.Cause}, nil
	case "heal_player":
		return action.Action{Kind: action.KindHealPlayer, Amount: ra.Amount, Cause: ra.Cause}, nil
	case "apply_health_effect":
		effect, err := toHealthEffect(ra)
		return action.Action{Kind: action.KindApplyHealthEffect, Effect: effect}, err
	case "remove_health_effect":
		return action.Action{Kind: action.KindRemoveHealthEffect, Cause: ra.Cause}, nil
	case "award_points":
		return action.Action{Kind: action.KindAwardPoints, Points: ra.Points}, nil
	case "add_achievement":
		return action.Action{Kind: action.KindAddAchievement, Achievement: ra.Achievement}, nil
	case "schedule_in":
		nested, err := toActions(ra.Nested, symbols)
		return action.Action{Kind: action.KindScheduleIn, TurnsAhead: ra.TurnsAhead, Nested: nested, Note: ra.Note}, err
	case "schedule_on":
		nested, err := toActions(ra.Nested, symbols)
		return action.Action{Kind: action.KindScheduleOn, Turn: ra.Turn, Nested: nested, Note: ra.Note}, err
	case "schedule_in_if":
		nested, err := toActions(ra.Nested, symbols)
		if err != nil {
			return action.Action{}, err
		}
		cond, onFalse, err := toConditionalSchedule(ra, symbols)
		if err != nil {
			return action.Action{}, err
		}
		return action.Action{
			Kind: action.KindScheduleInIf, TurnsAhead: ra.TurnsAhead, Condition: cond, OnFalse: onFalse,
			Nested: nested, Note: ra.Note,
		}, nil
	case "schedule_on_if":
		nested, err := toActions(ra.Nested, symbols)
		if err != nil {
			return action.Action{}, err
		}
		cond, onFalse, err := toConditionalSchedule(ra, symbols)
		if err != nil {
			return action.Action{}, err
		}
		return action.Action{
			Kind: action.KindScheduleOnIf, Turn: ra.Turn, Condition: cond, OnFalse: onFalse,
			Nested: nested, Note: ra.Note,
		}, nil
	case "cancel_scheduled":
		return action.Action{Kind: action.KindCancelScheduled, Note: ra.Note}, nil
	case "end_game":
		return action.Action{Kind: action.KindEndGame, Reason: ra.Reason}, nil
	default:
		return action.Action{}, fmt.Errorf("unknown action type %q", ra.Type)
	}
}

func toHealthEffect(ra RawAction) (worldmodel.HealthEffect, error) {
	switch ra.EffectKind {
	case "instant_damage":
		return worldmodel.InstantDamage(ra.Amount, ra.Cause), nil
	case "instant_heal":
		return worldmodel.InstantHeal(ra.Amount, ra.Cause), nil
	case "damage_over_time":
		return worldmodel.DamageOverTime(ra.Amount, ra.TimesLeft, ra.Cause), nil
	case "heal_over_time":
		return worldmodel.HealOverTime(ra.Amount, ra.TimesLeft, ra.Cause), nil
	default:
		return worldmodel.HealthEffect{}, fmt.Errorf("unknown effect_kind %q", ra.EffectKind)
	}
}

func toActions(raw []RawAction, symbols *ids.SymbolTable) ([]action.Action, error) {
	out := make([]action.Action, 0, len(raw))
	for i, ra := range raw {
		a, err := toAction(ra, symbols)
		if err != nil {
			return nil, fmt.Errorf("nested action %d: %w", i, err)
		}
		out = append(out, a)
	}
	return out, nil
}

func toConditionalSchedule(ra RawAction, symbols *ids.SymbolTable) (*condition.Condition, action.OnFalse, error) {
	if ra.Condition == nil {
		return nil, action.OnFalse{}, fmt.Errorf("condition is required")
	}
	cond, err := toCondition(*ra.Condition, symbols)
	if err != nil {
		return nil, action.OnFalse{}, err
	}
	onFalse, err := toOnFalse(ra.OnFalse, ra.OnFalseN)
	if err != nil {
		return nil, action.OnFalse{}, err
	}
	return &cond, onFalse, nil
}

func toOnFalse(kind string, n int) (action.OnFalse, error) {
	switch kind {
	case "", "retry_next_turn":
		return action.OnFalse{Kind: action.OnFalseRetryNextTurn}, nil
	case "retry_after":
		return action.OnFalse{Kind: action.OnFalseRetryAfter, N: n}, nil
	case "cancel":
		return action.OnFalse{Kind: action.OnFalseCancel}, nil
	default:
		return action.OnFalse{}, fmt.Errorf("unknown on_false %q", kind)
	}
}
