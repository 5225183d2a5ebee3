package content

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
	"go.uber.org/multierr"
)

// RawExit is the first-stage representation of a room exit: its
// destination and requirement tokens are still authoring strings.
type RawExit struct {
	To              string   `toml:"to"`
	Hidden          bool     `toml:"hidden"`
	Locked          bool     `toml:"locked"`
	RequiredActions []string `toml:"required_actions"`
	RequiredItems   []string `toml:"required_items"`
	BarredMessage   string   `toml:"barred_message"`
}

// RawOverlay is a conditional description fragment for a room, gated on
// one of four condition kinds. Exactly one of Flag/Item is meaningful,
// matching whichever When names.
type RawOverlay struct {
	When string `toml:"when"` // "flag_set" | "flag_unset" | "item_present" | "item_absent"
	Flag string `toml:"flag"`
	Item string `toml:"item"`
	Text string `toml:"text"`
}

// RawRoom is the first-stage representation of a room loaded from TOML:
// its id and every exit destination are still authoring tokens.
type RawRoom struct {
	ID          string                `toml:"id"`
	Name        string                `toml:"name"`
	Description string                `toml:"description"`
	Visited     bool                  `toml:"visited"`
	Exits       map[string]RawExit    `toml:"exits"`
	Overlays    []RawOverlay          `toml:"overlays"`
}

// RawRoomFile is the wrapper TOML requires to deserialize a bare room
// array.
type RawRoomFile struct {
	Rooms []RawRoom `toml:"rooms"`
}

// loadRawRooms decodes a rooms.toml file.
func loadRawRooms(path string) ([]RawRoom, error) {
	var wrapper RawRoomFile
	if _, err := toml.DecodeFile(path, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing room data from %q: %w", path, err)
	}
	return wrapper.Rooms, nil
}

// buildRooms interns every room's token into symbols.Rooms before
// resolving any exit, so that exits may reference rooms declared later
// in the same file (or forward-reference a room not yet seen). Exits'
// required_items tokens are pre-registered into symbols.Items here,
// ahead of items.toml loading, since build_items runs after build_rooms
// and needs to cross-check these against the items it actually loads.
func buildRooms(raw []RawRoom, symbols *ids.SymbolTable) (map[ids.Id]*worldmodel.Room, error) {
	for _, rr := range raw {
		symbols.InternRoom(rr.ID)
	}

	rooms := make(map[ids.Id]*worldmodel.Room, len(raw))
	var errs error
	for _, rr := range raw {
		room, err := toRoom(rr, symbols)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("room %q: %w", rr.ID, err))
			continue
		}
		rooms[room.ID] = room
	}
	if errs != nil {
		return nil, errs
	}
	return rooms, nil
}

func toRoom(rr RawRoom, symbols *ids.SymbolTable) (*worldmodel.Room, error) {
	roomID, ok := symbols.Rooms[rr.ID]
	if !ok {
		return nil, fmt.Errorf("id %q not found in room symbols", rr.ID)
	}

	room := worldmodel.NewRoom(roomID, rr.ID, rr.Name, rr.Description)
	room.Visited = rr.Visited

	for dir, re := range rr.Exits {
		toID, ok := symbols.Rooms[re.To]
		if !ok {
			return nil, fmt.Errorf("exit %q: destination %q not found in room symbols", dir, re.To)
		}

		exit := worldmodel.NewExit(toID)
		exit.Hidden = re.Hidden
		exit.Locked = re.Locked
		exit.BarredMessage = re.BarredMessage
		for _, action := range re.RequiredActions {
			exit.RequiredFlags[action] = true
		}
		for _, token := range re.RequiredItems {
			itemID := symbols.InternItem(token)
			exit.RequiredItems[itemID] = true
		}
		room.Exits[dir] = exit
	}

	for _, ro := range rr.Overlays {
		overlay, err := toOverlay(ro, symbols)
		if err != nil {
			return nil, fmt.Errorf("overlay: %w", err)
		}
		room.Overlays = append(room.Overlays, overlay)
	}

	return room, nil
}

func toOverlay(ro RawOverlay, symbols *ids.SymbolTable) (worldmodel.RoomOverlay, error) {
	switch ro.When {
	case "flag_set":
		return worldmodel.RoomOverlay{
			Condition: worldmodel.OverlayCondition{Kind: worldmodel.OverlayFlagSet, Flag: ro.Flag},
			Text:      ro.Text,
		}, nil
	case "flag_unset":
		return worldmodel.RoomOverlay{
			Condition: worldmodel.OverlayCondition{Kind: worldmodel.OverlayFlagUnset, Flag: ro.Flag},
			Text:      ro.Text,
		}, nil
	case "item_present":
		itemID, ok := symbols.Items[ro.Item]
		if !ok {
			itemID = symbols.InternItem(ro.Item)
		}
		return worldmodel.RoomOverlay{
			Condition: worldmodel.OverlayCondition{Kind: worldmodel.OverlayItemPresent, ItemID: itemID},
			Text:      ro.Text,
		}, nil
	case "item_absent":
		itemID, ok := symbols.Items[ro.Item]
		if !ok {
			itemID = symbols.InternItem(ro.Item)
		}
		return worldmodel.RoomOverlay{
			Condition: worldmodel.OverlayCondition{Kind: worldmodel.OverlayItemAbsent, ItemID: itemID},
			Text:      ro.Text,
		}, nil
	default:
		return worldmodel.RoomOverlay{}, fmt.Errorf("unknown overlay condition %q", ro.When)
	}
}
