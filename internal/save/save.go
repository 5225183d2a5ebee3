// Package save implements save-slot discovery and the on-disk snapshot
// format: TOML files named "<slot>-amble-<version>.<ext>" under a
// configured save directory, one snapshot per slot.
package save

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/dustin/go-humanize"

	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
)

// ItemSnapshot captures an item's dynamic (post-load-mutable) state.
type ItemSnapshot struct {
	Location       LocationSnapshot `toml:"location"`
	ContainerState *int             `toml:"container_state,omitempty"`
	Restricted     bool             `toml:"restricted"`
	RestrictedWhy  string           `toml:"restricted_why,omitempty"`
}

// NpcSnapshot captures an NPC's dynamic state.
type NpcSnapshot struct {
	Location  LocationSnapshot `toml:"location"`
	StateKind int              `toml:"state_kind"`
	StateName string           `toml:"state_name,omitempty"`
	HP        int              `toml:"hp"`
}

// LocationSnapshot is the TOML-serializable form of worldmodel.Location.
type LocationSnapshot struct {
	Kind        int    `toml:"kind"`
	RoomID      string `toml:"room_id,omitempty"`
	ContainerID string `toml:"container_id,omitempty"`
	NpcID       string `toml:"npc_id,omitempty"`
}

func toLocationSnapshot(loc worldmodel.Location) LocationSnapshot {
	ls := LocationSnapshot{Kind: int(loc.Kind)}
	switch loc.Kind {
	case worldmodel.LocationRoom:
		ls.RoomID = loc.RoomID.String()
	case worldmodel.LocationItem:
		ls.ContainerID = loc.ContainerID.String()
	case worldmodel.LocationNpc:
		ls.NpcID = loc.NpcID.String()
	}
	return ls
}

func fromLocationSnapshot(ls LocationSnapshot) (worldmodel.Location, error) {
	switch worldmodel.LocationKind(ls.Kind) {
	case worldmodel.LocationNowhere:
		return worldmodel.Nowhere(), nil
	case worldmodel.LocationInventory:
		return worldmodel.InInventory(), nil
	case worldmodel.LocationRoom:
		id, err := ids.Parse(ls.RoomID)
		if err != nil {
			return worldmodel.Location{}, fmt.Errorf("parse room id %q: %w", ls.RoomID, err)
		}
		return worldmodel.InRoom(id), nil
	case worldmodel.LocationItem:
		id, err := ids.Parse(ls.ContainerID)
		if err != nil {
			return worldmodel.Location{}, fmt.Errorf("parse container id %q: %w", ls.ContainerID, err)
		}
		return worldmodel.InItem(id), nil
	case worldmodel.LocationNpc:
		id, err := ids.Parse(ls.NpcID)
		if err != nil {
			return worldmodel.Location{}, fmt.Errorf("parse npc id %q: %w", ls.NpcID, err)
		}
		return worldmodel.InNpc(id), nil
	default:
		return worldmodel.Nowhere(), nil
	}
}

// Snapshot is the full serializable save-file payload: the engine version
// it was written by, plus every piece of dynamic world state that a fresh
// content load does not already establish.
type Snapshot struct {
	Version   string `toml:"version"`
	TurnCount int    `toml:"turn_count"`

	PlayerName        string           `toml:"player_name"`
	PlayerDescription string           `toml:"player_description"`
	PlayerLocation    LocationSnapshot `toml:"player_location"`
	PlayerInventory   []string         `toml:"player_inventory"`
	PlayerFlags       []FlagSnapshot   `toml:"player_flags"`
	PlayerAchievements []string        `toml:"player_achievements"`
	PlayerScore       int              `toml:"player_score"`
	PlayerHP          int              `toml:"player_hp"`

	VisitedRooms []string                 `toml:"visited_rooms"`
	Items        map[string]ItemSnapshot  `toml:"items"`
	Npcs         map[string]NpcSnapshot   `toml:"npcs"`
}

// FlagSnapshot is the TOML-serializable form of worldmodel.Flag.
type FlagSnapshot struct {
	Kind      int    `toml:"kind"`
	Name      string `toml:"name"`
	SetAtTurn int    `toml:"set_at_turn"`
	Step      int    `toml:"step,omitempty"`
	Limit     *int   `toml:"limit,omitempty"`
}

// BuildSnapshot captures w's dynamic state into a Snapshot tagged with
// version.
func BuildSnapshot(w *worldmodel.AmbleWorld, version string) Snapshot {
	snap := Snapshot{
		Version:            version,
		TurnCount:          w.TurnCount,
		PlayerName:         w.Player.Name,
		PlayerDescription:  w.Player.Description,
		PlayerLocation:     toLocationSnapshot(w.Player.Location),
		PlayerScore:        w.Player.Score,
		PlayerHP:           w.Player.Health.CurrentHP,
		Items:              make(map[string]ItemSnapshot, len(w.Items)),
		Npcs:               make(map[string]NpcSnapshot, len(w.Npcs)),
	}

	for itemID := range w.Player.Inventory {
		snap.PlayerInventory = append(snap.PlayerInventory, itemID.String())
	}
	for _, f := range w.Player.Flags {
		snap.PlayerFlags = append(snap.PlayerFlags, FlagSnapshot{
			Kind: int(f.Kind), Name: f.Name, SetAtTurn: f.SetAtTurn, Step: f.Step, Limit: f.Limit,
		})
	}
	for a := range w.Player.Achievements {
		snap.PlayerAchievements = append(snap.PlayerAchievements, a)
	}
	for id, r := range w.Rooms {
		if r.Visited {
			snap.VisitedRooms = append(snap.VisitedRooms, id.String())
		}
	}
	for id, item := range w.Items {
		is := ItemSnapshot{Location: toLocationSnapshot(item.Location)}
		if item.ContainerState != nil {
			state := int(*item.ContainerState)
			is.ContainerState = &state
		}
		if item.Movability.Kind == worldmodel.MovabilityRestricted {
			is.Restricted = true
			is.RestrictedWhy = item.Movability.Reason
		}
		snap.Items[id.String()] = is
	}
	for id, npc := range w.Npcs {
		snap.Npcs[id.String()] = NpcSnapshot{
			Location:  toLocationSnapshot(npc.Location),
			StateKind: int(npc.State.Kind),
			StateName: npc.State.Custom,
			HP:        npc.Health.CurrentHP,
		}
	}

	sort.Strings(snap.PlayerInventory)
	sort.Strings(snap.PlayerAchievements)
	sort.Strings(snap.VisitedRooms)
	return snap
}

// ApplySnapshot restores dynamic state from snap onto an already
// content-loaded world w (whose static rooms/items/npcs already exist).
// It does not create or remove entities; a snapshot referencing an id
// absent from w (content drifted since the save was written) is skipped
// rather than treated as fatal.
func ApplySnapshot(snap Snapshot, w *worldmodel.AmbleWorld) error {
	w.TurnCount = snap.TurnCount
	w.Player.Name = snap.PlayerName
	w.Player.Description = snap.PlayerDescription
	w.Player.Score = snap.PlayerScore
	w.Player.Health.CurrentHP = snap.PlayerHP

	loc, err := fromLocationSnapshot(snap.PlayerLocation)
	if err != nil {
		return err
	}
	w.Player.Location = loc

	w.Player.Inventory = make(map[ids.Id]bool, len(snap.PlayerInventory))
	for _, raw := range snap.PlayerInventory {
		id, err := ids.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse inventory item id %q: %w", raw, err)
		}
		w.Player.Inventory[id] = true
	}

	w.Player.Flags = make(worldmodel.FlagSet, len(snap.PlayerFlags))
	for _, fs := range snap.PlayerFlags {
		w.Player.Flags.Set(worldmodel.Flag{
			Kind: worldmodel.FlagKind(fs.Kind), Name: fs.Name, SetAtTurn: fs.SetAtTurn, Step: fs.Step, Limit: fs.Limit,
		})
	}

	w.Player.Achievements = make(map[string]bool, len(snap.PlayerAchievements))
	for _, a := range snap.PlayerAchievements {
		w.Player.Achievements[a] = true
	}

	for _, raw := range snap.VisitedRooms {
		id, err := ids.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse visited room id %q: %w", raw, err)
		}
		if r, ok := w.Rooms[id]; ok {
			r.Visited = true
		}
	}

	for raw, is := range snap.Items {
		id, err := ids.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse item id %q: %w", raw, err)
		}
		item, ok := w.Items[id]
		if !ok {
			continue
		}
		loc, err := fromLocationSnapshot(is.Location)
		if err != nil {
			return err
		}
		item.Location = loc
		if is.ContainerState != nil {
			state := worldmodel.ContainerStateKind(*is.ContainerState)
			item.ContainerState = &state
		}
		if is.Restricted {
			item.Movability = worldmodel.Restricted(is.RestrictedWhy)
		}
	}

	for raw, ns := range snap.Npcs {
		id, err := ids.Parse(raw)
		if err != nil {
			return fmt.Errorf("parse npc id %q: %w", raw, err)
		}
		npc, ok := w.Npcs[id]
		if !ok {
			continue
		}
		loc, err := fromLocationSnapshot(ns.Location)
		if err != nil {
			return err
		}
		npc.Location = loc
		npc.State = worldmodel.NpcState{Kind: worldmodel.NpcStateKind(ns.StateKind), Custom: ns.StateName}
		npc.Health.CurrentHP = ns.HP
	}

	return w.PlacePass()
}

// Write serializes snap to path as TOML, creating parent directories as
// needed.
func Write(path string, snap Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save file %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(snap); err != nil {
		return fmt.Errorf("encode save file %s: %w", path, err)
	}
	return nil
}

// Read decodes the snapshot stored at path.
func Read(path string) (Snapshot, error) {
	var snap Snapshot
	if _, err := toml.DecodeFile(path, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode save file %s: %w", path, err)
	}
	return snap, nil
}

// Slot is a discovered save file before its contents have been parsed.
type Slot struct {
	Slot     string
	Version  string
	Path     string
	FileName string
	Modified time.Time
}

// CollectSlots discovers every "<slot>-amble-<version>.<ext>" file in dir,
// sorted by slot then version. A missing dir is not an error — it yields
// no slots, matching a fresh install that has never saved.
func CollectSlots(dir, ext string) ([]Slot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading save directory %s: %w", dir, err)
	}

	suffix := "." + strings.TrimPrefix(ext, ".")
	var slots []Slot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, suffix) {
			continue
		}
		stem := strings.TrimSuffix(name, suffix)
		idx := strings.LastIndex(stem, "-amble-")
		if idx <= 0 {
			continue
		}
		slotName := stem[:idx]
		version := stem[idx+len("-amble-"):]

		info, err := entry.Info()
		var modified time.Time
		if err == nil {
			modified = info.ModTime()
		}
		slots = append(slots, Slot{
			Slot: slotName, Version: version,
			Path: filepath.Join(dir, name), FileName: name, Modified: modified,
		})
	}
	sort.Slice(slots, func(i, j int) bool {
		if slots[i].Slot != slots[j].Slot {
			return slots[i].Slot < slots[j].Slot
		}
		return slots[i].Version < slots[j].Version
	})
	return slots, nil
}

// StatusKind discriminates Entry.Status.
type StatusKind int

const (
	StatusReady StatusKind = iota
	StatusVersionMismatch
	StatusCorrupted
)

// Status carries StatusKind plus the detail relevant to it.
type Status struct {
	Kind           StatusKind
	SaveVersion    string // VersionMismatch
	CurrentVersion string // VersionMismatch
	Message        string // Corrupted
}

// Summary is the at-a-glance description of a save's contents, shown on
// a save-slot listing.
type Summary struct {
	PlayerName     string
	PlayerLocation string
	TurnCount      int
	Score          int
}

// Entry is a fully-described save slot: discovery metadata plus parsed
// status and summary.
type Entry struct {
	Slot     string
	Version  string
	Path     string
	FileName string
	Modified time.Time
	Summary  *Summary
	Status   Status
}

// ModifiedAgo renders e.Modified as a relative "time ago" string.
func (e Entry) ModifiedAgo() string {
	if e.Modified.IsZero() {
		return "unknown"
	}
	return humanize.Time(e.Modified)
}

// BuildEntries discovers and parses every save slot in dir, describing
// each against currentVersion, newest-modified first (ties broken by
// slot name).
func BuildEntries(dir, ext, currentVersion string, describeLocation func(Snapshot) string) ([]Entry, error) {
	slots, err := CollectSlots(dir, ext)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(slots))
	for _, s := range slots {
		entries = append(entries, entryForSlot(s, currentVersion, describeLocation))
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Modified.Equal(entries[j].Modified) {
			return entries[i].Modified.After(entries[j].Modified)
		}
		return entries[i].Slot < entries[j].Slot
	})
	return entries, nil
}

func entryForSlot(s Slot, currentVersion string, describeLocation func(Snapshot) string) Entry {
	entry := Entry{Slot: s.Slot, Version: s.Version, Path: s.Path, FileName: s.FileName, Modified: s.Modified}

	snap, err := Read(s.Path)
	if err != nil {
		entry.Status = Status{Kind: StatusCorrupted, Message: trimError(err)}
		return entry
	}

	entry.Version = snap.Version
	if snap.Version == currentVersion {
		entry.Status = Status{Kind: StatusReady}
	} else {
		entry.Status = Status{Kind: StatusVersionMismatch, SaveVersion: snap.Version, CurrentVersion: currentVersion}
	}

	loc := ""
	if describeLocation != nil {
		loc = describeLocation(snap)
	}
	entry.Summary = &Summary{
		PlayerName:     snap.PlayerName,
		PlayerLocation: loc,
		TurnCount:      snap.TurnCount,
		Score:          snap.PlayerScore,
	}
	return entry
}

func trimError(err error) string {
	msg := err.Error()
	const max = 120
	if len(msg) <= max {
		return msg
	}
	return msg[:max-3] + "..."
}
