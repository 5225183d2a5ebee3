package content

import (
	"fmt"
	"path/filepath"

	"github.com/pygmy-twylyte/amble-go/internal/action"
	"github.com/pygmy-twylyte/amble-go/internal/goal"
	"github.com/pygmy-twylyte/amble-go/internal/ids"
	"github.com/pygmy-twylyte/amble-go/internal/scoring"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
	"github.com/pygmy-twylyte/amble-go/internal/trigger"
	"github.com/pygmy-twylyte/amble-go/internal/worldmodel"
	"go.uber.org/zap"
)

// World is the complete loaded session: the mutable entity world the turn
// loop owns, plus the declarative layers (goals, triggers, spinners,
// scoring, help) that sit alongside it in their own packages to keep
// worldmodel free of a dependency cycle with the trigger engine.
type World struct {
	*worldmodel.AmbleWorld

	Goals      map[ids.Id]*goal.Goal
	GoalOrder  []ids.Id
	Triggers   []*trigger.Trigger
	Spinners   spinner.Table
	Scoring    scoring.Config
	Help       HelpData
}

// file names expected under a content directory, matching the original
// author's data layout.
const (
	roomsFile     = "rooms.toml"
	itemsFile     = "items.toml"
	npcsFile      = "npcs.toml"
	triggersFile  = "triggers.toml"
	spinnersFile  = "spinners.toml"
	goalsFile     = "goals.toml"
	scoringFile   = "scoring.toml"
	helpBasicFile = "help_basic.txt"
	helpCmdsFile  = "help_commands.toml"
)

// LoadWorld builds a complete World from the TOML content files under
// dataDir, in the load order a later file's cross-references depend on:
// spinners, rooms (so exits can forward-reference), player (to recover
// its starting room), NPCs, items, then a single placement pass that puts
// every item and NPC into its declared location once rooms, NPCs and items
// all exist, triggers (whose AwardPoints actions roll into MaxScore), and finally
// goals. Help and scoring content are independent of the symbol table and
// load at the end; a missing or malformed scoring file falls back to
// scoring.Default rather than aborting the load.
func LoadWorld(dataDir, playerFileName, version string, log *zap.Logger) (*World, error) {
	symbols := ids.NewSymbolTable()
	w := worldmodel.NewEmptyWorld(version)

	rawSpinners, err := loadRawSpinners(filepath.Join(dataDir, spinnersFile))
	if err != nil {
		return nil, fmt.Errorf("while loading spinners from file: %w", err)
	}
	spinners, err := buildSpinners(rawSpinners)
	if err != nil {
		return nil, fmt.Errorf("while building spinners: %w", err)
	}
	log.Info("spinners loaded", zap.Int("count", len(spinners)))

	rawRooms, err := loadRawRooms(filepath.Join(dataDir, roomsFile))
	if err != nil {
		return nil, fmt.Errorf("while loading rooms from file: %w", err)
	}
	rooms, err := buildRooms(rawRooms, symbols)
	if err != nil {
		return nil, fmt.Errorf("while building rooms: %w", err)
	}
	w.Rooms = rooms
	w.MaxScore += len(rooms)
	log.Info("rooms added", zap.Int("count", len(rooms)))

	rawPlayer, err := loadRawPlayer(filepath.Join(dataDir, playerFileName))
	if err != nil {
		return nil, fmt.Errorf("while loading player from file: %w", err)
	}
	player, err := buildPlayer(rawPlayer, symbols)
	if err != nil {
		return nil, fmt.Errorf("while building player: %w", err)
	}
	w.Player = player
	log.Info("player added", zap.String("name", player.Name))

	rawNpcs, err := loadRawNpcs(filepath.Join(dataDir, npcsFile))
	if err != nil {
		return nil, fmt.Errorf("while loading npcs from file: %w", err)
	}
	npcs, err := buildNpcs(rawNpcs, symbols)
	if err != nil {
		return nil, fmt.Errorf("while building npcs: %w", err)
	}
	w.Npcs = npcs
	log.Info("npcs added", zap.Int("count", len(npcs)))

	rawItems, err := loadRawItems(filepath.Join(dataDir, itemsFile))
	if err != nil {
		return nil, fmt.Errorf("while loading items from file: %w", err)
	}
	items, err := buildItems(rawItems, symbols)
	if err != nil {
		return nil, fmt.Errorf("while building items: %w", err)
	}
	w.Items = items
	log.Info("items added", zap.Int("count", len(items)))

	if err := w.PlacePass(); err != nil {
		return nil, fmt.Errorf("while placing entities: %w", err)
	}

	rawTriggers, err := loadRawTriggers(filepath.Join(dataDir, triggersFile))
	if err != nil {
		return nil, fmt.Errorf("while loading triggers from file: %w", err)
	}
	triggers, err := buildTriggers(rawTriggers, symbols)
	if err != nil {
		return nil, fmt.Errorf("while building triggers: %w", err)
	}
	log.Info("triggers added", zap.Int("count", len(triggers)))

	for _, t := range triggers {
		for _, a := range t.Actions {
			if a.Kind == action.KindAwardPoints && a.Points > 0 {
				w.MaxScore += a.Points
			}
		}
	}

	rawGoals, err := loadRawGoals(filepath.Join(dataDir, goalsFile))
	if err != nil {
		return nil, fmt.Errorf("while loading goals from file: %w", err)
	}
	goals, order, err := buildGoals(rawGoals, symbols)
	if err != nil {
		return nil, fmt.Errorf("while building goals: %w", err)
	}
	log.Info("goals added", zap.Int("count", len(goals)))

	scoringCfg := loadScoring(filepath.Join(dataDir, scoringFile), log)

	helpData, err := loadHelpData(filepath.Join(dataDir, helpBasicFile), filepath.Join(dataDir, helpCmdsFile))
	if err != nil {
		return nil, fmt.Errorf("while loading help data: %w", err)
	}

	return &World{
		AmbleWorld: w,
		Goals:      goals,
		GoalOrder:  order,
		Triggers:   triggers,
		Spinners:   spinners,
		Scoring:    scoringCfg,
		Help:       helpData,
	}, nil
}
