// Command amble runs a single-player text-adventure session: it loads a
// declarative TOML world, then drives the turn loop against stdin/stdout
// until the player quits, the world ends the game, or a character dies.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pygmy-twylyte/amble-go/internal/config"
	"github.com/pygmy-twylyte/amble-go/internal/content"
	"github.com/pygmy-twylyte/amble-go/internal/repl"
	"github.com/pygmy-twylyte/amble-go/internal/turnloop"
	"github.com/pygmy-twylyte/amble-go/internal/view"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// engineVersion stamps save files and is reported in the startup banner.
const engineVersion = "0.1.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Printf("\033[36;1m  │\033[0m              amble  v%-6s               \033[36;1m│\033[0m\n", engineVersion)
	fmt.Println("\033[36;1m  │\033[0m       a small, declarative text adventure  \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	displayWidth := len([]rune(title))
	lineLen := 46 - displayWidth - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len([]rune(label)) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main game logic ─────────────────────────────────────────────

func run() error {
	cfgPath := os.Getenv(config.EnvOverride)
	if cfgPath == "" {
		cfgPath = config.DefaultPath
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()
	printSection("world")

	world, err := content.LoadWorld(cfg.World.DataDir, cfg.World.PlayerFile, engineVersion, log)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}

	if cfg.World.Seed == 0 {
		world.SeedRNG(time.Now().UnixNano())
	} else {
		world.SeedRNG(cfg.World.Seed)
	}

	printStat("rooms", len(world.Rooms))
	printStat("items", len(world.Items))
	printStat("npcs", len(world.Npcs))
	printStat("triggers", len(world.Triggers))
	printStat("goals", len(world.Goals))
	printOK("world loaded")

	session := &repl.Session{
		World:   world,
		View:    view.New(),
		SaveDir: cfg.Save.Dir,
		SaveExt: cfg.Save.Extension,
	}
	loop := turnloop.New(session, log)

	printReady("sally forth — type \"help\" for a list of commands")
	fmt.Println()

	return playLoop(loop)
}

// playLoop reads lines from stdin, feeding each to the turn loop and
// rendering its output, until the loop reports the session is over.
func playLoop(loop *turnloop.Loop) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			// EOF on stdin (piped input, or ctrl-D) ends the game quietly.
			return nil
		}
		line := scanner.Text()
		out := loop.Step(line)
		render(out.Items)
		if out.Over {
			if out.EndMsg != "" {
				fmt.Println()
				fmt.Println(out.EndMsg)
			}
			return nil
		}
	}
}

// render prints a turn's flushed view items to stdout in the order the
// view already sorted them into; it has nothing left to decide beyond
// how to phrase each kind.
func render(items []view.Item) {
	for _, it := range items {
		switch it.Kind {
		case view.KindCharacterDeath:
			fmt.Printf("\n%s has died: %s\n", it.NpcName, it.Cause)
		case view.KindQuitSummary:
			fmt.Printf("\n%s Final score: %d.\n", it.Text, it.Amount)
		case view.KindPointsAwarded:
			fmt.Printf("  [+%d points]\n", it.Amount)
		case view.KindNpcEntered:
			fmt.Printf("%s arrives.\n", it.NpcName)
		case view.KindNpcLeft:
			fmt.Printf("%s leaves.\n", it.NpcName)
		case view.KindNpcSpeech:
			fmt.Printf("%s says: %s\n", it.NpcName, it.Text)
		case view.KindCharacterHarmed:
			fmt.Printf("%s is hurt (-%d): %s\n", it.NpcName, it.Amount, it.Cause)
		case view.KindCharacterHealed:
			fmt.Printf("%s recovers (+%d): %s\n", it.NpcName, it.Amount, it.Cause)
		case view.KindError:
			fmt.Printf("error: %s\n", it.Text)
		default:
			fmt.Println(it.Text)
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
