// repl/system.go contains handlers for the system-utility commands: help,
// quit, save, and load.
package repl

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pygmy-twylyte/amble-go/internal/condition"
	"github.com/pygmy-twylyte/amble-go/internal/save"
	"github.com/pygmy-twylyte/amble-go/internal/spinner"
	"github.com/pygmy-twylyte/amble-go/internal/view"
)

// savePath builds the "<slot>-amble-<version>.<ext>" path a save slot
// lives at, matching the layout save.CollectSlots discovers.
func (s *Session) savePath(slot string) string {
	name := fmt.Sprintf("%s-amble-%s.%s", slot, s.World.Version, strings.TrimPrefix(s.SaveExt, "."))
	return filepath.Join(s.SaveDir, name)
}

// Help lists the available commands.
func (s *Session) Help() []condition.Event {
	var b strings.Builder
	b.WriteString(s.World.Help.BasicText)
	for _, cmd := range s.World.Help.Commands {
		b.WriteString("\n  ")
		b.WriteString(cmd.Command)
		if cmd.Description != "" {
			b.WriteString(" - ")
			b.WriteString(cmd.Description)
		}
	}
	s.View.Push(view.Item{Kind: view.KindHelp, Text: b.String()})
	return nil
}

// Quit ends the session, reporting the player's final score.
func (s *Session) Quit() []condition.Event {
	msg := s.spinOr(spinner.QuitMsg, "Goodbye.")
	s.View.Push(view.Item{
		Kind:   view.KindQuitSummary,
		Text:   msg,
		Amount: s.World.Player.Score,
	})
	return nil
}

// Save writes the current world state to a named slot.
func (s *Session) Save(slot string) []condition.Event {
	if slot == "" {
		s.View.Push(view.Item{Kind: view.KindSaveResult, Text: "Save needs a name: \"save <name>\"."})
		return nil
	}
	snap := save.BuildSnapshot(s.World.AmbleWorld, s.World.Version)
	path := s.savePath(slot)
	if err := save.Write(path, snap); err != nil {
		s.View.Push(view.Item{Kind: view.KindError, Text: "couldn't save: " + err.Error()})
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindSaveResult, Text: "Game saved as " + slot + "."})
	return nil
}

// Load restores a named slot's state over the current world.
func (s *Session) Load(slot string) []condition.Event {
	if slot == "" {
		s.View.Push(view.Item{Kind: view.KindLoadResult, Text: "Load needs a name: \"load <name>\"."})
		return nil
	}
	path := s.savePath(slot)
	snap, err := save.Read(path)
	if err != nil {
		s.View.Push(view.Item{Kind: view.KindLoadResult, Text: "Unable to find the \"" + slot + "\" save. Load aborted."})
		return nil
	}
	if err := save.ApplySnapshot(snap, s.World.AmbleWorld); err != nil {
		s.View.Push(view.Item{Kind: view.KindLoadResult, Text: "Unable to restore the \"" + slot + "\" save: " + err.Error()})
		return nil
	}
	s.View.Push(view.Item{Kind: view.KindLoadResult, Text: "Saved game " + slot + " loaded successfully. Sally forth."})
	return nil
}
