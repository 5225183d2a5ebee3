package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// HelpCommand is a single entry in the help listing.
type HelpCommand struct {
	Command     string `toml:"command"`
	Description string `toml:"description"`
}

// helpCommandFile is the wrapper TOML requires to deserialize a bare
// help command array.
type helpCommandFile struct {
	Commands []HelpCommand `toml:"commands"`
}

// HelpData is the complete help catalog: free-form introductory text
// plus the per-command listing.
type HelpData struct {
	BasicText string
	Commands  []HelpCommand
}

func loadHelpCommands(tomlPath string) ([]HelpCommand, error) {
	var wrapper helpCommandFile
	if _, err := toml.DecodeFile(tomlPath, &wrapper); err != nil {
		return nil, fmt.Errorf("parsing help commands from %q: %w", tomlPath, err)
	}
	return wrapper.Commands, nil
}

func loadHelpBasicText(textPath string) (string, error) {
	data, err := os.ReadFile(textPath)
	if err != nil {
		return "", fmt.Errorf("reading basic help text from %q: %w", textPath, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// loadHelpData loads the complete help catalog from the given basic-text
// and commands-TOML paths.
func loadHelpData(basicTextPath, commandsTOMLPath string) (HelpData, error) {
	basicText, err := loadHelpBasicText(basicTextPath)
	if err != nil {
		return HelpData{}, fmt.Errorf("loading basic help text: %w", err)
	}
	commands, err := loadHelpCommands(commandsTOMLPath)
	if err != nil {
		return HelpData{}, fmt.Errorf("loading help commands: %w", err)
	}
	return HelpData{BasicText: basicText, Commands: commands}, nil
}
