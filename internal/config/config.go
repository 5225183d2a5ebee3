package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the settings that drive a single amble session: where the
// world content and save files live, how the world's RNG is seeded, and
// how the engine logs.
type Config struct {
	World   WorldConfig   `toml:"world"`
	Save    SaveConfig    `toml:"save"`
	Logging LoggingConfig `toml:"logging"`
}

// WorldConfig locates the declarative content that builds an AmbleWorld.
type WorldConfig struct {
	DataDir    string `toml:"data_dir"`
	PlayerFile string `toml:"player_file"`
	Seed       int64  `toml:"seed"` // 0 means seed from current time at Load
}

// SaveConfig locates the save-slot directory and the file naming policy
// used by internal/save.
type SaveConfig struct {
	Dir       string `toml:"dir"`
	Extension string `toml:"extension"`
}

// LoggingConfig mirrors the level/format switch used throughout the rest
// of the engine's logging setup.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// EnvOverride is the environment variable consulted by cmd/amble before
// falling back to DefaultPath.
const EnvOverride = "AMBLE_CONFIG"

// DefaultPath is used when AMBLE_CONFIG is unset.
const DefaultPath = "amble.toml"

// Load reads and parses the config file at path, overlaying it onto
// defaults() so a file that omits a field still gets a sane value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		World: WorldConfig{
			DataDir:    "data",
			PlayerFile: "player.toml",
			Seed:       0,
		},
		Save: SaveConfig{
			Dir:       "saved_games",
			Extension: "toml",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
