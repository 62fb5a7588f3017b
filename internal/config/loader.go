package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// High score store kinds.
const (
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Only a custom path reports read or parse errors; the other locations are optional.
// The result is validated.
func Load(customPath string) (Config, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg := Default()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := parseFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := parseFile(filepath.Join("configs", "snake.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseFile reads an optional config file layered over the defaults.
func parseFile(path string) (Config, bool) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Board.Width < SnakeLength || c.Board.Height < 1 {
		return fmt.Errorf("config: board must be at least %dx1, got %dx%d",
			SnakeLength, c.Board.Width, c.Board.Height)
	}
	// The body trails left of the head, so an explicit start x leaves room for it.
	if c.Snake.StartX < 0 || (c.Snake.StartX > 0 && c.Snake.StartX < SnakeLength) ||
		c.Snake.StartX > c.Board.Width ||
		c.Snake.StartY < 0 || c.Snake.StartY > c.Board.Height {
		return fmt.Errorf("config: snake start (%d, %d) is outside the board", c.Snake.StartX, c.Snake.StartY)
	}
	if c.Food.Points < 0 {
		return fmt.Errorf("config: food points must not be negative, got %d", c.Food.Points)
	}
	if c.Food.MaxAttempts < 1 {
		return fmt.Errorf("config: food max_attempts must be at least 1, got %d", c.Food.MaxAttempts)
	}
	if len([]rune(c.Food.Symbol)) != 1 {
		return fmt.Errorf("config: food symbol must be a single character, got %q", c.Food.Symbol)
	}
	if c.Scoring.LevelThreshold < 1 {
		return fmt.Errorf("config: level_threshold must be at least 1, got %d", c.Scoring.LevelThreshold)
	}
	if c.Timing.TickMS < 1 || c.Timing.IdlePollMS < 1 {
		return fmt.Errorf("config: timing values must be positive, got tick %d / idle %d",
			c.Timing.TickMS, c.Timing.IdlePollMS)
	}
	switch c.HighScores.Store {
	case StoreFile, StoreSQLite:
	default:
		return fmt.Errorf("config: unknown highscores store %q (want file or sqlite)", c.HighScores.Store)
	}
	return c.Difficulty.validate()
}

// SnakeLength is the length of a fresh snake.
const SnakeLength = 3

// StartPosition returns the head position of a fresh snake.
func (c Config) StartPosition() (int, int) {
	x, y := c.Snake.StartX, c.Snake.StartY
	if x == 0 {
		x = max(c.Board.Width/2, SnakeLength)
	}
	if y == 0 {
		y = max(c.Board.Height/2, 1)
	}
	return x, y
}

// FoodSymbol returns the food rune.
func (c Config) FoodSymbol() rune {
	for _, r := range c.Food.Symbol {
		return r
	}
	return '@'
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: cannot expand home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
