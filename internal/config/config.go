// Package config provides YAML-based game configuration loading and
// difficulty tables for the snake game.
package config

import "time"

// Config contains all configuration for the game and its surroundings.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Snake      SnakeConfig      `yaml:"snake"`
	Food       FoodConfig       `yaml:"food"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	HighScores HighScoreConfig  `yaml:"highscores"`
	Sound      SoundConfig      `yaml:"sound"`
	UI         UIConfig         `yaml:"ui"`
	Log        LogConfig        `yaml:"log"`
}

// BoardConfig defines the playable interior. The border ring sits just outside
// it, at x = 0 and x = Width+1, y = 0 and y = Height+1.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig defines where a fresh snake's head is placed.
// Zero values mean the center of the board.
type SnakeConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// FoodConfig defines the food item.
type FoodConfig struct {
	Symbol      string `yaml:"symbol"`
	Points      int    `yaml:"points"`
	MaxAttempts int    `yaml:"max_attempts"` // Placement retries before the food is deactivated
}

// DifficultyConfig defines the difficulty tiers.
type DifficultyConfig struct {
	Default      string           `yaml:"default"`
	FrameDelay   FrameDelayConfig `yaml:"frame_delay"`
	LevelSpeedup int              `yaml:"level_speedup"` // Frames removed from the delay per level above 1
}

// FrameDelayConfig maps each tier to the number of loop iterations per tick.
type FrameDelayConfig struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	LevelThreshold int `yaml:"level_threshold"` // Points per level
}

// TimingConfig defines loop pacing in milliseconds.
type TimingConfig struct {
	TickMS     int `yaml:"tick_ms"`      // Sleep between iterations while playing
	IdlePollMS int `yaml:"idle_poll_ms"` // Sleep between input polls in every other state
}

// Tick returns the playing-state loop interval.
func (t TimingConfig) Tick() time.Duration {
	return time.Duration(t.TickMS) * time.Millisecond
}

// IdlePoll returns the loop interval for menus and overlays.
func (t TimingConfig) IdlePoll() time.Duration {
	return time.Duration(t.IdlePollMS) * time.Millisecond
}

// HighScoreConfig defines high score persistence.
type HighScoreConfig struct {
	Store       string `yaml:"store"` // "file" or "sqlite"
	File        string `yaml:"file"`
	DB          string `yaml:"db"`
	Show        int    `yaml:"show"` // Entries listed on the high score screen
	DefaultName string `yaml:"default_name"`
}

// DefaultShow is the listing length used when Show is not positive.
const DefaultShow = 10

// Limit returns the number of entries to list.
func (h HighScoreConfig) Limit() int {
	if h.Show <= 0 {
		return DefaultShow
	}
	return h.Show
}

// SoundConfig defines the feedback cues.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
	Eat     Cue  `yaml:"eat"`
	Crash   Cue  `yaml:"crash"`
}

// Cue is a single beep.
type Cue struct {
	Frequency  int `yaml:"frequency"`
	DurationMS int `yaml:"duration_ms"`
}

// Duration returns the cue length.
func (c Cue) Duration() time.Duration {
	return time.Duration(c.DurationMS) * time.Millisecond
}

// UIConfig selects the console backend.
type UIConfig struct {
	Backend string `yaml:"backend"`
}

// LogConfig defines the log destination. An empty file discards logs.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}
