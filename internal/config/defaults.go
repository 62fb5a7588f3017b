package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration. It mirrors defaults/snake.yaml and
// is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  40,
			Height: 20,
		},
		Food: FoodConfig{
			Symbol:      "@",
			Points:      10,
			MaxAttempts: 100,
		},
		Difficulty: DifficultyConfig{
			Default: string(DifficultyNormal),
			FrameDelay: FrameDelayConfig{
				Easy:   8,
				Normal: 6,
				Hard:   4,
			},
		},
		Scoring: ScoringConfig{
			LevelThreshold: 50,
		},
		Timing: TimingConfig{
			TickMS:     10,
			IdlePollMS: 50,
		},
		HighScores: HighScoreConfig{
			Store:       StoreFile,
			File:        "~/.snake/highscores.txt",
			DB:          "~/.snake/scores.db",
			Show:        10,
			DefaultName: "Player",
		},
		Sound: SoundConfig{
			Enabled: true,
			Eat:     Cue{Frequency: 400, DurationMS: 50},
			Crash:   Cue{Frequency: 200, DurationMS: 500},
		},
		UI: UIConfig{
			Backend: "tea",
		},
		Log: LogConfig{
			File:  "~/.snake/snake.log",
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
