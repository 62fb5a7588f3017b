package config

import (
	"fmt"
	"strings"
)

// Difficulty represents a named speed tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists the tiers from slowest to fastest.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty converts a user-supplied name into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return d, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Title returns the display name of the tier.
func (d Difficulty) Title() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// FrameDelayFor returns the number of loop iterations between ticks for d.
// Unknown tiers fall back to Normal.
func (c DifficultyConfig) FrameDelayFor(d Difficulty) int {
	switch d {
	case DifficultyEasy:
		return c.FrameDelay.Easy
	case DifficultyHard:
		return c.FrameDelay.Hard
	default:
		return c.FrameDelay.Normal
	}
}

// validate checks that the table is ordered Easy > Normal > Hard >= 1.
func (c DifficultyConfig) validate() error {
	fd := c.FrameDelay
	if fd.Hard < 1 {
		return fmt.Errorf("config: frame_delay.hard must be at least 1, got %d", fd.Hard)
	}
	if !(fd.Easy > fd.Normal && fd.Normal > fd.Hard) {
		return fmt.Errorf("config: frame_delay must satisfy easy > normal > hard, got %d/%d/%d",
			fd.Easy, fd.Normal, fd.Hard)
	}
	if c.LevelSpeedup < 0 {
		return fmt.Errorf("config: level_speedup must not be negative, got %d", c.LevelSpeedup)
	}
	if _, err := ParseDifficulty(c.Default); err != nil {
		return err
	}
	return nil
}
