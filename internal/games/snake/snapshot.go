package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot captures the game state for determinism tests and debug logs.
type Snapshot struct {
	Tick       uint64
	State      State
	Score      int
	HighScore  int
	Level      int
	Difficulty config.Difficulty
	FrameDelay int
	SnakeLen   int
	Head       core.Position
	Dir        core.Direction
	Food       core.Position
	FoodActive bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		State:      g.state,
		Score:      g.score,
		HighScore:  g.highScore,
		Level:      g.level,
		Difficulty: g.difficulty,
		FrameDelay: g.frameDelay,
		SnakeLen:   g.snake.Len(),
		Head:       g.snake.Head(),
		Dir:        g.snake.Direction(),
		Food:       g.food.Position(),
		FoodActive: g.food.Active(),
	}
}

// DebugState returns a multi-line description of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, State: %s, Score: %d, Level: %d\n", s.Tick, s.State, s.Score, s.Level)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s, Head: (%d, %d)\n", s.SnakeLen, s.Dir, s.Head.X, s.Head.Y)
	fmt.Fprintf(&b, "Food: (%d, %d) active=%v, Frame delay: %d\n", s.Food.X, s.Food.Y, s.FoodActive, s.FrameDelay)
	return b.String()
}
