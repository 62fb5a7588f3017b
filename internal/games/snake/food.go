package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Food defaults.
const (
	DefaultFoodSymbol      = '@'
	DefaultFoodPoints      = 10
	DefaultFoodMaxAttempts = 100
)

// Food is a single pickup on the board. While active its position was free of
// the snake when it was generated.
type Food struct {
	rng         *rand.Rand
	pos         core.Position
	active      bool
	symbol      rune
	color       core.Color
	points      int
	maxAttempts int
}

// NewFood creates an inactive food item. The point value never changes after
// construction.
func NewFood(rng *rand.Rand, symbol rune, color core.Color, points int) *Food {
	return &Food{
		rng:         rng,
		symbol:      symbol,
		color:       color,
		points:      points,
		maxAttempts: DefaultFoodMaxAttempts,
	}
}

// SetMaxAttempts changes how many random placements Generate tries.
func (f *Food) SetMaxAttempts(n int) {
	f.maxAttempts = max(1, n)
}

// Generate places the food on a random cell in 1..maxX, 1..maxY that the snake
// does not occupy. When every attempt lands on the snake the food is
// deactivated instead.
func (f *Food) Generate(maxX, maxY int, s *Snake) {
	if maxX <= 0 || maxY <= 0 {
		f.active = false
		return
	}

	for range f.maxAttempts {
		x := 1 + f.rng.Intn(maxX)
		y := 1 + f.rng.Intn(maxY)
		if s == nil || !s.CheckCollision(x, y) {
			f.pos = core.Pos(x, y)
			f.active = true
			return
		}
	}
	f.active = false
}

// Reset deactivates the food and moves it to the origin.
func (f *Food) Reset() {
	f.active = false
	f.pos = core.Position{}
}

// SetPosition places the food at (x, y) and activates it.
func (f *Food) SetPosition(x, y int) {
	f.pos = core.Pos(x, y)
	f.active = true
}

// Position returns the last placed position.
func (f *Food) Position() core.Position {
	return f.pos
}

// Active reports whether the food is on the board.
func (f *Food) Active() bool {
	return f.active
}

// SetActive shows or hides the food without moving it.
func (f *Food) SetActive(active bool) {
	f.active = active
}

// Collides reports whether any segment of the snake is on active food.
func (f *Food) Collides(s *Snake) bool {
	if !f.active || s == nil {
		return false
	}
	return s.CheckCollision(f.pos.X, f.pos.Y)
}

// CollidesAt reports whether active food sits at (x, y).
func (f *Food) CollidesAt(x, y int) bool {
	return f.active && f.pos == core.Pos(x, y)
}

// Points returns the score value.
func (f *Food) Points() int {
	return f.points
}

// Symbol returns the rune drawn for the food.
func (f *Food) Symbol() rune {
	return f.symbol
}

// Color returns the food's draw color.
func (f *Food) Color() core.Color {
	return f.color
}
