package snake

import (
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// InitialLength is the number of segments a snake has after Reset.
const InitialLength = config.SnakeLength

// Snake is the player's body: an ordered list of cells, head first.
// The committed direction only changes inside Update, so a turn requested
// between ticks is applied atomically on the next one.
type Snake struct {
	body      []core.Position // Head at index 0
	direction core.Direction
	nextDir   core.Direction
	growing   bool
}

// NewSnake creates a snake with its head at (x, y), facing right.
func NewSnake(x, y int) *Snake {
	s := &Snake{}
	s.Reset(x, y)
	return s
}

// Reset reinitializes the snake in place: three segments with the head at
// (x, y) extending to the left, direction right, no pending growth.
func (s *Snake) Reset(x, y int) {
	s.body = s.body[:0]
	for i := range InitialLength {
		s.body = append(s.body, core.Pos(x-i, y))
	}
	s.direction = core.DirRight
	s.nextDir = core.DirRight
	s.growing = false
}

// Update advances the snake one cell in the pending direction.
// The tail is dropped unless a Grow is pending, which is consumed here.
func (s *Snake) Update() {
	s.direction = s.nextDir
	head := s.body[0].Add(s.direction)

	if s.growing {
		s.body = append(s.body, core.Position{})
		s.growing = false
	}

	// Shift every segment back one slot; the old tail falls off the end
	// unless the slice was just extended.
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// SetDirection requests a direction for the next Update.
// A request to reverse the committed direction is ignored.
func (s *Snake) SetDirection(d core.Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.nextDir = d
}

// Grow makes the next Update extend the body by one segment.
func (s *Snake) Grow() {
	s.growing = true
}

// CheckCollision reports whether any segment occupies (x, y).
func (s *Snake) CheckCollision(x, y int) bool {
	p := core.Pos(x, y)
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// CheckWallCollision reports whether the head is on or outside the border
// ring of a width*height playfield whose interior spans 1..width, 1..height.
func (s *Snake) CheckWallCollision(width, height int) bool {
	head := s.body[0]
	return head.X <= 0 || head.X >= width+1 || head.Y <= 0 || head.Y >= height+1
}

// CheckSelfCollision reports whether the head overlaps any other segment.
func (s *Snake) CheckSelfCollision() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Position {
	out := make([]core.Position, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head position.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() core.Position {
	return s.body[len(s.body)-1]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// PendingDirection returns the direction the next Update will commit.
func (s *Snake) PendingDirection() core.Direction {
	return s.nextDir
}

// Growing reports whether a Grow is waiting for the next Update.
func (s *Snake) Growing() bool {
	return s.growing
}
