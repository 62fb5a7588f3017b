package tui

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// maxCueFlash caps the reverse-video cue so a long crash tone does not leave
// the screen inverted.
const maxCueFlash = 150 * time.Millisecond

// Console is a buffered core.Console. The game draws into an off-screen
// buffer and Bubble Tea renders that buffer on every View call.
type Console struct {
	mu sync.Mutex

	screen *core.Screen
	keys   []core.Key
	sound  registry.Sounder
	now    func() time.Time

	flashUntil time.Time
	cursor     core.Position
	cursorOn   bool
	flushes    int
}

// NewConsole creates a console of the given size. sound may be nil.
func NewConsole(width, height int, sound registry.Sounder) *Console {
	return &Console{
		screen: core.NewScreen(width, height),
		sound:  sound,
		now:    time.Now,
	}
}

// Screen returns the backing buffer.
func (c *Console) Screen() *core.Screen {
	return c.screen
}

func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.Clear()
}

func (c *Console) DrawChar(x, y int, ch rune, color core.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.SetColored(x, y, ch, color)
}

func (c *Console) DrawString(x, y int, s string, color core.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.DrawTextColored(x, y, s, color)
}

func (c *Console) DrawBox(x, y, w, h int, border rune, color core.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen.DrawBox(core.NewRect(x, y, w, h), border, color)
}

// PushKey queues keys for the game, oldest first.
func (c *Console) PushKey(keys ...core.Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		if k.Code != core.KeyNone {
			c.keys = append(c.keys, k)
		}
	}
}

func (c *Console) KeyPressed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.keys) > 0
}

func (c *Console) ReadKey() core.Key {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.keys) == 0 {
		return core.KeyOf(core.KeyNone)
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	return k
}

// Beep plays a tone when a sound player is attached and always flashes the
// screen in reverse video.
func (c *Console) Beep(frequency int, duration time.Duration) {
	if c.sound != nil {
		c.sound.Tone(frequency, duration)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.flashUntil = c.now().Add(min(duration, maxCueFlash))
}

// Sleep does nothing: the Bubble Tea tick paces the loop.
func (c *Console) Sleep(time.Duration) {}

func (c *Console) ShowCursor(x, y int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor = core.Position{X: x, Y: y}
	c.cursorOn = true
}

func (c *Console) HideCursor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursorOn = false
}

// Flush marks a frame as complete. The buffer is presented on the next View.
func (c *Console) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.flushes++
}

// Flushes returns the number of completed frames.
func (c *Console) Flushes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flushes
}

// Render returns the styled buffer contents.
func (c *Console) Render() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	opts := renderOptions{Reverse: c.now().Before(c.flashUntil)}
	if c.cursorOn {
		cur := c.cursor
		opts.Cursor = &cur
	}
	return RenderScreen(c.screen, opts)
}

var _ core.Console = (*Console)(nil)
