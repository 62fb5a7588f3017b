// Package tcell provides a direct-drawing terminal backend on top of
// gdamore/tcell. Keys are read by a single goroutine that only feeds a
// buffered channel; all drawing happens on the game's goroutine.
package tcell

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// keyBuffer bounds the keys waiting for the game loop.
const keyBuffer = 64

// Console implements core.Console over a tcell.Screen.
type Console struct {
	screen  tcell.Screen
	sound   registry.Sounder
	keys    chan core.Key
	pending []core.Key
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// NewConsole wraps an initialized screen and starts reading its events.
func NewConsole(screen tcell.Screen, sound registry.Sounder) *Console {
	c := &Console{
		screen: screen,
		sound:  sound,
		keys:   make(chan core.Key, keyBuffer),
		done:   make(chan struct{}),
	}
	c.wg.Add(1)
	go c.readEvents()
	return c
}

// readEvents forwards key events until the screen is finalized.
func (c *Console) readEvents() {
	defer c.wg.Done()
	for {
		ev := c.screen.PollEvent()
		if ev == nil {
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			k := translateKey(ev)
			if k.Code == core.KeyNone {
				continue
			}
			select {
			case c.keys <- k:
			case <-c.done:
				return
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// translateKey maps a tcell key event to a core key.
func translateKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyOf(core.KeyUp)
	case tcell.KeyDown:
		return core.KeyOf(core.KeyDown)
	case tcell.KeyLeft:
		return core.KeyOf(core.KeyLeft)
	case tcell.KeyRight:
		return core.KeyOf(core.KeyRight)
	case tcell.KeyEnter:
		return core.KeyOf(core.KeyEnter)
	case tcell.KeyEscape:
		return core.KeyOf(core.KeyEscape)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return core.KeyOf(core.KeyBackspace)
	case tcell.KeyCtrlC:
		return core.KeyOf(core.KeyInterrupt)
	case tcell.KeyRune:
		return core.RuneKey(ev.Rune())
	}
	return core.KeyOf(core.KeyNone)
}

// styleFor maps a core color onto the terminal palette.
func styleFor(c core.Color) tcell.Style {
	n := c.ANSI()
	if n < 0 {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(n))
}

func (c *Console) Clear() {
	c.screen.Clear()
}

func (c *Console) DrawChar(x, y int, ch rune, color core.Color) {
	c.screen.SetContent(x, y, ch, nil, styleFor(color))
}

func (c *Console) DrawString(x, y int, s string, color core.Color) {
	style := styleFor(color)
	i := 0
	for _, r := range s {
		c.screen.SetContent(x+i, y, r, nil, style)
		i++
	}
}

func (c *Console) DrawBox(x, y, w, h int, border rune, color core.Color) {
	style := styleFor(color)
	r := core.NewRect(x, y, w, h)
	for bx := r.X; bx < r.Right(); bx++ {
		c.screen.SetContent(bx, r.Y, border, nil, style)
		c.screen.SetContent(bx, r.Bottom()-1, border, nil, style)
	}
	for by := r.Y + 1; by < r.Bottom()-1; by++ {
		c.screen.SetContent(r.X, by, border, nil, style)
		c.screen.SetContent(r.Right()-1, by, border, nil, style)
	}
}

// KeyPressed never blocks.
func (c *Console) KeyPressed() bool {
	if len(c.pending) > 0 {
		return true
	}
	select {
	case k := <-c.keys:
		c.pending = append(c.pending, k)
		return true
	default:
		return false
	}
}

func (c *Console) ReadKey() core.Key {
	if !c.KeyPressed() {
		return core.KeyOf(core.KeyNone)
	}
	k := c.pending[0]
	c.pending = c.pending[1:]
	return k
}

// Beep plays a tone when possible and rings the terminal bell otherwise.
func (c *Console) Beep(frequency int, duration time.Duration) {
	if c.sound != nil && c.sound.Tone(frequency, duration) {
		return
	}
	_ = c.screen.Beep()
}

func (c *Console) Sleep(d time.Duration) {
	time.Sleep(d)
}

func (c *Console) ShowCursor(x, y int) {
	c.screen.ShowCursor(x, y)
}

func (c *Console) HideCursor() {
	c.screen.HideCursor()
}

func (c *Console) Flush() {
	c.screen.Show()
}

// Close finalizes the screen and waits for the reader to exit.
func (c *Console) Close() {
	c.once.Do(func() {
		close(c.done)
		c.screen.Fini()
		c.wg.Wait()
	})
}

var _ core.Console = (*Console)(nil)
