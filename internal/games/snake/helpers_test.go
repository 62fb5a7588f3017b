package snake

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/highscore"
)

type beepCall struct {
	freq int
	dur  time.Duration
}

// fakeConsole records drawing into a core.Screen and replays scripted keys.
type fakeConsole struct {
	screen  *core.Screen
	keys    []core.Key
	beeps   []beepCall
	sleeps  []time.Duration
	clears  int
	flushes int
	cursor  bool
}

func newFakeConsole() *fakeConsole {
	return &fakeConsole{screen: core.NewScreen(80, 24)}
}

func (c *fakeConsole) Clear() {
	c.screen.Clear()
	c.clears++
}

func (c *fakeConsole) DrawChar(x, y int, ch rune, color core.Color) {
	c.screen.SetColored(x, y, ch, color)
}

func (c *fakeConsole) DrawString(x, y int, s string, color core.Color) {
	c.screen.DrawTextColored(x, y, s, color)
}

func (c *fakeConsole) DrawBox(x, y, w, h int, border rune, color core.Color) {
	c.screen.DrawBox(core.NewRect(x, y, w, h), border, color)
}

func (c *fakeConsole) KeyPressed() bool {
	return len(c.keys) > 0
}

func (c *fakeConsole) ReadKey() core.Key {
	if len(c.keys) == 0 {
		return core.Key{}
	}
	k := c.keys[0]
	c.keys = c.keys[1:]
	return k
}

func (c *fakeConsole) Beep(frequency int, duration time.Duration) {
	c.beeps = append(c.beeps, beepCall{freq: frequency, dur: duration})
}

func (c *fakeConsole) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeConsole) ShowCursor(x, y int) { c.cursor = true }
func (c *fakeConsole) HideCursor()         { c.cursor = false }
func (c *fakeConsole) Flush()              { c.flushes++ }

func (c *fakeConsole) press(keys ...core.Key) {
	c.keys = append(c.keys, keys...)
}

func (c *fakeConsole) typeText(s string) {
	for _, r := range s {
		c.press(core.RuneKey(r))
	}
}

func (c *fakeConsole) shows(text string) bool {
	return strings.Contains(c.screen.String(), text)
}

// memStore is an in-memory highscore.Store with injectable failures.
type memStore struct {
	records   []highscore.Record
	loadErr   error
	appendErr error
}

func (s *memStore) Load() ([]highscore.Record, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	out := append([]highscore.Record(nil), s.records...)
	highscore.Sort(out)
	return out, nil
}

func (s *memStore) Append(r highscore.Record) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.records = append(s.records, r)
	return nil
}

var errDiskFull = errors.New("disk full")

var testNow = time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, store highscore.Store, mutate func(*config.Config)) (*Game, *fakeConsole) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}
	console := newFakeConsole()
	g, err := New(Options{
		Config:  cfg,
		Console: console,
		Scores:  store,
		Seed:    42,
		Now:     func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g, console
}

// startPlaying opens the menu, starts a game and removes the food so that
// random placement cannot interfere with scripted movement.
func startPlaying(t *testing.T, g *Game, console *fakeConsole) {
	t.Helper()
	g.Iterate()
	console.press(core.RuneKey('1'))
	g.Iterate()
	if g.State() != StatePlaying {
		t.Fatalf("expected playing after '1', got %s", g.State())
	}
	g.food.Reset()
}

// step iterates until exactly one tick has been processed.
func step(t *testing.T, g *Game) {
	t.Helper()
	start := g.tick
	for range g.frameDelay {
		g.Iterate()
		if g.tick != start || g.state != StatePlaying {
			return
		}
	}
	t.Fatalf("no tick after %d iterations", g.frameDelay)
}
