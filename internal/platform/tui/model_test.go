package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeRunner echoes every key it reads onto the console and stops after a
// set number of iterations.
type fakeRunner struct {
	console  *Console
	limit    int
	iters    int
	interval time.Duration
	keys     []core.Key
}

func (r *fakeRunner) Run() {
	for !r.Done() {
		r.Iterate()
	}
}

func (r *fakeRunner) Iterate() {
	r.iters++
	if r.console.KeyPressed() {
		r.keys = append(r.keys, r.console.ReadKey())
	}
	r.console.DrawString(0, 0, "frame", core.ColorBrightYellow)
	r.console.Flush()
}

func (r *fakeRunner) Done() bool                  { return r.iters >= r.limit }
func (r *fakeRunner) PollInterval() time.Duration { return r.interval }

func newTestModel(limit int) (Model, *fakeRunner) {
	console := NewConsole(20, 3, nil)
	runner := &fakeRunner{console: console, limit: limit, interval: 10 * time.Millisecond}
	return NewModel(runner, console, nil), runner
}

func TestModelTickIteratesOnce(t *testing.T) {
	m, runner := newTestModel(3)

	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should schedule a tick")
	}

	updated, cmd := m.Update(TickMsg(time.Now()))
	if runner.iters != 1 {
		t.Errorf("iterations = %d, want 1", runner.iters)
	}
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if !strings.Contains(ansi.Strip(updated.View()), "frame") {
		t.Error("View() does not show the buffer")
	}
}

func TestModelKeysReachRunnerInOrder(t *testing.T) {
	var model tea.Model
	model, runner := newTestModel(10)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	for range 3 {
		model, _ = model.Update(TickMsg(time.Now()))
	}

	if len(runner.keys) != 2 {
		t.Fatalf("runner read %d keys, want 2", len(runner.keys))
	}
	if runner.keys[0].Code != core.KeyUp || !runner.keys[1].Is('p') {
		t.Errorf("keys = %v", runner.keys)
	}
}

func TestModelQuitsWhenRunnerDone(t *testing.T) {
	var model tea.Model
	model, _ = newTestModel(1)

	model, cmd := model.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command is not tea.Quit")
	}
	if model.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelInterruptIsForwarded(t *testing.T) {
	var model tea.Model
	model, runner := newTestModel(10)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd != nil {
		t.Error("ctrl+c is handled by the game, not the model")
	}
	model.Update(TickMsg(time.Now()))
	if len(runner.keys) != 1 || runner.keys[0].Code != core.KeyInterrupt {
		t.Errorf("keys = %v, want interrupt", runner.keys)
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(10)
	m.screenshotDir = filepath.Join(t.TempDir(), "shots")

	var model tea.Model = m
	model, _ = model.Update(TickMsg(time.Now()))
	model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	entries, err := os.ReadDir(m.screenshotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d screenshots, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(m.screenshotDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "frame") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestModelWindowSize(t *testing.T) {
	var model tea.Model
	model, _ = newTestModel(10)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m := model.(Model)
	if m.width != 100 || m.height != 30 || m.help.Width != 100 {
		t.Errorf("size = %dx%d help=%d", m.width, m.height, m.help.Width)
	}
}

func TestScreenSize(t *testing.T) {
	tests := []struct {
		w, h          int
		wantW, wantH int
	}{
		{40, 20, 80, 24},
		{70, 30, 98, 33},
	}
	for _, tt := range tests {
		w, h := ScreenSize(tt.w, tt.h)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("ScreenSize(%d, %d) = %d, %d, want %d, %d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
	}
}
