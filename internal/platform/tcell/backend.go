package tcell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// newScreen opens the real terminal.
var newScreen = tcell.NewScreen

func init() {
	registry.Register("tcell", "Direct cell drawing with tcell", New)
}

// Backend owns a tcell screen for the lifetime of a game.
type Backend struct {
	console *Console
}

// New initializes the terminal screen.
func New(opts registry.Options) (registry.Backend, error) {
	screen, err := newScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	b, err := newBackend(screen, opts)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func newBackend(screen tcell.Screen, opts registry.Options) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("tcell: cannot init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()

	if opts.Logger != nil {
		w, h := screen.Size()
		opts.Logger.Debug("tcell screen ready", "width", w, "height", h)
	}

	return &Backend{console: NewConsole(screen, opts.Sound)}, nil
}

func (b *Backend) Console() core.Console {
	return b.console
}

// Start runs the blocking game loop.
func (b *Backend) Start(r core.Runner) error {
	r.Run()
	return nil
}

// Close restores the terminal.
func (b *Backend) Close() error {
	b.console.Close()
	return nil
}
