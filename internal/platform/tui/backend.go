package tui

import (
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Minimum terminal size the game layout fits in.
const (
	MinWidth  = 80
	MinHeight = 24
)

// helpLines is the space reserved below the board for the help footer.
const helpLines = 1

// ErrNotTerminal is returned when stdout is not attached to a terminal.
var ErrNotTerminal = errors.New("tui: stdout is not a terminal")

func init() {
	registry.Register("tea", "Bubble Tea renderer with lipgloss colors (default)", New)
}

// Backend runs the game inside a Bubble Tea program.
type Backend struct {
	console *Console
	logger  *log.Logger
}

// New creates the Bubble Tea backend. It fails when stdout is not a terminal.
func New(opts registry.Options) (registry.Backend, error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if w, h, err := term.GetSize(fd); err == nil && (w < MinWidth || h < MinHeight+helpLines) {
		logger.Warn("terminal smaller than layout", "width", w, "height", h,
			"want_width", MinWidth, "want_height", MinHeight+helpLines)
	}

	width, height := ScreenSize(opts.Config.Board.Width, opts.Config.Board.Height)
	return &Backend{
		console: NewConsole(width, height, opts.Sound),
		logger:  logger,
	}, nil
}

// ScreenSize returns the buffer size for a board of w*h playable cells:
// the bordered board, the side panel, and at least the minimum layout.
func ScreenSize(w, h int) (int, int) {
	return max(MinWidth, w+2+2+panelWidth), max(MinHeight, h+2+1)
}

// panelWidth is the widest side panel line.
const panelWidth = 24

func (b *Backend) Console() core.Console {
	return b.console
}

// Start runs the program until the runner is done or the user interrupts it.
func (b *Backend) Start(r core.Runner) error {
	model := NewModel(r, b.console, b.logger)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Close is a no-op: Bubble Tea restores the terminal when the program ends.
func (b *Backend) Close() error {
	return nil
}
