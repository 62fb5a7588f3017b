package core

// KeyCode is the backend-independent input alphabet consumed by the game.
// Backends translate their native key events into these codes; printable
// characters (including the menu digits) arrive as KeyRune.
type KeyCode int

const (
	KeyNone      KeyCode = iota
	KeyUp                // Up arrow
	KeyDown              // Down arrow
	KeyLeft              // Left arrow
	KeyRight             // Right arrow
	KeySpace             // Space - pause/resume
	KeyEnter             // Enter - confirm
	KeyEscape            // Escape - quit/back
	KeyBackspace         // Backspace - delete in name entry
	KeyRune              // Any other printable character, see Key.Rune
	KeyInterrupt         // Ctrl+C - leave the program from any state
)

// String returns a human-readable name for the key code.
func (k KeyCode) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeyRune:
		return "Rune"
	case KeyInterrupt:
		return "Interrupt"
	default:
		return "Unknown"
	}
}

// Key is a single input event.
type Key struct {
	Code KeyCode
	Rune rune // Set only when Code == KeyRune
}

// KeyOf returns a Key for a non-rune key code.
func KeyOf(code KeyCode) Key {
	return Key{Code: code}
}

// RuneKey returns a Key for a printable character.
func RuneKey(r rune) Key {
	if r == ' ' {
		return Key{Code: KeySpace}
	}
	return Key{Code: KeyRune, Rune: r}
}

// Is reports whether k is the printable character r.
func (k Key) Is(r rune) bool {
	return k.Code == KeyRune && k.Rune == r
}

func (k Key) String() string {
	if k.Code == KeyRune {
		return string(k.Rune)
	}
	return k.Code.String()
}
