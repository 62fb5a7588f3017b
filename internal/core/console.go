package core

import "time"

// Console is the capability set the game needs from a terminal backend.
// Coordinates are zero-based cells from the top-left corner. Implementations
// decide how drawing reaches the terminal; the game calls Flush once a frame
// is complete.
type Console interface {
	// Clear blanks the whole screen.
	Clear()

	// DrawChar draws a single character at (x, y).
	DrawChar(x, y int, ch rune, color Color)

	// DrawString draws text starting at (x, y). Text is clipped at the screen edge.
	DrawString(x, y int, s string, color Color)

	// DrawBox draws the outline of a w*h rectangle whose top-left corner is (x, y).
	DrawBox(x, y, w, h int, border rune, color Color)

	// KeyPressed reports whether a key event is pending. It never blocks.
	KeyPressed() bool

	// ReadKey returns the next pending key, or a KeyNone key if there is none.
	ReadKey() Key

	// Beep plays a short cue. Backends without sound may flash instead.
	Beep(frequency int, duration time.Duration)

	// Sleep pauses the caller for d.
	Sleep(d time.Duration)

	// ShowCursor places a visible text cursor at (x, y).
	ShowCursor(x, y int)

	// HideCursor hides the text cursor.
	HideCursor()

	// Flush presents everything drawn since the last Flush.
	Flush()
}

// Runner is a game loop a backend can drive either by calling Run, which blocks
// until the game exits, or by calling Iterate once per PollInterval from its
// own event loop.
type Runner interface {
	Run()
	Iterate()
	Done() bool
	PollInterval() time.Duration
}
