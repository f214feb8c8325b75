package output

import (
	"io"
	"os"
)

// clearSequence moves the cursor home and erases the display.
const clearSequence = "\033[H\033[2J"

// Terminal clears a terminal by writing ANSI escape sequences.
type Terminal struct {
	w io.Writer
}

// NewTerminal returns a Terminal writing to w, or to stdout when w is nil.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stdout
	}
	return &Terminal{w: w}
}

// Clear implements interpreter.Screen.
func (t *Terminal) Clear() error {
	_, err := io.WriteString(t.w, clearSequence)
	return err
}
