package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styler colors REPL text. A disabled Styler returns text unchanged.
type Styler struct {
	enabled bool
	err     lipgloss.Style
	hint    lipgloss.Style
	title   lipgloss.Style
	dim     lipgloss.Style
}

// NewStyler enables colors when w is a terminal and NO_COLOR is unset.
func NewStyler(w io.Writer) *Styler {
	_, noColor := os.LookupEnv("NO_COLOR")
	return newStyler(IsTerminal(w) && !noColor)
}

// Plain returns a Styler that never adds escape sequences.
func Plain() *Styler {
	return newStyler(false)
}

func newStyler(enabled bool) *Styler {
	return &Styler{
		enabled: enabled,
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		title:   lipgloss.NewStyle().Bold(true),
		dim:     lipgloss.NewStyle().Faint(true),
	}
}

// Enabled reports whether colors are on.
func (s *Styler) Enabled() bool { return s.enabled }

// Error styles an "Error: ..." line.
func (s *Styler) Error(text string) string { return s.render(s.err, text) }

// Hint styles a suggestion.
func (s *Styler) Hint(text string) string { return s.render(s.hint, text) }

// Title styles the banner.
func (s *Styler) Title(text string) string { return s.render(s.title, text) }

// Dim styles timing lines.
func (s *Styler) Dim(text string) string { return s.render(s.dim, text) }

func (s *Styler) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}
