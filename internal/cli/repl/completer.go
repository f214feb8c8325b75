package repl

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/yndnr/bpls-go/internal/core/interpreter"
)

// maxHintDistance bounds the edit distance of a "did you mean" suggestion.
const maxHintDistance = 2

// Completer suggests corrections for lines the interpreter rejected.
type Completer struct {
	verbs []string
	usage []string
}

// NewCompleter creates a Completer over the interpreter grammar plus the
// REPL's own keywords.
func NewCompleter() *Completer {
	return &Completer{
		verbs: append(interpreter.Verbs(), "RUN", "HELP", "EXIT", "QUIT"),
		usage: interpreter.Usage(),
	}
}

// Complete returns the verbs starting with prefix, ignoring case.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.ToUpper(prefix)
	var out []string
	for _, v := range c.verbs {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}

// Hint explains a rejected line. A known verb gets its accepted shapes; an
// unknown one gets the closest verb, if any is near enough.
func (c *Completer) Hint(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	verb := strings.ToUpper(fields[0])

	var shapes []string
	for _, u := range c.usage {
		if u == verb || strings.HasPrefix(u, verb+" ") {
			shapes = append(shapes, u)
		}
	}
	if len(shapes) > 0 {
		return "Usage: " + strings.Join(shapes, " | ")
	}

	best, bestDist := "", maxHintDistance+1
	for _, v := range c.verbs {
		if d := levenshtein.ComputeDistance(verb, v); d < bestDist {
			best, bestDist = v, d
		}
	}
	if best == "" {
		return ""
	}
	return "Did you mean " + best + "?"
}
