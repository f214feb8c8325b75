package repl

import (
	"slices"
	"testing"
)

func TestCompleter_Hint(t *testing.T) {
	c := NewCompleter()

	tests := []struct {
		line string
		want string
	}{
		{"SWPA a WITH b IN g", "Did you mean SWAP?"},
		{"lsit nums", "Did you mean LIST?"},
		{"mvoe a TO g", "Did you mean MOVE?"},
		{"FIND x", "Usage: FIND ITEM n OF group | FIND OBJ object FROM group"},
		{"xyzzyplugh", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := c.Hint(tt.line); got != tt.want {
				t.Errorf("Hint(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter()

	got := c.Complete("mo")
	if !slices.Equal(got, []string{"MOVE"}) {
		t.Errorf("Complete(mo) = %v", got)
	}
	if got := c.Complete("E"); !slices.Contains(got, "EXIT") {
		t.Errorf("Complete(E) = %v, want EXIT included", got)
	}
	if got := c.Complete("zzz"); len(got) != 0 {
		t.Errorf("Complete(zzz) = %v, want none", got)
	}
}
