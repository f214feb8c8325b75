package metric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_ObserveCommand(t *testing.T) {
	r := NewRegistry()

	r.ObserveCommand("MOVE", OutcomeOK, time.Millisecond)
	r.ObserveCommand("MOVE", OutcomeOK, time.Millisecond)
	r.ObserveCommand("MOVE", "not_found", time.Millisecond)
	r.ObserveCommand("LIST", OutcomeOK, time.Millisecond)

	tests := []struct {
		verb, outcome string
		want          float64
	}{
		{"MOVE", OutcomeOK, 2},
		{"MOVE", "not_found", 1},
		{"LIST", OutcomeOK, 1},
		{"LIST", "not_found", 0},
	}
	for _, tt := range tests {
		got := testutil.ToFloat64(r.commandsTotal.WithLabelValues(tt.verb, tt.outcome))
		if got != tt.want {
			t.Errorf("commands_total{%s,%s} = %v, want %v", tt.verb, tt.outcome, got, tt.want)
		}
	}

	if n := testutil.CollectAndCount(r.commandDuration); n != 2 {
		t.Errorf("duration series = %d, want 2", n)
	}
}

func TestTableCollector(t *testing.T) {
	c := NewTableCollector(func() (int, int, int) { return 3, 1, 2 })

	want := `
# HELP bpls_tables_groups Number of defined groups
# TYPE bpls_tables_groups gauge
bpls_tables_groups 1
# HELP bpls_tables_objects Number of defined objects
# TYPE bpls_tables_objects gauge
bpls_tables_objects 3
# HELP bpls_tables_variables Number of defined variables
# TYPE bpls_tables_variables gauge
bpls_tables_variables 2
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(want)); err != nil {
		t.Error(err)
	}
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewTableCollector(func() (int, int, int) { return 0, 0, 0 }))
	r.ObserveCommand("SUM", OutcomeOK, time.Microsecond)

	path := filepath.Join(t.TempDir(), "bpls.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{
		`bpls_interpreter_commands_total{outcome="ok",verb="SUM"} 1`,
		"bpls_tables_objects 0",
	} {
		if !strings.Contains(string(data), name) {
			t.Errorf("textfile missing %q:\n%s", name, data)
		}
	}
}

func TestRegistry_WriteTextfileBadDir(t *testing.T) {
	r := NewRegistry()
	err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "bpls.prom"))
	if err == nil {
		t.Error("WriteTextfile() into missing dir should fail")
	}
}
