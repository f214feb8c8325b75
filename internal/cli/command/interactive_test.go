package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRepl_DefaultAction(t *testing.T) {
	home := isolate(t)

	res := runApp(t, "CREATE OBJ a\nRUN CODE\nEXIT\n")
	if res.err != nil {
		t.Fatalf("repl error = %v, stderr = %s", res.err, res.stderr)
	}
	for _, want := range []string{
		"BPLS v1.3 - Beginner's Programming Language for Statistics",
		"START: ",
		"Object 'a' created.\n",
		"Exiting BPLS interpreter.\n",
	} {
		if !contains(res.stdout, want) {
			t.Errorf("output missing %q:\n%s", want, res.stdout)
		}
	}

	history, err := os.ReadFile(filepath.Join(home, ".bpls", "history"))
	if err != nil {
		t.Fatalf("history not saved: %v", err)
	}
	if !strings.HasPrefix(string(history), "CREATE OBJ a\nRUN CODE\n") {
		t.Errorf("history = %q", history)
	}

	// The default workspace is resumed by the next session.
	res = runApp(t, "LOC a\nRUN CODE\nEXIT\n", "repl")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, "Object 'a' is not in any group.") {
		t.Errorf("workspace not resumed:\n%s", res.stdout)
	}
}

func TestRepl_NoAutosave(t *testing.T) {
	isolate(t)

	if res := runApp(t, "CREATE OBJ a\nRUN CODE\nEXIT\n", "repl", "--no-autosave"); res.err != nil {
		t.Fatal(res.err)
	}
	res := runApp(t, "LOC a\nRUN CODE\nEXIT\n", "repl")
	if !contains(res.stdout, "Error: Object 'a' not found.") {
		t.Errorf("state leaked without autosave:\n%s", res.stdout)
	}
}

func TestRepl_ImmediateWithoutWorkspace(t *testing.T) {
	home := isolate(t)

	res := runApp(t, "CREATE GROUP g\nLIST g\nQUIT\n", "repl", "--immediate", "--workspace", "")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, "Group 'g' created.\n") || !contains(res.stdout, "Group 'g' is empty.\n") {
		t.Errorf("immediate output:\n%s", res.stdout)
	}
	if _, err := os.Stat(filepath.Join(home, ".bpls", "workspace")); !os.IsNotExist(err) {
		t.Errorf("workspace store opened with an empty name: %v", err)
	}
}

func TestRepl_ConfigFile(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	cfg := writeFile(t, dir, "bpls.yaml", "prompt: \"stats> \"\nrepl:\n  mode: immediate\nworkspace:\n  name: \"\"\n")

	res := runApp(t, "CREATE OBJ a\nEXIT\n", "--config", cfg)
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, "stats> Object 'a' created.") {
		t.Errorf("config not applied:\n%s", res.stdout)
	}
}
