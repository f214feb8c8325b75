package command

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func contains(s, sub string) bool { return strings.Contains(s, sub) }

const numsScript = `# totals
CREATE GROUP nums
CREATE OBJ 3
CREATE OBJ x

CREATE OBJ 5
MOVE 3 TO nums
MOVE x TO nums
MOVE 5 TO nums
SUM nums
AVG nums
`

func TestRun_Script(t *testing.T) {
	isolate(t)
	script := writeFile(t, t.TempDir(), "nums.bpls", numsScript)

	res := runApp(t, "", "run", "--sandbox", script)
	if res.err != nil {
		t.Fatalf("run error = %v, stderr = %s", res.err, res.stderr)
	}

	want := strings.Join([]string{
		"Group 'nums' created.",
		"Object '3' created.",
		"Object 'x' created.",
		"Object '5' created.",
		"Object '3' moved to group 'nums'.",
		"Object 'x' moved to group 'nums'.",
		"Object '5' moved to group 'nums'.",
		"SUM of 'nums' = 8",
		"AVG of 'nums' = 4.0",
	}, "\n") + "\n"
	if res.stdout != want {
		t.Errorf("stdout =\n%s\nwant\n%s", res.stdout, want)
	}
}

func TestRun_Stdin(t *testing.T) {
	isolate(t)

	res := runApp(t, "CREATE OBJ a\r\nLOC a\n", "run", "--sandbox", "-")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.stdout != "Object 'a' created.\nObject 'a' is not in any group.\n" {
		t.Errorf("stdout = %q", res.stdout)
	}
}

func TestRun_Errors(t *testing.T) {
	isolate(t)
	script := "LOC ghost\nCREATE OBJ a\n"

	t.Run("continue", func(t *testing.T) {
		res := runApp(t, script, "run", "--sandbox", "-")
		if res.err != nil {
			t.Fatalf("run error = %v", res.err)
		}
		if res.stdout != "Error: Object 'ghost' not found.\nObject 'a' created.\n" {
			t.Errorf("stdout = %q", res.stdout)
		}
	})

	t.Run("fail fast", func(t *testing.T) {
		res := runApp(t, script, "run", "--sandbox", "--fail-fast", "-")
		if res.exitCode() != 1 {
			t.Fatalf("exit code = %d, err = %v", res.exitCode(), res.err)
		}
		if contains(res.stdout, "Object 'a' created.") {
			t.Error("command after the failure was executed")
		}
		if !contains(res.err.Error(), "line 1") {
			t.Errorf("error = %v, want line number", res.err)
		}
	})
}

func TestRun_MissingArgument(t *testing.T) {
	isolate(t)
	if res := runApp(t, "", "run"); res.exitCode() != 2 {
		t.Errorf("exit code = %d, want 2", res.exitCode())
	}
	if res := runApp(t, "", "run", filepath.Join(t.TempDir(), "missing.bpls")); res.err == nil {
		t.Error("missing script should fail")
	}
}

func TestRun_WorkdirAndInspect(t *testing.T) {
	isolate(t)
	work := t.TempDir()
	script := "CREATE GROUP g\nCREATE OBJ a\nMOVE a TO g\nVARIABLE v IS a\nSAVE CODE TO state.json\nPUT g IN members.txt\n"

	res := runApp(t, script, "--workdir", work, "run", "-")
	if res.err != nil {
		t.Fatal(res.err)
	}

	members, err := os.ReadFile(filepath.Join(work, "members.txt"))
	if err != nil || string(members) != "a\n" {
		t.Errorf("members.txt = %q, %v", members, err)
	}

	res = runApp(t, "", "--workdir", work, "inspect", "state.json")
	if res.err != nil {
		t.Fatalf("inspect error = %v", res.err)
	}
	for _, want := range []string{"KIND", "group     g     a", "object    a     g", "variable  v     a"} {
		if !contains(res.stdout, want) {
			t.Errorf("inspect table missing %q:\n%s", want, res.stdout)
		}
	}

	res = runApp(t, "", "--workdir", work, "inspect", "-o", "json", "state.json")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, `"consistent": true`) || !contains(res.stdout, `"format": "json"`) {
		t.Errorf("inspect json = %s", res.stdout)
	}
}

func TestRun_SandboxLeavesDiskAlone(t *testing.T) {
	isolate(t)
	work := t.TempDir()

	res := runApp(t, "MAKE FILE notes.txt\nMAKE FOLDER out\n", "--workdir", work, "run", "--sandbox", "-")
	if res.err != nil {
		t.Fatal(res.err)
	}
	entries, _ := os.ReadDir(work)
	if len(entries) != 0 {
		t.Errorf("sandbox run wrote %d entries to the workdir", len(entries))
	}
}

func TestRun_MetricsFile(t *testing.T) {
	isolate(t)
	metrics := filepath.Join(t.TempDir(), "bpls.prom")

	res := runApp(t, "CREATE OBJ a\nLOC nope\n", "run", "--sandbox", "--metrics-file", metrics, "-")
	if res.err != nil {
		t.Fatal(res.err)
	}

	data, err := os.ReadFile(metrics)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`bpls_interpreter_commands_total{outcome="ok",verb="CREATE OBJ"} 1`,
		`bpls_interpreter_commands_total{outcome="not_found",verb="LOC"} 1`,
		"bpls_tables_objects 1",
	} {
		if !contains(string(data), want) {
			t.Errorf("metrics file missing %q:\n%s", want, data)
		}
	}
}

func TestInspect_Inconsistent(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"objects": {"a": "g"}, "groups": {"g": []}, "variables": {}}`)

	res := runApp(t, "", "inspect", path)
	if res.exitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", res.exitCode())
	}
	if !contains(res.err.Error(), "inconsistent") {
		t.Errorf("error = %v", res.err)
	}
}

func TestInspect_YAML(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "state.yaml", "groups:\n  g: [a]\nobjects:\n  a: g\n")

	res := runApp(t, "", "inspect", "-o", "yaml", path)
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, "format: yaml") || !contains(res.stdout, "consistent: true") {
		t.Errorf("inspect yaml = %s", res.stdout)
	}
}
