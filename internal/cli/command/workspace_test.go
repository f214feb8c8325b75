package command

import (
	"testing"
)

func TestWorkspace_Lifecycle(t *testing.T) {
	isolate(t)

	res := runApp(t, "", "workspace", "list")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.stdout != "No workspaces saved.\n" {
		t.Errorf("empty list = %q", res.stdout)
	}

	if res = runApp(t, "CREATE GROUP g\nCREATE OBJ a\nMOVE a TO g\n", "run", "--workspace", "demo", "-"); res.err != nil {
		t.Fatal(res.err)
	}

	res = runApp(t, "LOC a\n", "run", "--workspace", "demo", "-")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.stdout != "Object 'a' is located in group 'g' at ITEM 1.\n" {
		t.Errorf("resumed run = %q", res.stdout)
	}

	res = runApp(t, "", "workspace", "list")
	if res.err != nil || !contains(res.stdout, "demo") || !contains(res.stdout, "REVISION") {
		t.Errorf("list = %q, %v", res.stdout, res.err)
	}

	res = runApp(t, "", "ws", "show", "-o", "json", "demo")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, `"name": "demo"`) || !contains(res.stdout, `"a": "g"`) {
		t.Errorf("show json = %s", res.stdout)
	}

	res = runApp(t, "", "workspace", "delete", "demo")
	if res.err != nil || res.stdout != "Workspace 'demo' deleted.\n" {
		t.Errorf("delete = %q, %v", res.stdout, res.err)
	}

	if res = runApp(t, "", "workspace", "show", "demo"); res.err == nil {
		t.Error("show after delete should fail")
	}
	if res = runApp(t, "", "workspace", "show"); res.exitCode() != 2 {
		t.Errorf("show without NAME exit code = %d, want 2", res.exitCode())
	}
}

func TestWorkspace_ListJSONEmpty(t *testing.T) {
	isolate(t)

	res := runApp(t, "", "workspace", "list", "-o", "json")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if res.stdout != "[]\n" {
		t.Errorf("list json = %q, want []", res.stdout)
	}
}
