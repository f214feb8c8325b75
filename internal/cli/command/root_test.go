package command

import (
	"flag"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestApp(t *testing.T) {
	app := App()
	if app.Name != "bpls" {
		t.Errorf("Name = %q, want %q", app.Name, "bpls")
	}
	if app.Action == nil {
		t.Error("App should default to the REPL action")
	}

	commandNames := make(map[string]bool)
	for _, cmd := range app.Commands {
		commandNames[cmd.Name] = true
	}
	for _, name := range []string{"repl", "run", "inspect", "workspace", "config", "version"} {
		if !commandNames[name] {
			t.Errorf("missing required command: %s", name)
		}
	}
}

func TestApp_GlobalFlags(t *testing.T) {
	flagNames := make(map[string]bool)
	for _, f := range App().Flags {
		flagNames[f.Names()[0]] = true
	}
	for _, name := range []string{"config", "log-level", "log-format", "workdir"} {
		if !flagNames[name] {
			t.Errorf("missing required flag: %s", name)
		}
	}
}

func TestParseGlobalFlags(t *testing.T) {
	app := &cli.App{Name: "test", Flags: globalFlags()}
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range app.Flags {
		if err := f.Apply(set); err != nil {
			t.Fatal(err)
		}
	}
	if err := set.Parse([]string{"--log-level", "debug", "--workdir", "/tmp/work"}); err != nil {
		t.Fatal(err)
	}
	c := cli.NewContext(app, set, nil)

	flags := ParseGlobalFlags(c)
	if flags.LogLevel != "debug" || flags.Workdir != "/tmp/work" {
		t.Errorf("ParseGlobalFlags() = %+v", flags)
	}

	overrides := configOverrides(c)
	if overrides["log.level"] != "debug" || overrides["workdir"] != "/tmp/work" {
		t.Errorf("configOverrides() = %v", overrides)
	}
	if _, ok := overrides["log.format"]; ok {
		t.Error("unset flag should not override configuration")
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	isolate(t)
	if res := runApp(t, "", "frobnicate"); res.err == nil {
		t.Error("unknown command should fail")
	}
}

func TestVersion(t *testing.T) {
	isolate(t)

	res := runApp(t, "", "version")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if want := "BPLS v1.3"; !contains(res.stdout, want) {
		t.Errorf("version output = %q, want it to contain %q", res.stdout, want)
	}

	res = runApp(t, "", "version", "-o", "json")
	if res.err != nil {
		t.Fatal(res.err)
	}
	if !contains(res.stdout, `"language": "1.3"`) {
		t.Errorf("json version output = %q", res.stdout)
	}
}
