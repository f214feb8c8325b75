package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

// result captures one App run.
type result struct {
	stdout string
	stderr string
	err    error
}

// exitCode returns the status an ExitCoder error asks for, 1 for other
// errors and 0 for success.
func (r result) exitCode() int {
	if r.err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(r.err, &ec) {
		return ec.ExitCode()
	}
	return 1
}

// isolate points HOME at a fresh directory so the default config file,
// history and workspace store live under the test's temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// runApp runs the CLI with args and stdin, capturing its output.
func runApp(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	app := App()
	var out, errOut bytes.Buffer
	app.Reader = strings.NewReader(stdin)
	app.Writer = &out
	app.ErrWriter = &errOut
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"bpls"}, args...))
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

// writeFile creates dir/name with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
