package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/cli/output"
	"github.com/yndnr/bpls-go/internal/core/domain"
	"github.com/yndnr/bpls-go/internal/core/interpreter"
	"github.com/yndnr/bpls-go/internal/infra/shutdown"
	"github.com/yndnr/bpls-go/internal/storage/files"
	"github.com/yndnr/bpls-go/internal/storage/workspace"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
	"github.com/yndnr/bpls-go/internal/telemetry/metric"
)

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Execute a BPLS script, one command per line",
		ArgsUsage: "SCRIPT|-",
		Description: "Blank lines and lines starting with # are skipped. Each result is printed\n" +
			"as it would be in the REPL. Failures are printed and execution continues\n" +
			"unless --fail-fast is given.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "sandbox",
				Usage: "Keep files and the workspace in memory; nothing touches the disk",
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "Stop at the first failing command and exit with status 1",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "Write Prometheus metrics in text format to this file when done",
			},
			&cli.StringFlag{
				Name:    "workspace",
				Aliases: []string{"w"},
				Usage:   "Resume this workspace before the script and save it afterwards",
			},
		},
		Action: runAction,
	}
}

// scriptResult counts executed and failed commands.
type scriptResult struct {
	Executed int
	Failed   int
}

func runAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("run: expected one SCRIPT argument (use - for stdin)", 2)
	}

	cfg, log, err := setup(c)
	if err != nil {
		return err
	}

	script, err := readScript(c.App.Reader, c.Args().First())
	if err != nil {
		return err
	}

	ctx, stop := shutdown.WithSignals(c.Context)
	defer stop()
	ctx = logger.WithSessionID(ctx, logger.NewID())

	sandbox := c.Bool("sandbox")
	var fs files.Files = files.NewLocal(cfg.Workdir)
	if sandbox {
		fs = files.NewMemory()
	}

	reg := metric.NewRegistry()
	opts := []interpreter.Option{
		interpreter.WithFiles(fs),
		interpreter.WithMetrics(reg),
		interpreter.WithLogger(log),
	}
	if output.IsTerminal(c.App.Writer) {
		opts = append(opts, interpreter.WithScreen(output.NewTerminal(c.App.Writer)))
	}
	in := interpreter.New(opts...)
	reg.MustRegister(metric.NewTableCollector(in.Counts))

	hooks := shutdown.NewHandler(shutdownTimeout)
	hooks.SetLogger(log)
	if path := cfg.Metrics.Textfile; path != "" {
		hooks.OnClose("metrics textfile", func() error { return reg.WriteTextfile(path) })
	}

	if name := c.String("workspace"); name != "" {
		store, err := workspace.Open(workspace.Options{Dir: cfg.Workspace.Dir, InMemory: sandbox}, log)
		if err != nil {
			return err
		}
		hooks.OnClose("workspace store", store.Close)

		if err := restoreWorkspace(ctx, store, name, in); err != nil {
			return errors.Join(err, hooks.Run())
		}
		hooks.OnShutdown("workspace save", func(ctx context.Context) error {
			_, err := store.Put(ctx, name, in.Snapshot())
			return err
		})
	}

	res, runErr := executeScript(ctx, in, script, c.App.Writer, c.Bool("fail-fast"))
	log.Info("script finished", "script", c.Args().First(), "executed", res.Executed, "failed", res.Failed)

	hookErr := hooks.Run()
	if runErr != nil {
		return runErr
	}
	return hookErr
}

func readScript(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read script: %w", err)
	}
	return string(data), nil
}

func restoreWorkspace(ctx context.Context, store *workspace.Store, name string, in *interpreter.Interpreter) error {
	rec, err := store.Get(ctx, name)
	if errors.Is(err, workspace.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := in.Restore(rec.Snapshot); err != nil {
		return fmt.Errorf("workspace %q: %w", name, err)
	}
	return nil
}

// executeScript runs every command line of script, writing results to w.
func executeScript(ctx context.Context, in *interpreter.Interpreter, script string, w io.Writer, failFast bool) (scriptResult, error) {
	var res scriptResult
	for i, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Executed++
		msg, err := in.Exec(ctx, line)
		if err != nil {
			res.Failed++
			fmt.Fprintln(w, domain.Describe(err))
			if failFast {
				return res, cli.Exit(fmt.Sprintf("stopped at line %d", i+1), 1)
			}
			continue
		}
		if msg != "" {
			fmt.Fprintln(w, msg)
		}
	}
	return res, nil
}
