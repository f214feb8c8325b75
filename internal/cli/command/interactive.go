package command

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/cli/config"
	"github.com/yndnr/bpls-go/internal/cli/output"
	"github.com/yndnr/bpls-go/internal/cli/repl"
	"github.com/yndnr/bpls-go/internal/core/interpreter"
	"github.com/yndnr/bpls-go/internal/infra/confloader"
	"github.com/yndnr/bpls-go/internal/infra/shutdown"
	"github.com/yndnr/bpls-go/internal/storage/files"
	"github.com/yndnr/bpls-go/internal/storage/workspace"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
	"github.com/yndnr/bpls-go/internal/telemetry/metric"
)

// ReplCommand returns the repl command.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Start the interactive prompt (default)",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "immediate",
				Aliases: []string{"i"},
				Usage:   "Run each line as soon as it is entered instead of queueing it",
			},
			&cli.StringFlag{
				Name:    "workspace",
				Aliases: []string{"w"},
				Usage:   "Workspace to resume and save; empty disables persistence",
			},
			&cli.BoolFlag{
				Name:  "no-autosave",
				Usage: "Resume the workspace but do not save it on exit",
			},
		},
		Action: replAction,
	}
}

func replAction(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unknown command %q", c.Args().First())
	}

	cfg, log, err := setup(c)
	if err != nil {
		return err
	}

	ctx, stop := shutdown.WithSignals(c.Context)
	defer stop()
	ctx = logger.WithSessionID(ctx, logger.NewID())

	hooks := shutdown.NewHandler(shutdownTimeout)
	hooks.SetLogger(log)

	terminal := output.IsTerminal(c.App.Writer)
	reg := metric.NewRegistry()
	opts := []interpreter.Option{
		interpreter.WithFiles(files.NewLocal(cfg.Workdir)),
		interpreter.WithMetrics(reg),
		interpreter.WithLogger(log),
	}
	if terminal {
		opts = append(opts, interpreter.WithScreen(output.NewTerminal(c.App.Writer)))
	}
	in := interpreter.New(opts...)
	reg.MustRegister(metric.NewTableCollector(in.Counts))
	if path := cfg.Metrics.Textfile; path != "" {
		hooks.OnClose("metrics textfile", func() error { return reg.WriteTextfile(path) })
	}

	if cfg.Workspace.Name != "" {
		resumeWorkspace(ctx, cfg, in, hooks, log)
	}

	history := repl.NewHistory(cfg.History.File, cfg.History.Size)
	if err := history.Load(); err != nil {
		log.Warn("history not loaded", "file", cfg.History.File, "error", err)
	}
	hooks.OnClose("history", history.Save)

	watchConfig(c, hooks, log)

	if terminal {
		_ = output.NewTerminal(c.App.Writer).Clear()
	}

	r := repl.New(in,
		repl.WithIO(c.App.Reader, c.App.Writer),
		repl.WithPrompt(cfg.Prompt),
		repl.WithImmediate(cfg.REPL.Mode == config.ModeImmediate),
		repl.WithHistory(history),
		repl.WithStyler(output.NewStyler(c.App.Writer)),
		repl.WithLogger(log),
	)
	runErr := r.Run(ctx)
	return errors.Join(runErr, hooks.Run())
}

// resumeWorkspace restores the named workspace into in and, when autosave is
// on, registers a hook that saves it back. A workspace that cannot be read is
// left untouched on disk.
func resumeWorkspace(ctx context.Context, cfg *config.CLIConfig, in *interpreter.Interpreter, hooks *shutdown.Handler, log logger.Logger) {
	store, err := workspace.Open(workspace.Options{Dir: cfg.Workspace.Dir}, log)
	if err != nil {
		log.Warn("workspace unavailable, continuing without it", "dir", cfg.Workspace.Dir, "error", err)
		return
	}
	hooks.OnClose("workspace store", store.Close)

	name := cfg.Workspace.Name
	rec, err := store.Get(ctx, name)
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		log.Debug("starting new workspace", "name", name)
	case err != nil:
		log.Warn("workspace not restored", "name", name, "error", err)
		return
	default:
		if err := in.Restore(rec.Snapshot); err != nil {
			log.Warn("workspace not restored", "name", name, "error", err)
			return
		}
		log.Info("workspace restored", "name", name, "revision", rec.Revision)
	}

	if cfg.Workspace.Autosave {
		hooks.OnShutdown("workspace autosave", func(ctx context.Context) error {
			_, err := store.Put(ctx, name, in.Snapshot())
			return err
		})
	}
}

// watchConfig reloads the configuration file on change and applies its log
// level. Flags given on the command line keep winning.
func watchConfig(c *cli.Context, hooks *shutdown.Handler, log logger.Logger) {
	path := c.String("config")
	if path == "" {
		path = config.DefaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			return
		}
	}

	w, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		log.Warn("config watcher unavailable", "error", err)
		return
	}
	if err := w.Watch(path); err != nil {
		log.Warn("config watcher unavailable", "file", path, "error", err)
		_ = w.Stop()
		return
	}

	overrides := configOverrides(c)
	w.OnChange(func(changed string) {
		cfg, err := config.Load(path, overrides)
		if err != nil {
			log.Warn("config reload failed", "file", changed, "error", err)
			return
		}
		logger.SetLevel(cfg.Log.Level)
		log.Info("config reloaded", "file", changed, "log_level", cfg.Log.Level)
	})
	w.StartAsync()
	hooks.OnClose("config watcher", w.Stop)
}
