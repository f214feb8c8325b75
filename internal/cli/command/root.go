package command

import (
	"io"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/bpls-go/internal/cli/config"
	"github.com/yndnr/bpls-go/internal/cli/output"
	"github.com/yndnr/bpls-go/internal/infra/buildinfo"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

// shutdownTimeout bounds the cleanup hooks run when a command ends.
const shutdownTimeout = 10 * time.Second

// App creates the CLI application. Without a subcommand it starts the REPL.
func App() *cli.App {
	return &cli.App{
		Name:    "bpls",
		Usage:   "Beginner's Programming Language for Statistics interpreter",
		Version: buildinfo.Version,
		Flags:   globalFlags(),
		Action:  replAction,
		Commands: []*cli.Command{
			ReplCommand(),
			RunCommand(),
			InspectCommand(),
			WorkspaceCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file (default ~/.bpls/config.yaml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
		&cli.StringFlag{
			Name:    "workdir",
			Aliases: []string{"C"},
			Usage:   "Directory that relative file paths in commands resolve against",
		},
	}
}

// outputFlag is shared by the commands that print structured data.
func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output format: table, json, yaml",
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	Config    string
	LogLevel  string
	LogFormat string
	Workdir   string
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:    c.String("config"),
		LogLevel:  c.String("log-level"),
		LogFormat: c.String("log-format"),
		Workdir:   c.String("workdir"),
	}
}

// flagKeys maps string flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"workdir":      "workdir",
	"output":       "output",
	"workspace":    "workspace.name",
	"metrics-file": "metrics.textfile",
}

// configOverrides collects the flags the user actually set, keyed by
// configuration path, so they win over file and environment values.
func configOverrides(c *cli.Context) map[string]any {
	m := make(map[string]any)
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			m[key] = c.String(flag)
		}
	}
	if c.IsSet("immediate") && c.Bool("immediate") {
		m["repl.mode"] = config.ModeImmediate
	}
	if c.IsSet("no-autosave") && c.Bool("no-autosave") {
		m["workspace.autosave"] = false
	}
	return m
}

// loadConfig builds the effective configuration for c.
func loadConfig(c *cli.Context) (*config.CLIConfig, error) {
	return config.Load(c.String("config"), configOverrides(c))
}

// newLogger creates the process logger from cfg and makes it the default.
func newLogger(cfg *config.CLIConfig, w io.Writer) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: w,
	})
	if err != nil {
		return nil, err
	}
	logger.SetDefault(log)
	return log, nil
}

// setup loads the configuration and logger every command starts from.
func setup(c *cli.Context) (*config.CLIConfig, logger.Logger, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, nil, err
	}
	log, err := newLogger(cfg, c.App.ErrWriter)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}

// render writes data in the configured output format.
func render(c *cli.Context, cfg *config.CLIConfig, data any) error {
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}
	return output.NewFormatter(format).Format(c.App.Writer, data)
}
