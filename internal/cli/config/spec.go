package config

import (
	"errors"
	"fmt"

	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

// REPL modes.
const (
	ModeQueue     = "queue"
	ModeImmediate = "immediate"
)

// CLIConfig is the configuration for the bpls binary.
type CLIConfig struct {
	Prompt  string `koanf:"prompt" yaml:"prompt" json:"prompt"`
	Workdir string `koanf:"workdir" yaml:"workdir" json:"workdir"`
	Output  string `koanf:"output" yaml:"output" json:"output"` // table, json, yaml

	Log       LogConfig       `koanf:"log" yaml:"log" json:"log"`
	History   HistoryConfig   `koanf:"history" yaml:"history" json:"history"`
	REPL      REPLConfig      `koanf:"repl" yaml:"repl" json:"repl"`
	Workspace WorkspaceConfig `koanf:"workspace" yaml:"workspace" json:"workspace"`
	Metrics   MetricsConfig   `koanf:"metrics" yaml:"metrics" json:"metrics"`
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level" yaml:"level" json:"level"`
	Format string `koanf:"format" yaml:"format" json:"format"`
}

// HistoryConfig configures REPL line history.
type HistoryConfig struct {
	File string `koanf:"file" yaml:"file" json:"file"`
	Size int    `koanf:"size" yaml:"size" json:"size"`
}

// REPLConfig configures the interactive loop.
type REPLConfig struct {
	Mode string `koanf:"mode" yaml:"mode" json:"mode"` // queue, immediate
}

// WorkspaceConfig configures the persistent workspace store.
type WorkspaceConfig struct {
	Dir      string `koanf:"dir" yaml:"dir" json:"dir"`
	Name     string `koanf:"name" yaml:"name" json:"name"` // empty disables persistence
	Autosave bool   `koanf:"autosave" yaml:"autosave" json:"autosave"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `koanf:"textfile" yaml:"textfile" json:"textfile"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Prompt:  "BPLS> ",
		Workdir: ".",
		Output:  "table",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		History: HistoryConfig{
			File: "~/.bpls/history",
			Size: 1000,
		},
		REPL: REPLConfig{Mode: ModeQueue},
		Workspace: WorkspaceConfig{
			Dir:      "~/.bpls/workspace",
			Name:     "default",
			Autosave: true,
		},
	}
}

// Verify checks enumerated values and limits.
func Verify(cfg *CLIConfig) error {
	var errs []error

	if !logger.ValidLevel(cfg.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level: unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format: must be text or json, got %q", cfg.Log.Format))
	}
	switch cfg.Output {
	case "table", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output: must be table, json or yaml, got %q", cfg.Output))
	}
	switch cfg.REPL.Mode {
	case ModeQueue, ModeImmediate:
	default:
		errs = append(errs, fmt.Errorf("repl.mode: must be queue or immediate, got %q", cfg.REPL.Mode))
	}
	if cfg.History.Size < 0 {
		errs = append(errs, fmt.Errorf("history.size: must not be negative"))
	}
	if cfg.Workspace.Name != "" && cfg.Workspace.Dir == "" {
		errs = append(errs, fmt.Errorf("workspace.dir: required when workspace.name is set"))
	}

	return errors.Join(errs...)
}
