package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yndnr/bpls-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".bpls", "config.yaml")
}

// Load builds the effective configuration. An explicit path must exist; the
// default path may be missing. flags holds dotted keys set on the command
// line and wins over everything else.
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	fileOpt := confloader.WithConfigFile(path)
	if path == "" {
		fileOpt = confloader.WithOptionalConfigFile(DefaultConfigPath())
	}

	cfg := Default()
	loader := confloader.NewLoader(fileOpt, confloader.WithFlags(flags))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	cfg.History.File = ExpandHome(cfg.History.File)
	cfg.Workspace.Dir = ExpandHome(cfg.Workspace.Dir)

	if err := Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
