// Package command provides the bpls command tree.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, config and logger setup
//   - interactive.go: repl (also the default action)
//   - run.go: run a script file or stdin
//   - inspect.go: decode and check a saved snapshot
//   - workspace.go: list, show and delete stored workspaces
//   - config.go: show and validate the effective configuration
//   - version.go: build information
//
// Commands follow a consistent pattern of loading the configuration,
// building the interpreter with its collaborators, and formatting output.
package command
