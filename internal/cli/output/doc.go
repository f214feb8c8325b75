// Package output renders CLI results and terminal decorations.
//
//   - formatter.go, json.go, yaml.go, table.go: -o table|json|yaml
//   - style.go: lipgloss colors, enabled only when writing to a terminal
//   - screen.go: the terminal implementation of the CLEAR command
package output
