// Package confloader loads layered configuration with koanf.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (LoadMap / WithFlags)
//  2. Environment variables (BPLS_LOG_LEVEL -> log.level)
//  3. The YAML configuration file
//  4. Values already present in the target struct
//
// Watcher reports writes to a configuration file so callers can re-read it.
package confloader
