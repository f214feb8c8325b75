// Package config provides the bpls CLI configuration.
//
//   - spec.go: CLIConfig struct (~/.bpls/config.yaml) and validation
//   - loader.go: layered loading (flags, BPLS_* env, file, defaults)
package config
