// Package buildinfo reports the bpls binary version.
//
// Values are injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/bpls-go/internal/infra/buildinfo.Version=v1.3.0"
//
// When they are not set, Get falls back to the module information embedded by
// the Go toolchain.
package buildinfo
