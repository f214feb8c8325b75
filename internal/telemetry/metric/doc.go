// Package metric provides Prometheus metrics for BPLS.
//
//   - prometheus.go: command counters and latency histogram on a private registry
//   - collector.go: table size gauges read from a live interpreter
//
// There is no HTTP endpoint. `bpls run --metrics-file` writes the registry in
// the node_exporter textfile format when the script finishes.
package metric
