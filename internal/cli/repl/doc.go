// Package repl provides the interactive BPLS prompt.
//
//   - repl.go: read loop, command queue, RUN CODE timing
//   - completer.go: "did you mean" hints for mistyped verbs
//   - history.go: line history persisted to a file
//
// By default lines are queued and run together by RUN CODE, printing the
// wall-clock START and END times and the DURATION. In immediate mode each
// line runs as soon as it is entered. EXIT, QUIT, end of input or an
// interrupt leave the loop.
package repl
