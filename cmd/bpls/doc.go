// Package main provides the entry point for bpls.
//
// bpls interprets BPLS, a small line-oriented language for naming objects,
// collecting them in ordered groups and computing sums and averages:
//
//	bpls                         # interactive prompt, queue then RUN CODE
//	bpls repl --immediate        # run each line as it is typed
//	bpls run script.bpls         # run a script file
//	bpls inspect state.json      # check a file written by SAVE CODE TO
//	bpls workspace list          # sessions saved by the prompt
package main
