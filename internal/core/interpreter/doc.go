// Package interpreter executes BPLS command lines against a set of symbol
// tables.
//
// A line goes through three steps:
//
//	Tokenize  shell-style split, quotes group words
//	Parse     verb and keyword positions select one Command variant
//	execute   the variant's handler checks preconditions, then mutates
//
// Handlers never leave the tables half-changed: every check happens before
// the first write. Failures are *domain.DomainError values; Execute renders
// them as "Error: ..." lines.
//
// File commands (SAVE, LOAD, MAKE, PUT, MOVE FILE) go through a files.Files
// collaborator, and CLEAR through a Screen. Both default to no-op or
// sandboxed implementations so an Interpreter is safe to use in tests.
package interpreter
