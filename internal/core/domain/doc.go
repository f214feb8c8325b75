// Package domain defines the core domain models for BPLS.
//
// Domain models are plain values without any IO dependencies.
// This package contains:
//
//   - Tables: the object, group and variable symbol tables
//   - Errors: coded domain errors and their user-facing rendering
//
// Every Tables mutator validates its preconditions before changing
// anything, so a failed command leaves the tables untouched.
package domain
