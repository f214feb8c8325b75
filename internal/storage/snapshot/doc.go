// Package snapshot provides the snapshot codec for BPLS.
//
// A snapshot is the full content of the interpreter's symbol tables:
//
//	{
//	  "objects":   {"a": "nums", "b": ""},
//	  "groups":    {"nums": ["a"]},
//	  "variables": {"v": "a"}
//	}
//
// SAVE CODE TO writes this document and LOAD reads it back. JSON is the
// default; files ending in .yaml or .yml use the YAML codec. Missing
// top-level fields load as empty tables. There is no version header.
package snapshot
