// Package domain defines the core domain models for BPLS.
package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a DomainError into one of the interpreter's failure families.
type Kind int

const (
	// KindNotFound covers missing objects, groups, variables, files and folders.
	KindNotFound Kind = iota + 1
	// KindMalformed covers wrong token shapes, non-integers and bad indices.
	KindMalformed
	// KindEmpty covers empty command lines and empty numeric aggregations.
	KindEmpty
	// KindIOFailure covers delegated read, write, create and move failures.
	KindIOFailure
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindMalformed:
		return "malformed"
	case KindEmpty:
		return "empty"
	case KindIOFailure:
		return "io_failure"
	default:
		return "unknown"
	}
}

// DomainError represents an interpreter error with a structured error code.
//
// Message is the generic description of the code. Details carries the
// sentence shown to the user ("Object 'a' not found.").
type DomainError struct {
	Code    string // Error code (e.g., "BP-OBJ-4040")
	Kind    Kind
	Message string // Generic message
	Details string // User-facing sentence
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code, kind and message.
func NewDomainError(code string, kind Kind, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Kind:    e.Kind,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// Detailf is WithDetails with fmt.Sprintf formatting.
func (e *DomainError) Detailf(format string, args ...any) *DomainError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Kind:    e.Kind,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// KindOf returns the Kind of a DomainError, or zero for other errors.
func KindOf(err error) Kind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return 0
}

// Describe renders an error the way the interpreter reports it to the user.
// The result always starts with "Error:".
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var de *DomainError
	if !errors.As(err, &de) {
		return "Error: " + err.Error()
	}
	if de.Details != "" {
		return "Error: " + de.Details
	}
	return "Error: " + de.Message + "."
}

// ============================================================================
// Command Errors (CMD)
// ============================================================================

var (
	// ErrEmptyCommand indicates the input line produced no tokens.
	ErrEmptyCommand = NewDomainError("BP-CMD-4000", KindEmpty, "Empty command")

	// ErrUnrecognized indicates an unknown verb or a verb missing its required shape.
	ErrUnrecognized = NewDomainError("BP-CMD-4001", KindMalformed, "Command not recognized or incomplete")

	// ErrMalformed indicates a recognized verb with an invalid shape.
	ErrMalformed = NewDomainError("BP-CMD-4002", KindMalformed, "Malformed command")
)

// ============================================================================
// Argument Errors (ARG)
// ============================================================================

var (
	// ErrItemNotInteger indicates the ITEM index is not an integer.
	ErrItemNotInteger = NewDomainError("BP-ARG-4001", KindMalformed, "ITEM number must be an integer")

	// ErrItemOutOfRange indicates the ITEM index is outside the group.
	ErrItemOutOfRange = NewDomainError("BP-ARG-4002", KindMalformed, "ITEM out of range")
)

// ============================================================================
// Entity Errors (OBJ, GRP, VAR)
// ============================================================================

var (
	// ErrObjectNotFound indicates the object does not exist.
	ErrObjectNotFound = NewDomainError("BP-OBJ-4040", KindNotFound, "object not found")

	// ErrGroupNotFound indicates the group does not exist.
	ErrGroupNotFound = NewDomainError("BP-GRP-4040", KindNotFound, "group not found")

	// ErrNotMember indicates the object is not a member of the group.
	ErrNotMember = NewDomainError("BP-GRP-4041", KindNotFound, "object not in group")

	// ErrNoIntegers indicates a numeric aggregation found no digit-only members.
	ErrNoIntegers = NewDomainError("BP-GRP-4220", KindEmpty, "no integers in group")

	// ErrVariableNotFound indicates the variable does not exist.
	ErrVariableNotFound = NewDomainError("BP-VAR-4040", KindNotFound, "variable not found")
)

// ============================================================================
// File Errors (FILE, SNAP)
// ============================================================================

var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = NewDomainError("BP-FILE-4040", KindNotFound, "file not found")

	// ErrFolderNotFound indicates the folder does not exist.
	ErrFolderNotFound = NewDomainError("BP-FILE-4041", KindNotFound, "folder not found")

	// ErrFileIO indicates a delegated file operation failed.
	ErrFileIO = NewDomainError("BP-FILE-5000", KindIOFailure, "file operation failed")

	// ErrSnapshotInvalid indicates a snapshot could not be decoded or is inconsistent.
	ErrSnapshotInvalid = NewDomainError("BP-SNAP-4220", KindIOFailure, "invalid snapshot")
)
