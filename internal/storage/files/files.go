// Package files provides the file collaborator used by interpreter commands
// that touch the file system (SAVE, LOAD, MAKE, PUT, MOVE FILE).
package files

import (
	"errors"
	"fmt"
	"io/fs"
)

// Failure kinds reported through Error.Kind.
var (
	ErrNotFound   = errors.New("files: not found")
	ErrPermission = errors.New("files: permission denied")
	ErrIO         = errors.New("files: i/o failure")
)

// Files is the set of file operations the interpreter delegates.
type Files interface {
	// WriteText creates or truncates path and writes content.
	WriteText(path, content string) error
	// ReadText returns the content of path.
	ReadText(path string) (string, error)
	// CreateEmptyFile creates or truncates path.
	CreateEmptyFile(path string) error
	// CreateDirectory creates path and any missing parents.
	CreateDirectory(path string) error
	// MoveFile moves src into the existing directory destDir.
	MoveFile(src, destDir string) error
}

// Error describes a failed file operation.
type Error struct {
	Op   string // write, read, create, mkdir, move
	Path string // path the failure refers to
	Kind error  // ErrNotFound, ErrPermission or ErrIO
	Err  error  // underlying error, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
}

// Unwrap exposes both the kind and the underlying error to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsNotFound reports whether err is a not-found failure for path.
// An empty path matches any not-found failure.
func IsNotFound(err error, path string) bool {
	var fe *Error
	if !errors.As(err, &fe) || !errors.Is(fe.Kind, ErrNotFound) {
		return false
	}
	return path == "" || fe.Path == path
}

// wrap classifies an os error into an *Error.
func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	cause := err
	var pe *fs.PathError
	if errors.As(err, &pe) {
		cause = pe.Err
	}

	kind := ErrIO
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = ErrPermission
	}
	return &Error{Op: op, Path: path, Kind: kind, Err: cause}
}
