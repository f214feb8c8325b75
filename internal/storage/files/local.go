package files

import (
	"fmt"
	"os"
	"path/filepath"
)

// Local implements Files on the operating system's file system.
// Relative paths are resolved against the working directory given to NewLocal.
type Local struct {
	root string
}

// NewLocal creates a Local rooted at dir. An empty dir means the process
// working directory.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

// Root returns the directory relative paths are resolved against.
func (l *Local) Root() string {
	return l.root
}

func (l *Local) abs(p string) string {
	if l.root == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(l.root, p)
}

// WriteText implements Files.
func (l *Local) WriteText(path, content string) error {
	return wrap("write", path, os.WriteFile(l.abs(path), []byte(content), 0644))
}

// ReadText implements Files.
func (l *Local) ReadText(path string) (string, error) {
	data, err := os.ReadFile(l.abs(path))
	if err != nil {
		return "", wrap("read", path, err)
	}
	return string(data), nil
}

// CreateEmptyFile implements Files.
func (l *Local) CreateEmptyFile(path string) error {
	return wrap("create", path, os.WriteFile(l.abs(path), nil, 0644))
}

// CreateDirectory implements Files.
func (l *Local) CreateDirectory(path string) error {
	return wrap("mkdir", path, os.MkdirAll(l.abs(path), 0755))
}

// MoveFile implements Files.
func (l *Local) MoveFile(src, destDir string) error {
	if _, err := os.Stat(l.abs(src)); err != nil {
		return wrap("move", src, err)
	}
	info, err := os.Stat(l.abs(destDir))
	if err != nil {
		return wrap("move", destDir, err)
	}
	if !info.IsDir() {
		return &Error{Op: "move", Path: destDir, Kind: ErrNotFound, Err: fmt.Errorf("not a directory")}
	}

	dst := filepath.Join(l.abs(destDir), filepath.Base(src))
	return wrap("move", src, os.Rename(l.abs(src), dst))
}
