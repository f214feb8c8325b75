package files

import (
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// Memory implements Files in memory. It backs sandboxed script runs and tests.
//
// Paths are cleaned and slash-separated; "." is the root and always exists.
type Memory struct {
	files map[string]string
	dirs  map[string]bool
}

// NewMemory creates an empty in-memory file system.
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string]string),
		dirs:  map[string]bool{".": true},
	}
}

// clean maps p into the sandbox; ".." cannot climb above the root.
func clean(p string) string {
	c := path.Clean("/" + filepath.ToSlash(p))
	if c == "/" {
		return "."
	}
	return c[1:]
}

func (m *Memory) parentExists(p string) bool {
	return m.dirs[path.Dir(p)]
}

// WriteText implements Files.
func (m *Memory) WriteText(p, content string) error {
	c := clean(p)
	if m.dirs[c] {
		return &Error{Op: "write", Path: p, Kind: ErrIO, Err: fmt.Errorf("is a directory")}
	}
	if !m.parentExists(c) {
		return &Error{Op: "write", Path: p, Kind: ErrNotFound, Err: fmt.Errorf("no such file or directory")}
	}
	m.files[c] = content
	return nil
}

// ReadText implements Files.
func (m *Memory) ReadText(p string) (string, error) {
	content, ok := m.files[clean(p)]
	if !ok {
		return "", &Error{Op: "read", Path: p, Kind: ErrNotFound, Err: fmt.Errorf("no such file or directory")}
	}
	return content, nil
}

// CreateEmptyFile implements Files.
func (m *Memory) CreateEmptyFile(p string) error {
	c := clean(p)
	if m.dirs[c] || !m.parentExists(c) {
		return &Error{Op: "create", Path: p, Kind: ErrNotFound, Err: fmt.Errorf("no such file or directory")}
	}
	m.files[c] = ""
	return nil
}

// CreateDirectory implements Files.
func (m *Memory) CreateDirectory(p string) error {
	c := clean(p)
	for d := c; d != "."; d = path.Dir(d) {
		if _, ok := m.files[d]; ok {
			return &Error{Op: "mkdir", Path: p, Kind: ErrIO, Err: fmt.Errorf("not a directory")}
		}
	}
	for d := c; d != "."; d = path.Dir(d) {
		m.dirs[d] = true
	}
	return nil
}

// MoveFile implements Files.
func (m *Memory) MoveFile(src, destDir string) error {
	s := clean(src)
	content, ok := m.files[s]
	if !ok {
		return &Error{Op: "move", Path: src, Kind: ErrNotFound}
	}
	d := clean(destDir)
	if !m.dirs[d] {
		return &Error{Op: "move", Path: destDir, Kind: ErrNotFound}
	}
	delete(m.files, s)
	m.files[path.Join(d, path.Base(s))] = content
	return nil
}

// Paths returns every file path, sorted.
func (m *Memory) Paths() []string {
	out := make([]string, 0, len(m.files))
	for p := range m.files {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Dirs returns every directory except the root, sorted.
func (m *Memory) Dirs() []string {
	out := make([]string, 0, len(m.dirs))
	for d := range m.dirs {
		if d != "." {
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// String lists the sandbox contents, one path per line; directories end in "/".
func (m *Memory) String() string {
	var b strings.Builder
	for _, d := range m.Dirs() {
		b.WriteString(d + "/\n")
	}
	for _, p := range m.Paths() {
		b.WriteString(p + "\n")
	}
	return b.String()
}
