package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by ForFormat for unknown format names.
var ErrUnsupportedFormat = errors.New("snapshot: unsupported format")

// Codec converts snapshots to and from structured text.
type Codec interface {
	// Name returns the format name ("json", "yaml").
	Name() string
	Encode(s *Snapshot) ([]byte, error)
	// Decode parses data; absent tables decode as empty.
	Decode(data []byte) (*Snapshot, error)
}

// JSON is the default snapshot codec.
type JSON struct{}

// Name implements Codec.
func (JSON) Name() string { return "json" }

// Encode implements Codec.
func (JSON) Encode(s *Snapshot) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("snapshot: marshal json: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode implements Codec.
func (JSON) Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal json: %w", err)
	}
	s.Normalize()
	return &s, nil
}

// YAML encodes snapshots as YAML documents.
type YAML struct{}

// Name implements Codec.
func (YAML) Name() string { return "yaml" }

// Encode implements Codec.
func (YAML) Encode(s *Snapshot) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: marshal yaml: %w", err)
	}
	return data, nil
}

// Decode implements Codec.
func (YAML) Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal yaml: %w", err)
	}
	s.Normalize()
	return &s, nil
}

// ForPath picks the codec for a file name: YAML for .yaml and .yml,
// JSON for everything else.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}
	default:
		return JSON{}
	}
}

// ForFormat returns the codec with the given name.
func ForFormat(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json", "":
		return JSON{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}
