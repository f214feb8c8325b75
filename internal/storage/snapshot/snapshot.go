package snapshot

import (
	"maps"
	"slices"

	"github.com/yndnr/bpls-go/internal/core/domain"
)

// Snapshot is the external form of the three symbol tables.
type Snapshot struct {
	Objects   map[string]string   `json:"objects" yaml:"objects"`
	Groups    map[string][]string `json:"groups" yaml:"groups"`
	Variables map[string]string   `json:"variables" yaml:"variables"`
}

// FromTables copies t into a Snapshot. The result shares no memory with t.
func FromTables(t *domain.Tables) *Snapshot {
	s := &Snapshot{
		Objects:   maps.Clone(t.Objects),
		Groups:    make(map[string][]string, len(t.Groups)),
		Variables: maps.Clone(t.Variables),
	}
	for g, members := range t.Groups {
		s.Groups[g] = slices.Clone(members)
	}
	s.Normalize()
	return s
}

// Tables copies the snapshot into fresh domain tables.
func (s *Snapshot) Tables() *domain.Tables {
	t := domain.NewTables()
	maps.Copy(t.Objects, s.Objects)
	maps.Copy(t.Variables, s.Variables)
	for g, members := range s.Groups {
		t.Groups[g] = slices.Clone(members)
		if t.Groups[g] == nil {
			t.Groups[g] = []string{}
		}
	}
	return t
}

// Normalize replaces absent tables and member lists with empty ones.
func (s *Snapshot) Normalize() {
	if s.Objects == nil {
		s.Objects = make(map[string]string)
	}
	if s.Groups == nil {
		s.Groups = make(map[string][]string)
	}
	if s.Variables == nil {
		s.Variables = make(map[string]string)
	}
	for g, members := range s.Groups {
		if members == nil {
			s.Groups[g] = []string{}
		}
	}
}
