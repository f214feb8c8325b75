package command

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/yndnr/bpls-go/internal/cli/output"
	"github.com/yndnr/bpls-go/internal/storage/snapshot"
	"github.com/yndnr/bpls-go/internal/storage/workspace"
)

// snapshotTable lists groups, objects and variables, each sorted by name.
func snapshotTable(s *snapshot.Snapshot) *output.Table {
	t := output.NewTable("KIND", "NAME", "VALUE")
	for _, g := range slices.Sorted(maps.Keys(s.Groups)) {
		t.AddRow("group", g, strings.Join(s.Groups[g], ", "))
	}
	for _, o := range slices.Sorted(maps.Keys(s.Objects)) {
		t.AddRow("object", o, s.Objects[o])
	}
	for _, v := range slices.Sorted(maps.Keys(s.Variables)) {
		t.AddRow("variable", v, s.Variables[v])
	}
	return t
}

// snapshotReport is the result of inspect.
type snapshotReport struct {
	Path       string             `json:"path" yaml:"path"`
	Format     string             `json:"format" yaml:"format"`
	Consistent bool               `json:"consistent" yaml:"consistent"`
	Problem    string             `json:"problem,omitempty" yaml:"problem,omitempty"`
	Snapshot   *snapshot.Snapshot `json:"snapshot" yaml:"snapshot"`
}

func (r snapshotReport) Table() *output.Table {
	return snapshotTable(r.Snapshot)
}

// recordView is a stored workspace.
type recordView workspace.Record

func (r recordView) Table() *output.Table {
	return snapshotTable(r.Snapshot)
}

// recordList is the result of workspace list.
type recordList []*workspace.Record

func (l recordList) Table() *output.Table {
	t := output.NewTable("NAME", "REVISION", "SAVED", "OBJECTS", "GROUPS", "VARIABLES")
	for _, r := range l {
		t.AddRow(
			r.Name,
			r.Revision,
			r.SavedAt.Local().Format(time.DateTime),
			strconv.Itoa(len(r.Snapshot.Objects)),
			strconv.Itoa(len(r.Snapshot.Groups)),
			strconv.Itoa(len(r.Snapshot.Variables)),
		)
	}
	return t
}
