package interpreter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yndnr/bpls-go/internal/core/domain"
	"github.com/yndnr/bpls-go/internal/storage/files"
	"github.com/yndnr/bpls-go/internal/storage/snapshot"
)

func (in *Interpreter) execute(cmd Command) (string, error) {
	t := in.tables

	switch c := cmd.(type) {
	case SetVariable:
		t.SetVariable(c.Name, c.Value)
		return fmt.Sprintf("Variable '%s' set to '%s'.", c.Name, c.Value), nil

	case CreateObject:
		t.CreateObject(c.Name)
		return fmt.Sprintf("Object '%s' created.", c.Name), nil

	case CreateGroup:
		t.CreateGroup(c.Name)
		return fmt.Sprintf("Group '%s' created.", c.Name), nil

	case Clear:
		if err := in.screen.Clear(); err != nil {
			return "", domain.ErrFileIO.Detailf("Could not clear the screen.").WithCause(err)
		}
		return "", nil

	case Locate:
		return in.locate(t.Resolve(c.Object))

	case FindItem:
		n, err := strconv.Atoi(c.Index)
		if err != nil {
			return "", domain.ErrItemNotInteger
		}
		group := t.Resolve(c.Group)
		obj, err := t.Item(group, n)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Group '%s' ITEM %d is '%s'.", group, n, obj), nil

	case FindObject:
		obj, group := t.Resolve(c.Object), t.Resolve(c.Group)
		ok, err := t.Contains(group, obj)
		if err != nil {
			return "", err
		}
		if !ok {
			return fmt.Sprintf("Object '%s' is not in group '%s'.", obj, group), nil
		}
		return fmt.Sprintf("Object '%s' is in group '%s'.", obj, group), nil

	case Sum:
		group := t.Resolve(c.Group)
		agg, err := t.Integers(group)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("SUM of '%s' = %s", group, agg.Sum), nil

	case Avg:
		group := t.Resolve(c.Group)
		agg, err := t.Integers(group)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("AVG of '%s' = %s", group, formatAverage(agg.Average())), nil

	case Swap:
		group := t.Resolve(c.Group)
		if err := t.Swap(group, c.A, c.B); err != nil {
			return "", err
		}
		return fmt.Sprintf("Swapped '%s' with '%s' in group '%s'.", c.A, c.B, group), nil

	case Move:
		obj, group := t.Resolve(c.Object), t.Resolve(c.Group)
		if err := t.Move(obj, group); err != nil {
			return "", err
		}
		return fmt.Sprintf("Object '%s' moved to group '%s'.", obj, group), nil

	case MoveVariable:
		obj, err := t.Variable(c.Variable)
		if err != nil {
			return "", err
		}
		group := t.Resolve(c.Group)
		if err := t.Move(obj, group); err != nil {
			return "", err
		}
		return fmt.Sprintf("Object '%s' (from variable '%s') moved to group '%s'.", obj, c.Variable, group), nil

	case MoveFile:
		return in.moveFile(c.File, c.Folder)

	case RemoveObject:
		obj, group := t.Resolve(c.Object), t.Resolve(c.Group)
		if err := t.Remove(obj, group); err != nil {
			return "", err
		}
		return fmt.Sprintf("Object '%s' removed from group '%s'.", obj, group), nil

	case DeleteObject:
		obj := t.Resolve(c.Name)
		if err := t.DeleteObject(obj); err != nil {
			return "", err
		}
		return fmt.Sprintf("Object '%s' deleted.", obj), nil

	case DeleteGroup:
		group := t.Resolve(c.Name)
		if err := t.DeleteGroup(group); err != nil {
			return "", err
		}
		return fmt.Sprintf("Group '%s' deleted.", group), nil

	case List:
		group := t.Resolve(c.Group)
		members, err := t.Members(group)
		if err != nil {
			return "", err
		}
		if len(members) == 0 {
			return fmt.Sprintf("Group '%s' is empty.", group), nil
		}
		return fmt.Sprintf("Group '%s': %s", group, strings.Join(members, ", ")), nil

	case Save:
		return in.save(c.Path)

	case Load:
		return in.load(c.Path)

	case MakeFile:
		if err := in.files.CreateEmptyFile(c.Path); err != nil {
			return "", domain.ErrFileIO.Detailf("Could not create file '%s': %v", c.Path, err).WithCause(err)
		}
		return fmt.Sprintf("File '%s' created.", c.Path), nil

	case MakeFolder:
		if err := in.files.CreateDirectory(c.Path); err != nil {
			return "", domain.ErrFileIO.Detailf("Could not create folder '%s': %v", c.Path, err).WithCause(err)
		}
		return fmt.Sprintf("Folder '%s' created.", c.Path), nil

	case Put:
		return in.put(t.Resolve(c.Group), c.Path)

	default:
		return "", domain.ErrUnrecognized
	}
}

func (in *Interpreter) locate(obj string) (string, error) {
	group, item, err := in.tables.Locate(obj)
	if err != nil {
		return "", err
	}
	if group == "" {
		return fmt.Sprintf("Object '%s' is not in any group.", obj), nil
	}
	return fmt.Sprintf("Object '%s' is located in group '%s' at ITEM %d.", obj, group, item), nil
}

func (in *Interpreter) moveFile(file, folder string) (string, error) {
	err := in.files.MoveFile(file, folder)
	switch {
	case err == nil:
		return fmt.Sprintf("File '%s' moved to folder '%s'.", file, folder), nil
	case files.IsNotFound(err, file):
		return "", domain.ErrFileNotFound.Detailf("File '%s' not found.", file).WithCause(err)
	case files.IsNotFound(err, folder):
		return "", domain.ErrFolderNotFound.Detailf("Folder '%s' not found.", folder).WithCause(err)
	default:
		return "", domain.ErrFileIO.Detailf("Could not move file '%s' to folder '%s': %v", file, folder, err).WithCause(err)
	}
}

func (in *Interpreter) save(path string) (string, error) {
	codec := snapshot.ForPath(path)
	data, err := codec.Encode(snapshot.FromTables(in.tables))
	if err != nil {
		return "", domain.ErrSnapshotInvalid.Detailf("Could not encode code: %v", err).WithCause(err)
	}
	if err := in.files.WriteText(path, string(data)); err != nil {
		return "", domain.ErrFileIO.Detailf("Could not save code to '%s': %v", path, err).WithCause(err)
	}
	return fmt.Sprintf("Code saved to '%s'.", path), nil
}

func (in *Interpreter) load(path string) (string, error) {
	text, err := in.files.ReadText(path)
	if err != nil {
		if files.IsNotFound(err, "") {
			return "", domain.ErrFileNotFound.Detailf("File '%s' not found.", path).WithCause(err)
		}
		return "", domain.ErrFileIO.Detailf("Could not read '%s': %v", path, err).WithCause(err)
	}
	s, err := snapshot.ForPath(path).Decode([]byte(text))
	if err != nil {
		return "", domain.ErrSnapshotInvalid.Detailf("Could not load code from '%s': %v", path, err).WithCause(err)
	}
	if err := in.Restore(s); err != nil {
		return "", err
	}
	return fmt.Sprintf("Code loaded from '%s'.", path), nil
}

func (in *Interpreter) put(group, path string) (string, error) {
	members, err := in.tables.Members(group)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, m := range members {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	if err := in.files.WriteText(path, b.String()); err != nil {
		return "", domain.ErrFileIO.Detailf("Could not write group '%s' to file '%s': %v", group, path, err).WithCause(err)
	}
	return fmt.Sprintf("Group '%s' written into file '%s'.", group, path), nil
}

// formatAverage prints f with the shortest round-trip digits and always a
// fractional part ("4.0"). From 1e16 up it switches to exponent form.
func formatAverage(f float64) string {
	if math.Abs(f) >= 1e16 {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
