package interpreter

import (
	"strings"

	"github.com/yndnr/bpls-go/internal/core/domain"
)

// Command is one parsed BPLS statement. The set of implementations is closed.
type Command interface {
	// Verb is the command's label in logs and metrics, e.g. "MOVE VARIABLE".
	Verb() string
	command()
}

// Command variants, one per statement shape. Name fields hold the tokens as
// typed; handlers resolve them through variables.
type (
	SetVariable  struct{ Name, Value string }
	CreateObject struct{ Name string }
	CreateGroup  struct{ Name string }
	Clear        struct{}
	Locate       struct{ Object string }
	FindItem     struct{ Index, Group string }
	FindObject   struct{ Object, Group string }
	Sum          struct{ Group string }
	Avg          struct{ Group string }
	Swap         struct{ A, B, Group string }
	Move         struct{ Object, Group string }
	MoveVariable struct{ Variable, Group string }
	MoveFile     struct{ File, Folder string }
	RemoveObject struct{ Object, Group string }
	DeleteObject struct{ Name string }
	DeleteGroup  struct{ Name string }
	List         struct{ Group string }
	Save         struct{ Path string }
	Load         struct{ Path string }
	MakeFile     struct{ Path string }
	MakeFolder   struct{ Path string }
	Put          struct{ Group, Path string }
)

func (SetVariable) Verb() string  { return "VARIABLE" }
func (CreateObject) Verb() string { return "CREATE OBJ" }
func (CreateGroup) Verb() string  { return "CREATE GROUP" }
func (Clear) Verb() string        { return "CLEAR" }
func (Locate) Verb() string       { return "LOC" }
func (FindItem) Verb() string     { return "FIND ITEM" }
func (FindObject) Verb() string   { return "FIND OBJ" }
func (Sum) Verb() string          { return "SUM" }
func (Avg) Verb() string          { return "AVG" }
func (Swap) Verb() string         { return "SWAP" }
func (Move) Verb() string         { return "MOVE" }
func (MoveVariable) Verb() string { return "MOVE VARIABLE" }
func (MoveFile) Verb() string     { return "MOVE FILE" }
func (RemoveObject) Verb() string { return "REMOVE OBJ" }
func (DeleteObject) Verb() string { return "DELETE OBJ" }
func (DeleteGroup) Verb() string  { return "DELETE GROUP" }
func (List) Verb() string         { return "LIST" }
func (Save) Verb() string         { return "SAVE CODE" }
func (Load) Verb() string         { return "LOAD" }
func (MakeFile) Verb() string     { return "MAKE FILE" }
func (MakeFolder) Verb() string   { return "MAKE FOLDER" }
func (Put) Verb() string          { return "PUT" }

func (SetVariable) command()  {}
func (CreateObject) command() {}
func (CreateGroup) command()  {}
func (Clear) command()        {}
func (Locate) command()       {}
func (FindItem) command()     {}
func (FindObject) command()   {}
func (Sum) command()          {}
func (Avg) command()          {}
func (Swap) command()         {}
func (Move) command()         {}
func (MoveVariable) command() {}
func (MoveFile) command()     {}
func (RemoveObject) command() {}
func (DeleteObject) command() {}
func (DeleteGroup) command()  {}
func (List) command()         {}
func (Save) command()         {}
func (Load) command()         {}
func (MakeFile) command()     {}
func (MakeFolder) command()   {}
func (Put) command()          {}

// rule is one line of the grammar. keywords maps a token position to the
// word (compared case-insensitively) that must appear there.
type rule struct {
	verb     string
	min      int
	keywords map[int]string
	usage    string
	build    func(tok []string) Command
}

func (r rule) matches(tokens []string) bool {
	if len(tokens) < r.min {
		return false
	}
	for pos, kw := range r.keywords {
		if !strings.EqualFold(tokens[pos], kw) {
			return false
		}
	}
	return true
}

// grammar lists every rule. Rules sharing a verb are tried in order, so the
// keyword forms of MOVE come before the plain form.
var grammar = []rule{
	{"VARIABLE", 4, map[int]string{2: "IS"}, "VARIABLE name IS value",
		func(t []string) Command { return SetVariable{Name: name(t[1]), Value: name(t[3])} }},
	{"CREATE", 3, map[int]string{1: "OBJ"}, "CREATE OBJ name",
		func(t []string) Command { return CreateObject{Name: name(t[2])} }},
	{"CREATE", 3, map[int]string{1: "GROUP"}, "CREATE GROUP name",
		func(t []string) Command { return CreateGroup{Name: name(t[2])} }},
	{"CLEAR", 1, nil, "CLEAR",
		func([]string) Command { return Clear{} }},
	{"LOC", 2, nil, "LOC object",
		func(t []string) Command { return Locate{Object: name(t[1])} }},
	{"FIND", 5, map[int]string{1: "ITEM", 3: "OF"}, "FIND ITEM n OF group",
		func(t []string) Command { return FindItem{Index: t[2], Group: name(t[4])} }},
	{"FIND", 5, map[int]string{1: "OBJ", 3: "FROM"}, "FIND OBJ object FROM group",
		func(t []string) Command { return FindObject{Object: name(t[2]), Group: name(t[4])} }},
	{"SUM", 2, nil, "SUM group",
		func(t []string) Command { return Sum{Group: name(t[1])} }},
	{"AVG", 2, nil, "AVG group",
		func(t []string) Command { return Avg{Group: name(t[1])} }},
	{"SWAP", 6, map[int]string{2: "WITH", 4: "IN"}, "SWAP a WITH b IN group",
		func(t []string) Command { return Swap{A: name(t[1]), B: name(t[3]), Group: name(t[5])} }},
	{"MOVE", 5, map[int]string{1: "VARIABLE", 3: "TO"}, "MOVE VARIABLE var TO group",
		func(t []string) Command { return MoveVariable{Variable: name(t[2]), Group: name(t[4])} }},
	{"MOVE", 5, map[int]string{1: "FILE", 3: "TO"}, "MOVE FILE file TO folder",
		func(t []string) Command { return MoveFile{File: t[2], Folder: t[4]} }},
	{"MOVE", 4, map[int]string{2: "TO"}, "MOVE object TO group",
		func(t []string) Command { return Move{Object: name(t[1]), Group: name(t[3])} }},
	{"REMOVE", 5, map[int]string{1: "OBJ", 3: "FROM"}, "REMOVE OBJ object FROM group",
		func(t []string) Command { return RemoveObject{Object: name(t[2]), Group: name(t[4])} }},
	{"DELETE", 3, map[int]string{1: "OBJ"}, "DELETE OBJ object",
		func(t []string) Command { return DeleteObject{Name: name(t[2])} }},
	{"DELETE", 3, map[int]string{1: "GROUP"}, "DELETE GROUP group",
		func(t []string) Command { return DeleteGroup{Name: name(t[2])} }},
	{"LIST", 2, nil, "LIST group",
		func(t []string) Command { return List{Group: name(t[1])} }},
	{"SAVE", 4, map[int]string{1: "CODE", 2: "TO"}, "SAVE CODE TO file",
		func(t []string) Command { return Save{Path: t[3]} }},
	{"LOAD", 2, nil, "LOAD file",
		func(t []string) Command { return Load{Path: t[1]} }},
	{"MAKE", 3, map[int]string{1: "FILE"}, "MAKE FILE file",
		func(t []string) Command { return MakeFile{Path: t[2]} }},
	{"MAKE", 3, map[int]string{1: "FOLDER"}, "MAKE FOLDER folder",
		func(t []string) Command { return MakeFolder{Path: t[2]} }},
	{"PUT", 4, map[int]string{2: "IN"}, "PUT group IN file",
		func(t []string) Command { return Put{Group: name(t[1]), Path: t[3]} }},
}

// Parse maps tokens to a Command. Tokens beyond a rule's shape are ignored.
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, domain.ErrEmptyCommand
	}
	verb := strings.ToUpper(tokens[0])
	for _, r := range grammar {
		if r.verb == verb && r.matches(tokens) {
			return r.build(tokens), nil
		}
	}
	if verb == "SWAP" {
		return nil, domain.ErrMalformed.WithDetails("Invalid SWAP syntax.")
	}
	return nil, domain.ErrUnrecognized
}

// Usage returns the shape of every command, in grammar order.
func Usage() []string {
	out := make([]string, len(grammar))
	for i, r := range grammar {
		out[i] = r.usage
	}
	return out
}

// Verbs returns the distinct leading keywords.
func Verbs() []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range grammar {
		if !seen[r.verb] {
			seen[r.verb] = true
			out = append(out, r.verb)
		}
	}
	return out
}
