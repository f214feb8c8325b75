package domain

import (
	"fmt"
	"math/big"
	"slices"
	"sort"
)

// Tables holds the three symbol tables of an interpreter.
//
// Objects maps an object name to the group that contains it ("" when
// ungrouped). Groups maps a group name to its ordered member list.
// Variables maps a variable name to its string value.
//
// The mutators keep both directions of the object/group link in step:
// objects[o] == g exactly when o appears once in groups[g].
type Tables struct {
	Objects   map[string]string
	Groups    map[string][]string
	Variables map[string]string
}

// NewTables returns empty tables.
func NewTables() *Tables {
	return &Tables{
		Objects:   make(map[string]string),
		Groups:    make(map[string][]string),
		Variables: make(map[string]string),
	}
}

// Resolve returns the value of token if it names a variable, else token itself.
func (t *Tables) Resolve(token string) string {
	if v, ok := t.Variables[token]; ok {
		return v
	}
	return token
}

// SetVariable creates or overwrites a variable.
func (t *Tables) SetVariable(name, value string) {
	t.Variables[name] = value
}

// Variable returns the value stored under name.
func (t *Tables) Variable(name string) (string, error) {
	v, ok := t.Variables[name]
	if !ok {
		return "", ErrVariableNotFound.Detailf("Variable '%s' not found.", name)
	}
	return v, nil
}

// CreateObject creates name as an ungrouped object. An existing object of the
// same name is detached from its group first.
func (t *Tables) CreateObject(name string) {
	if g, ok := t.Objects[name]; ok && g != "" {
		t.Groups[g] = without(t.Groups[g], name)
	}
	t.Objects[name] = ""
}

// CreateGroup creates name as an empty group. Members of an existing group of
// the same name become ungrouped.
func (t *Tables) CreateGroup(name string) {
	for _, m := range t.Groups[name] {
		t.Objects[m] = ""
	}
	t.Groups[name] = []string{}
}

// HasGroup reports whether group exists.
func (t *Tables) HasGroup(group string) bool {
	_, ok := t.Groups[group]
	return ok
}

// Locate returns the group containing obj and its 1-based ITEM index.
// An ungrouped object yields ("", 0, nil).
func (t *Tables) Locate(obj string) (string, int, error) {
	g, ok := t.Objects[obj]
	if !ok {
		return "", 0, ErrObjectNotFound.Detailf("Object '%s' not found.", obj)
	}
	if g == "" {
		return "", 0, nil
	}
	return g, slices.Index(t.Groups[g], obj) + 1, nil
}

// Members returns a copy of the member list of group.
func (t *Tables) Members(group string) ([]string, error) {
	list, ok := t.Groups[group]
	if !ok {
		return nil, groupNotFound(group)
	}
	return slices.Clone(list), nil
}

// Item returns the member at 1-based position n.
func (t *Tables) Item(group string, n int) (string, error) {
	list, ok := t.Groups[group]
	if !ok {
		return "", groupNotFound(group)
	}
	if n <= 0 || n > len(list) {
		return "", ErrItemOutOfRange.Detailf("Group '%s' does not have ITEM %d.", group, n)
	}
	return list[n-1], nil
}

// Contains reports whether obj is a member of group.
func (t *Tables) Contains(group, obj string) (bool, error) {
	list, ok := t.Groups[group]
	if !ok {
		return false, groupNotFound(group)
	}
	return slices.Contains(list, obj), nil
}

// Move detaches obj from its current group and appends it to group.
func (t *Tables) Move(obj, group string) error {
	if _, ok := t.Groups[group]; !ok {
		return groupNotFound(group)
	}
	old, ok := t.Objects[obj]
	if !ok {
		return ErrObjectNotFound.Detailf("Object '%s' not found.", obj)
	}
	if old != "" {
		t.Groups[old] = without(t.Groups[old], obj)
	}
	t.Groups[group] = append(t.Groups[group], obj)
	t.Objects[obj] = group
	return nil
}

// Remove takes obj out of group, leaving it ungrouped.
func (t *Tables) Remove(obj, group string) error {
	list, ok := t.Groups[group]
	if !ok {
		return groupNotFound(group)
	}
	if !slices.Contains(list, obj) {
		return notMember(obj, group)
	}
	t.Groups[group] = without(list, obj)
	t.Objects[obj] = ""
	return nil
}

// DeleteObject removes obj from its group (if any) and from the object table.
func (t *Tables) DeleteObject(obj string) error {
	g, ok := t.Objects[obj]
	if !ok {
		return ErrObjectNotFound.Detailf("Object '%s' not found.", obj)
	}
	if g != "" {
		t.Groups[g] = without(t.Groups[g], obj)
	}
	delete(t.Objects, obj)
	return nil
}

// DeleteGroup ungroups every member and removes group.
func (t *Tables) DeleteGroup(group string) error {
	list, ok := t.Groups[group]
	if !ok {
		return groupNotFound(group)
	}
	for _, m := range list {
		t.Objects[m] = ""
	}
	delete(t.Groups, group)
	return nil
}

// Swap exchanges the positions of a and b inside group. Every occurrence of a
// becomes b and every occurrence of b becomes a in a single pass.
//
// Both operands must be members so that membership, and therefore the
// object/group link, is unchanged.
func (t *Tables) Swap(group, a, b string) error {
	list, ok := t.Groups[group]
	if !ok {
		return groupNotFound(group)
	}
	for _, name := range []string{a, b} {
		if !slices.Contains(list, name) {
			return notMember(name, group)
		}
	}
	for i, v := range list {
		switch v {
		case a:
			list[i] = b
		case b:
			list[i] = a
		}
	}
	return nil
}

// Aggregate is the sum and count of the digit-only members of a group.
type Aggregate struct {
	Sum   *big.Int
	Count int
}

// Average returns Sum / Count as a float.
func (a Aggregate) Average() float64 {
	f, _ := new(big.Rat).SetFrac(a.Sum, big.NewInt(int64(a.Count))).Float64()
	return f
}

// Integers sums the members of group that consist only of ASCII digits.
// Negative numbers and other members are ignored.
func (t *Tables) Integers(group string) (Aggregate, error) {
	list, ok := t.Groups[group]
	if !ok {
		return Aggregate{}, groupNotFound(group)
	}
	agg := Aggregate{Sum: new(big.Int)}
	for _, v := range list {
		if !IsDigits(v) {
			continue
		}
		n, _ := new(big.Int).SetString(v, 10)
		agg.Sum.Add(agg.Sum, n)
		agg.Count++
	}
	if agg.Count == 0 {
		return Aggregate{}, ErrNoIntegers.Detailf("No integers in group '%s'.", group)
	}
	return agg, nil
}

// IsDigits reports whether s is non-empty and made only of ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Counts returns the sizes of the three tables.
func (t *Tables) Counts() (objects, groups, variables int) {
	return len(t.Objects), len(t.Groups), len(t.Variables)
}

// Verify checks the object/group link in both directions.
func (t *Tables) Verify() error {
	for _, obj := range sortedKeys(t.Objects) {
		g := t.Objects[obj]
		if g == "" {
			continue
		}
		list, ok := t.Groups[g]
		if !ok {
			return fmt.Errorf("object %q refers to missing group %q", obj, g)
		}
		if n := count(list, obj); n != 1 {
			return fmt.Errorf("object %q appears %d times in group %q", obj, n, g)
		}
	}
	for _, g := range sortedKeys(t.Groups) {
		seen := make(map[string]bool, len(t.Groups[g]))
		for _, m := range t.Groups[g] {
			if seen[m] {
				return fmt.Errorf("group %q lists %q twice", g, m)
			}
			seen[m] = true
			owner, ok := t.Objects[m]
			if !ok {
				return fmt.Errorf("group %q lists missing object %q", g, m)
			}
			if owner != g {
				return fmt.Errorf("group %q lists %q, which belongs to %q", g, m, owner)
			}
		}
	}
	return nil
}

func groupNotFound(group string) *DomainError {
	return ErrGroupNotFound.Detailf("Group '%s' not found.", group)
}

func notMember(obj, group string) *DomainError {
	return ErrNotMember.Detailf("Object '%s' not in group '%s'.", obj, group)
}

func without(list []string, val string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != val {
			out = append(out, v)
		}
	}
	return out
}

func count(list []string, val string) int {
	n := 0
	for _, v := range list {
		if v == val {
			n++
		}
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
