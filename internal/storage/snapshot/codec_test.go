package snapshot

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/yndnr/bpls-go/internal/core/domain"
)

func sampleTables() *domain.Tables {
	t := domain.NewTables()
	t.CreateGroup("nums")
	t.CreateGroup("empty")
	t.CreateObject("a")
	t.CreateObject("b")
	t.CreateObject("loose")
	_ = t.Move("a", "nums")
	_ = t.Move("b", "nums")
	t.SetVariable("v", "a")
	return t
}

func TestCodecs_RoundTrip(t *testing.T) {
	for _, codec := range []Codec{JSON{}, YAML{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			want := sampleTables()

			data, err := codec.Encode(FromTables(want))
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			s, err := codec.Decode(data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			got := s.Tables()

			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, want)
			}
			if err := got.Verify(); err != nil {
				t.Errorf("Verify() = %v", err)
			}
		})
	}
}

func TestJSON_DecodeMissingFields(t *testing.T) {
	s, err := JSON{}.Decode([]byte(`{"variables": {"x": "1"}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.Objects == nil || s.Groups == nil {
		t.Fatal("absent tables should decode as empty maps")
	}
	if len(s.Objects) != 0 || len(s.Groups) != 0 {
		t.Errorf("absent tables not empty: %+v", s)
	}
	if s.Variables["x"] != "1" {
		t.Errorf("Variables = %v", s.Variables)
	}
}

func TestJSON_DecodeNullMemberList(t *testing.T) {
	s, err := JSON{}.Decode([]byte(`{"groups": {"g": null}}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if s.Groups["g"] == nil {
		t.Error("null member list should decode as empty")
	}
}

func TestJSON_DecodeOriginalFormat(t *testing.T) {
	// Compact single-line form written by earlier interpreter builds.
	data := `{"groups":{"g":["a"]},"objects":{"a":"g"},"variables":{}}` + "\n"

	s, err := JSON{}.Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got := s.Tables(); got.Objects["a"] != "g" || len(got.Groups["g"]) != 1 {
		t.Errorf("decoded tables = %+v", got)
	}
}

func TestCodecs_DecodeErrors(t *testing.T) {
	tests := []struct {
		codec Codec
		data  string
	}{
		{JSON{}, `{"objects": `},
		{JSON{}, `{"objects": {"a": 1}}`},
		{JSON{}, `not json`},
		{YAML{}, "objects: [unclosed"},
	}

	for _, tt := range tests {
		if _, err := tt.codec.Decode([]byte(tt.data)); err == nil {
			t.Errorf("%s.Decode(%q) = nil error, want error", tt.codec.Name(), tt.data)
		}
	}
}

func TestFromTables_DoesNotAlias(t *testing.T) {
	tb := sampleTables()
	s := FromTables(tb)

	s.Groups["nums"][0] = "changed"
	s.Objects["new"] = ""

	if tb.Groups["nums"][0] != "a" {
		t.Error("snapshot shares group slices with tables")
	}
	if _, ok := tb.Objects["new"]; ok {
		t.Error("snapshot shares object map with tables")
	}
}

func TestForPath(t *testing.T) {
	tests := map[string]string{
		"state.json":     "json",
		"state.YAML":     "yaml",
		"dir/state.yml":  "yaml",
		"state":          "json",
		"state.bpls.txt": "json",
	}
	for path, want := range tests {
		if got := ForPath(path).Name(); got != want {
			t.Errorf("ForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestForFormat(t *testing.T) {
	if c, err := ForFormat("YAML"); err != nil || c.Name() != "yaml" {
		t.Errorf("ForFormat(YAML) = (%v, %v)", c, err)
	}
	if _, err := ForFormat("toml"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForFormat(toml) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestYAML_EncodeShape(t *testing.T) {
	data, err := YAML{}.Encode(FromTables(sampleTables()))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"objects:", "groups:", "variables:"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("YAML output missing %q:\n%s", key, data)
		}
	}
}
