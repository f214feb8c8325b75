package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	if info.Version == "" || info.Commit == "" || info.BuildTime == "" {
		t.Errorf("Get() left fields empty: %+v", info)
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GoVersion = %q", info.GoVersion)
	}
	if info.Language != LanguageVersion {
		t.Errorf("Language = %q, want %q", info.Language, LanguageVersion)
	}
}

func TestGet_LdflagsWin(t *testing.T) {
	old := Version
	Version = "v9.9.9"
	defer func() { Version = old }()

	if got := Get().Version; got != "v9.9.9" {
		t.Errorf("Version = %q, want ldflags value", got)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.Contains(s, " built at ") || !strings.HasSuffix(s, "BPLS v"+LanguageVersion) {
		t.Errorf("String() = %q", s)
	}
}
