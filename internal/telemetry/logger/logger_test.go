package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantJSON bool
	}{
		{"json", "json", true},
		{"text", "text", false},
		{"unknown falls back to text", "console", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(Config{Level: "info", Format: tt.format, Output: &buf})
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			l.Info("command executed", "verb", "MOVE")

			var entry map[string]any
			isJSON := json.Unmarshal(buf.Bytes(), &entry) == nil
			if isJSON != tt.wantJSON {
				t.Fatalf("output %q: json = %v, want %v", buf.String(), isJSON, tt.wantJSON)
			}
			if !tt.wantJSON && !strings.Contains(buf.String(), "verb=MOVE") {
				t.Errorf("text output missing attribute: %s", buf.String())
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "warn", Format: "json", Output: &buf})

	l.Debug("debug message")
	l.Info("info message")
	if buf.Len() > 0 {
		t.Errorf("debug/info should be filtered at warn, got %s", buf.String())
	}

	l.Warn("warn message")
	if buf.Len() == 0 {
		t.Error("warn should be logged")
	}
}

func TestSetLevel_AppliesToExistingLoggers(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "error", Format: "json", Output: &buf})

	l.Info("before")
	if buf.Len() > 0 {
		t.Fatal("info should be filtered at error level")
	}

	SetLevel("debug")
	l.Info("after")
	if buf.Len() == 0 {
		t.Error("info should be logged after SetLevel(debug)")
	}
	if got := GetLevel(); got != "debug" {
		t.Errorf("GetLevel() = %q, want debug", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "debug"},
		{"INFO", "info"},
		{"warning", "warn"},
		{"error", "error"},
		{"bogus", "info"},
		{"", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevel(tt.input)
			if got := GetLevel(); got != tt.want {
				t.Errorf("SetLevel(%q); GetLevel() = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "Info", "warn", "warning", "ERROR"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false", lvl)
		}
	}
	for _, lvl := range []string{"", "trace", "fatal"} {
		if ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = true", lvl)
		}
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "info", Format: "json", Output: &buf})

	l.With("component", "repl").Info("started")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("parse log: %v", err)
	}
	if entry["component"] != "repl" {
		t.Errorf("component = %v, want repl", entry["component"])
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	l, _ := New(Config{Level: "debug", Format: "json", Output: &buf})
	prev := Default()
	SetDefault(l)
	defer SetDefault(prev)

	for name, fn := range map[string]func(string, ...any){
		"Debug": Debug, "Info": Info, "Warn": Warn, "Error": Error,
	} {
		buf.Reset()
		fn("msg")
		if buf.Len() == 0 {
			t.Errorf("%s() produced no output", name)
		}
	}
}

func TestNop(t *testing.T) {
	SetLevel("debug")
	defer SetLevel("info")

	// Must not panic or write anywhere.
	l := Nop().With("k", "v")
	l.Debug("x")
	l.Error("y")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "warn" || cfg.Format != "text" || cfg.Output == nil {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}
