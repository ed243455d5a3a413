package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	mdwlog "github.com/msto63/mrepl/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("mrepl")

	if cfg.Name != "mrepl" {
		t.Errorf("Name = %v, want mrepl", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected mdwlog.Level
	}{
		{"trace", mdwlog.LevelTrace},
		{"debug", mdwlog.LevelDebug},
		{"info", mdwlog.LevelInfo},
		{"warn", mdwlog.LevelWarn},
		{"warning", mdwlog.LevelWarn},
		{"error", mdwlog.LevelError},
		{"off", mdwlog.LevelDisabled},
		{"", mdwlog.LevelWarn},
		{"invalid", mdwlog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "mrepl",
		Level:             "debug",
		Format:            "json",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	if logger.GetLevel() != mdwlog.LevelDebug {
		t.Errorf("level = %v, want debug", logger.GetLevel())
	}

	logger.Debug("command registered", mdwlog.Fields{"keyword": "echo"})

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "additional": &extra} {
		out := buf.String()
		if !strings.Contains(out, `"message":"command registered"`) {
			t.Errorf("%s output = %q", name, out)
		}
		if !strings.Contains(out, `"logger":"mrepl"`) {
			t.Errorf("%s output misses logger name: %q", name, out)
		}
	}
}

func TestNewSimpleLogger(t *testing.T) {
	logger := NewSimpleLogger("test")
	if logger == nil {
		t.Fatal("NewSimpleLogger() returned nil")
	}
	if logger.IsLevelEnabled(mdwlog.LevelInfo) {
		t.Error("default logger should not log info")
	}
	if !logger.IsLevelEnabled(mdwlog.LevelError) {
		t.Error("default logger should log errors")
	}
}
