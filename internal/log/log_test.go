// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"strings"
	"testing"
)

// Tests share the package-level level and writer, so none run in parallel.

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	savedLevel := GetLevel()
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	capture(t)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}
	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelInfo)

	Debug("hidden %s", "line")
	Info("shown %d", 1)

	got := buf.String()
	if strings.Contains(got, "hidden") {
		t.Errorf("debug line emitted at info level: %q", got)
	}
	if !strings.Contains(got, "[INFO] shown 1") {
		t.Errorf("info line missing: %q", got)
	}
}

func TestAllLevels(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	want := "[DEBUG] debug: 1\n[INFO] info: 2\n[WARN] warn: 3\n[ERROR] error: 4\n"
	if buf.String() != want {
		t.Errorf("output = %q; want %q", buf.String(), want)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelError + 4)

	Warn("quiet")
	Error("loud")

	if got := buf.String(); got != "[ERROR] loud\n" {
		t.Errorf("output = %q; want only the error", got)
	}
}
