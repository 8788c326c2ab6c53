package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewJSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: FormatJSON}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Msg("hidden")
	logger.Warn().Str("event", "reachGoal").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info entry should be filtered: %q", out)
	}
	for _, marker := range []string{`"level":"warn"`, `"event":"reachGoal"`, `"message":"shown"`} {
		if !strings.Contains(out, marker) {
			t.Fatalf("log output missing %q: %q", marker, out)
		}
	}
}

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "INFO", Format: FormatConsole}, &buf)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info().Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected console output, got %q", buf.String())
	}
	if strings.Contains(buf.String(), `"message"`) {
		t.Fatalf("console output should not be JSON: %q", buf.String())
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Config{Level: "loud"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected level error")
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Config{Format: "xml"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected format error")
	}
}
