// ABOUTME: Tests for the logging package
// ABOUTME: Validates level filtering, parsing, and output redirection

package log

import (
	"bytes"
	"strings"
	"testing"
)

// These tests mutate global state and do not run in parallel.

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "debug", want: "DEBUG"},
		{in: "INFO", want: "INFO"},
		{in: "warn", want: "WARN"},
		{in: "error", want: "ERROR"},
		{in: "loud", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLevel(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got.String() != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %s", tt.in, got, err, tt.want)
		}
	}
}

func TestFilteringAndOutput(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelInfo)
	Debug("hidden %d", 1)
	Info("shown %d", 2)
	Warn("warned %s", "x")

	SetLevel(LevelError)
	Warn("hidden too")
	Error("failed: %v", "boom")

	got := buf.String()
	want := "[INFO] shown 2\n[WARN] warned x\n[ERROR] failed: boom\n"
	if got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if strings.Contains(got, "hidden") {
		t.Error("filtered messages leaked")
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	SetLevel(LevelDebug)
	Debug("resize %dx%d", 80, 24)

	if got := buf.String(); got != "[DEBUG] resize 80x24\n" {
		t.Errorf("output = %q", got)
	}
}
