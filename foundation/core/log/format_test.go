// File: format_test.go
// Title: Log Formatter Tests
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "compiled")
	e.Timestamp = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	e.Logger = "acdc"
	e.RequestID = "r-1"
	e.Fields = Fields{"line": 3, "name": "a"}
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatText, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	e := testEntry()
	e.Error = errors.New("boom")
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	checks := map[string]interface{}{
		"level":       "info",
		"message":     "compiled",
		"logger":      "acdc",
		"request_id":  "r-1",
		"name":        "a",
		"line":        float64(3),
		"error":       "boom",
		"duration_ms": 1.5,
	}
	for k, want := range checks {
		if decoded[k] != want {
			t.Errorf("%s = %v, want %v", k, decoded[k], want)
		}
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	f.DisableTimestamp = true

	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "[INF] {acdc} (req=r-1) compiled [line=3 name=a]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatterContainsMessage(t *testing.T) {
	f := NewConsoleFormatter()
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "compiled") || !strings.Contains(string(out), "INF") {
		t.Errorf("Format() = %q, missing message or tag", out)
	}

	f.DisableColors = true
	plain, _ := f.Format(testEntry())
	if strings.Contains(string(plain), "\x1b[") {
		t.Errorf("Format() with DisableColors contains escape codes: %q", plain)
	}
}

func TestConsoleFormatterStylesEveryLevel(t *testing.T) {
	f := NewConsoleFormatter()
	for _, level := range []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError} {
		t.Run(level.String(), func(t *testing.T) {
			e := testEntry()
			e.Level = level
			out, err := f.Format(e)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if !strings.Contains(string(out), "compiled") || !strings.HasSuffix(string(out), "\n") {
				t.Errorf("Format() = %q, want the message on one line", out)
			}
		})
	}
}

func TestLogfmtFormatter(t *testing.T) {
	out, err := NewLogfmtFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := `ts=2026-01-02T03:04:05Z level=info msg="compiled" logger=acdc request_id=r-1 line=3 name="a"` + "\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}
