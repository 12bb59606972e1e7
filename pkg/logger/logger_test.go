package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "info", "json")

	l.With("component", "driver").Info("poll", "attempt", 3, "status", "running")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json log line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "poll" {
		t.Fatalf("expected message poll, got %v", entry["message"])
	}
	if entry["component"] != "driver" {
		t.Fatalf("expected component driver, got %v", entry["component"])
	}
	if entry["attempt"] != float64(3) {
		t.Fatalf("expected attempt 3, got %v", entry["attempt"])
	}
	if entry["level"] != "info" {
		t.Fatalf("expected level info, got %v", entry["level"])
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn", "json")

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected nothing below warn, got %q", buf.String())
	}

	l.Error("boom", errors.New("cause"))
	if !strings.Contains(buf.String(), `"error":"cause"`) {
		t.Fatalf("expected error field, got %q", buf.String())
	}
}

func TestRedact(t *testing.T) {
	cases := map[string]string{
		"":                 "NOT SET",
		"short":            "*****",
		"abcd1234567890xyz": "abcd...0xyz",
	}
	for in, want := range cases {
		if got := Redact(in); got != want {
			t.Fatalf("Redact(%q) = %q, want %q", in, got, want)
		}
	}
}
