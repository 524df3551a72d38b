package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func capture(t *testing.T) (*bytes.Buffer, func()) {
	t.Helper()
	old := Default()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf, func() { SetLogger(old) }
}

func TestInfoEmitsJSON(t *testing.T) {
	buf, restore := capture(t)
	defer restore()

	Info("user created", slog.String("user_id", "abc123"))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["msg"] != "user created" {
		t.Errorf("msg = %v, want %q", entry["msg"], "user created")
	}
	if entry["user_id"] != "abc123" {
		t.Errorf("user_id = %v, want %q", entry["user_id"], "abc123")
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v, want INFO", entry["level"])
	}
}

func TestWithRequestID(t *testing.T) {
	buf, restore := capture(t)
	defer restore()

	WithRequestID("req-42").Warn("store unavailable")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if entry["request_id"] != "req-42" {
		t.Errorf("request_id = %v, want %q", entry["request_id"], "req-42")
	}
	if entry["level"] != "WARN" {
		t.Errorf("level = %v, want WARN", entry["level"])
	}
}

func TestInitLevels(t *testing.T) {
	defer SetLogger(Default())

	tests := []struct {
		level   string
		debugOn bool
	}{
		{"debug", true},
		{"info", false},
		{"warn", false},
		{"unknown", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Init(tt.level)
			got := Default().Enabled(context.Background(), slog.LevelDebug)
			if got != tt.debugOn {
				t.Errorf("Init(%q): debug enabled = %v, want %v", tt.level, got, tt.debugOn)
			}
		})
	}
}
