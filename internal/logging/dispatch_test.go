package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewDispatchLogger(t *testing.T) {
	logger := zerolog.New(&bytes.Buffer{})
	dl := NewDispatchLogger(logger)

	if dl == nil {
		t.Fatal("expected non-nil DispatchLogger")
	}
}

func TestDispatchLogger_Debug(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	dl := NewDispatchLogger(logger)

	dl.Debug("test message", "key1", "value1", "key2", 42)

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if logEntry["level"] != "debug" {
		t.Errorf("expected level 'debug', got %v", logEntry["level"])
	}
	if logEntry["message"] != "test message" {
		t.Errorf("expected message 'test message', got %v", logEntry["message"])
	}
	if logEntry["key1"] != "value1" {
		t.Errorf("expected key1='value1', got %v", logEntry["key1"])
	}
	if logEntry["key2"] != float64(42) { // JSON numbers are float64
		t.Errorf("expected key2=42, got %v", logEntry["key2"])
	}
}

func TestDispatchLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	dl := NewDispatchLogger(logger)

	dl.Info("info message", "status", "ok")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if logEntry["level"] != "info" {
		t.Errorf("expected level 'info', got %v", logEntry["level"])
	}
	if logEntry["status"] != "ok" {
		t.Errorf("expected status='ok', got %v", logEntry["status"])
	}
}

func TestDispatchLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	dl := NewDispatchLogger(logger)

	dl.Error("error message", "code", "fu")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}

	if logEntry["level"] != "error" {
		t.Errorf("expected level 'error', got %v", logEntry["level"])
	}
	if logEntry["code"] != "fu" {
		t.Errorf("expected code='fu', got %v", logEntry["code"])
	}
}

func TestDispatchLogger_OddKeyValues(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	dl := NewDispatchLogger(logger)

	// Dangling key without a value must not panic.
	dl.Info("odd", "key1", "value1", "dangling")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log output: %v", err)
	}
	if logEntry["key1"] != "value1" {
		t.Errorf("expected key1='value1', got %v", logEntry["key1"])
	}
	if _, ok := logEntry["dangling"]; ok {
		t.Error("dangling key should be dropped")
	}
}

func TestSlogDispatchLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dl := NewSlogDispatchLogger(logger)

	dl.Debug("debug message", "k", "v")
	dl.Info("info message")
	dl.Error("error message")

	out := buf.String()
	for _, want := range []string{"debug message", "info message", "error message", `"k":"v"`} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("expected output to contain %q, got %s", want, out)
		}
	}
}
