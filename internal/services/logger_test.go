package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestZerologLoggerFields(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "debug")

	// Act
	logger.Info("config updated", "fields", []string{"maintenanceMode"}, "action", "Manual")

	// Assert
	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("Expected JSON log line, got %q", buf.String())
	}
	if line["action"] != "Manual" {
		t.Errorf("Expected action field, got %v", line)
	}
	if _, ok := line["fields"]; !ok {
		t.Errorf("Expected fields field, got %v", line)
	}
}

func TestZerologLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "error")

	logger.Info("dropped")
	logger.Debug("dropped")
	logger.Error("kept", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("Expected info/debug to be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") || !strings.Contains(out, "boom") {
		t.Errorf("Expected error line with cause, got %q", out)
	}
}

func TestZerologLoggerOddArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, "info")

	logger.Info("rate limit exceeded", "10.0.0.1")
	logger.Info("missing header", nil)

	if strings.Count(buf.String(), "\n") != 2 {
		t.Errorf("Expected two log lines, got %q", buf.String())
	}
}
