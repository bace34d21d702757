package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestNewLogger_JSONFieldMap(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, "debug", "json")

	log.WithField("session_id", "abc").Debug("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected json output, got %q", buf.String())
	}
	if entry["message"] != "hello" || entry["severity"] != "debug" || entry["session_id"] != "abc" {
		t.Errorf("unexpected entry: %v", entry)
	}
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	log := newLogger(&bytes.Buffer{}, "loud", "text")
	if log.Level != logrus.InfoLevel {
		t.Errorf("expected info level, got %v", log.Level)
	}
}
