package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("stack.push", map[string]interface{}{"depth": 2})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read trace: %v", err)
	}
	var entry struct {
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("decode trace: %v", err)
	}
	if entry.Event != "stack.push" || entry.Payload["depth"] != float64(2) {
		t.Fatalf("unexpected entry %+v", entry)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(false)
	t.Cleanup(func() { Configure("") })

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got %v", err)
	}
}

func TestErrorAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(errors.New("first"))
	Error(nil)
	Error(errors.New("second"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "first") || !strings.Contains(text, "second") {
		t.Fatalf("expected both errors logged, got %q", text)
	}
	if Path() != path {
		t.Fatalf("expected path %q, got %q", path, Path())
	}
}

func TestConfigureEmptyFallsBack(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
