package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		l := New(tt.level, &buf)
		l.Debug("dbg %d", 1)
		l.Info("inf %d", 2)
		l.Error("err %d", 3)
		out := buf.String()
		if got := strings.Contains(out, "DEBUG: "); got != tt.wantDebug {
			t.Errorf("%s: debug logged = %v", tt.level, got)
		}
		if got := strings.Contains(out, "INFO: "); got != tt.wantInfo {
			t.Errorf("%s: info logged = %v", tt.level, got)
		}
		if !strings.Contains(out, "ERROR: ") || !strings.Contains(out, "err 3") {
			t.Errorf("%s: error not logged: %q", tt.level, out)
		}
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l, err := NewFile("info", path)
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}
	l.Info("hello %s", "file")
	if err := l.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "hello file") {
		t.Fatalf("log file = %q", data)
	}
}
