package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPathEnv(t *testing.T) {
	t.Setenv("QPROMPT_LOG_FILE", "/tmp/custom.log")
	if got, _ := Path(); got != "/tmp/custom.log" {
		t.Fatalf("Path = %q, want %q", got, "/tmp/custom.log")
	}

	t.Setenv("QPROMPT_LOG_FILE", "")
	t.Setenv("QPROMPT_CONFIG_HOME", "/tmp/qprompt")
	if got, _ := Path(); got != "/tmp/qprompt/qprompt.log" {
		t.Fatalf("Path = %q, want %q", got, "/tmp/qprompt/qprompt.log")
	}

	t.Setenv("QPROMPT_CONFIG_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got, _ := Path(); got != "/tmp/xdg/qprompt/qprompt.log" {
		t.Fatalf("Path = %q, want %q", got, "/tmp/xdg/qprompt/qprompt.log")
	}
}

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "qprompt.log")
	t.Setenv("QPROMPT_LOG_FILE", path)

	if err := Init(false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	Info("session start", "scenario", "text")
	Debug("hidden at info level")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "session start") || !strings.Contains(out, "scenario") {
		t.Fatalf("log missing entry:\n%s", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug entry written at info level:\n%s", out)
	}
}

func TestHelpersBeforeInit(t *testing.T) {
	Close()
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}
