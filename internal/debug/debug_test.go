package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogger_DiscardsWithoutEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if Logger() != l {
		t.Error("Logger() should return the same instance until Close")
	}
	l.Debug("dropped")
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	Logger().Debug("recomputed", "width", 1080)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "recomputed") {
		t.Errorf("debug log = %q, want it to contain %q", data, "recomputed")
	}
}

func TestLogger_OpensEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	Logger().Debug("from env")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "from env") {
		t.Errorf("debug log = %q, want it to contain %q", data, "from env")
	}
}
