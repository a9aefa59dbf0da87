package xlog

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// TestConfigure_RaisesLevelAndRedirectsOutput checks that Configure takes
// effect for every named sub-logger, not just the base logger.
func TestConfigure_RaisesLevelAndRedirectsOutput(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(dir + "/out.log")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	Configure(slog.LevelDebug, f)
	Steps().Debug("step log line")
	Constraints().Debug("constraint log line")
	States().Debug("state log line")

	out, err := os.ReadFile(dir + "/out.log")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"step log line", "constraint log line", "state log line"} {
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

// TestConfigure_SuppressesBelowLevel checks a logger configured at a higher
// level drops lower-severity records instead of writing them anyway.
func TestConfigure_SuppressesBelowLevel(t *testing.T) {
	dir := t.TempDir()
	f, err := os.Create(dir + "/out.log")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	Configure(slog.LevelError, f)
	Steps().Info("should not appear")

	out, err := os.ReadFile(dir + "/out.log")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(out), "should not appear") {
		t.Errorf("expected Info below the configured Error level to be suppressed, got:\n%s", out)
	}
}
