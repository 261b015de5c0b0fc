package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestGetLoggerPrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		_ = Init("info")
	})

	if err := Init("debug"); err != nil {
		t.Fatalf("Init(debug): %v", err)
	}
	GetLogger("render").Debug("rendered pattern")

	out := buf.String()
	if !strings.Contains(out, "render") || !strings.Contains(out, "rendered pattern") {
		t.Fatalf("unexpected log output: %q", out)
	}

	buf.Reset()
	if err := Init("warn"); err != nil {
		t.Fatalf("Init(warn): %v", err)
	}
	GetLogger("render").Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info line logged at warn level: %q", buf.String())
	}

	if err := Init("loud"); err == nil {
		t.Fatalf("Init should reject unknown levels")
	}
}
