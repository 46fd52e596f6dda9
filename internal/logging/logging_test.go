package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFollowsDebugFlag(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, false)
	logger.Info("selected simulation", "sim", "life")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered without debug, got %q", buf.String())
	}
	logger.Error("boom", "location", "here")
	if !strings.Contains(buf.String(), "boom") || !strings.Contains(buf.String(), "here") {
		t.Fatalf("error not logged: %q", buf.String())
	}

	buf.Reset()
	New(&buf, true).Debug("overlay", "to", "help")
	if !strings.Contains(buf.String(), "overlay") {
		t.Fatalf("debug not logged with debug on: %q", buf.String())
	}
}
