package crash

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"multisim/internal/core"
)

func TestFileName(t *testing.T) {
	if got := FileName(time.Unix(1700000000, 0)); got != "multisim-1700000000.log" {
		t.Fatalf("FileName = %q", got)
	}
}

func TestReportWritesDump(t *testing.T) {
	dir := t.TempDir()
	now := time.Unix(1234, 0)
	var buf bytes.Buffer
	logger := log.New(&buf)

	fe := core.Fatalf("host.Selector.Select", "no simulation registered for %s", "Pong")
	code := Report(logger, fmt.Errorf("frame: %w", fe), dir, now)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	data, err := os.ReadFile(filepath.Join(dir, "multisim-1234.log"))
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	want := "*** PANIC REPORT ***\n" +
		"* Location: host.Selector.Select\n" +
		"* Message:  no simulation registered for Pong\n" +
		"* File:     multisim-1234.log\n"
	if string(data) != want {
		t.Fatalf("report = %q, want %q", data, want)
	}
	if !strings.Contains(buf.String(), "host.Selector.Select") {
		t.Fatalf("location not logged: %q", buf.String())
	}
}

func TestReportInterruptSkipsDump(t *testing.T) {
	dir := t.TempDir()
	code := Report(log.New(&bytes.Buffer{}), core.ErrInterrupted, dir, time.Unix(1, 0))
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("interrupt wrote %d files", len(entries))
	}
}

func TestReportCleanExit(t *testing.T) {
	if code := Report(log.New(&bytes.Buffer{}), nil, t.TempDir(), time.Now()); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
}
