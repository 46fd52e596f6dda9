// Package crash writes panic reports and maps the frame loop's final error to
// a process exit code.
package crash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"multisim/internal/core"
)

// FileName returns the report name for a crash at now.
func FileName(now time.Time) string {
	return fmt.Sprintf("multisim-%d.log", now.Unix())
}

// Format renders the report body.
func Format(fe *core.FatalError, file string) string {
	var b strings.Builder
	b.WriteString("*** PANIC REPORT ***\n")
	fmt.Fprintf(&b, "* Location: %s\n", fe.Location)
	fmt.Fprintf(&b, "* Message:  %s\n", fe.Message)
	fmt.Fprintf(&b, "* File:     %s\n", file)
	return b.String()
}

// Write stores the report for fe in dir and returns its path.
func Write(dir string, now time.Time, fe *core.FatalError) (string, error) {
	name := FileName(now)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(Format(fe, name)), 0o644); err != nil {
		return "", fmt.Errorf("write crash report: %w", err)
	}
	return path, nil
}

// Report logs how the frame loop ended and returns the exit code. Interrupts
// and clean shutdowns exit 0; a *core.FatalError is dumped to dir first.
func Report(logger *log.Logger, err error, dir string, now time.Time) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, core.ErrInterrupted) {
		logger.Warn("interrupt caught, cleaning up")
		return 0
	}

	var fe *core.FatalError
	if !errors.As(err, &fe) {
		logger.Error("frame loop failed", "err", err)
		return 1
	}
	logger.Error("panic", "location", fe.Location, "message", fe.Message)
	path, werr := Write(dir, now, fe)
	if werr != nil {
		logger.Error("could not save crash report", "err", werr)
		return 1
	}
	logger.Error("crash report written", "file", path)
	return 1
}
